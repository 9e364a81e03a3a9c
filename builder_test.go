package arbor

import (
	"testing"
)

func TestBuilderEmpty(t *testing.T) {
	var b Builder[int]
	if b.Len() != 0 {
		t.Fatalf("empty builder has length %d", b.Len())
	}
	tree := b.Tree()
	if !tree.IsEmpty() {
		t.Fatalf("empty builder must yield an empty tree")
	}
}

func TestBuilderStagesAndMaterializes(t *testing.T) {
	var b Builder[int]
	root := b.PushRoot(0)
	c1 := b.Push(1, root)
	b.Push(2, c1)
	b.Push(3, root)
	if b.Len() != 4 {
		t.Fatalf("expected 4 staged nodes, got %d", b.Len())
	}
	tree := b.Tree()
	if tree.Len() != 4 {
		t.Fatalf("expected 4 nodes, got %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	rootKey, node, ok := tree.RootNode()
	if !ok || node.Value != 0 || len(node.Children) != 2 {
		t.Fatalf("unexpected root: value=%v children=%v", node.Value, node.Children)
	}
	first, _ := tree.Get(node.Children[0])
	if first.Value != 1 || len(first.Children) != 1 || first.Parent != rootKey {
		t.Fatalf("staged child 1 materialized wrong")
	}
	grandchild, _ := tree.Get(first.Children[0])
	if grandchild.Value != 2 {
		t.Fatalf("staged grandchild materialized wrong")
	}
}

func TestBuilderGraft(t *testing.T) {
	var sub Builder[string]
	subRoot := sub.PushRoot("x")
	sub.Push("y", subRoot)

	var b Builder[string]
	root := b.PushRoot("a")
	hookIdx := b.Push("b", root)
	b.Graft(&sub, hookIdx)

	tree := b.Tree()
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 4 {
		t.Fatalf("expected 4 nodes after graft, got %d", tree.Len())
	}
	_, rootNode, _ := tree.RootNode()
	bNode, _ := tree.Get(rootNode.Children[0])
	if bNode.Value != "b" || len(bNode.Children) != 1 {
		t.Fatalf("graft point is wrong: %+v", bNode)
	}
	xNode, _ := tree.Get(bNode.Children[0])
	if xNode.Value != "x" || len(xNode.Children) != 1 {
		t.Fatalf("grafted root is wrong: %+v", xNode)
	}
	yNode, _ := tree.Get(xNode.Children[0])
	if yNode.Value != "y" {
		t.Fatalf("grafted child is wrong: %+v", yNode)
	}
}

func TestBuilderGraftIntoEmpty(t *testing.T) {
	var sub Builder[string]
	sub.PushRoot("x")
	sub.Push("y", 0)

	var b Builder[string]
	b.Graft(&sub, 0)
	tree := b.Tree()
	if tree.Len() != 2 {
		t.Fatalf("graft into empty builder lost nodes, len=%d", tree.Len())
	}
	_, rootNode, _ := tree.RootNode()
	if rootNode.Value != "x" {
		t.Fatalf("expected grafted root to become the root")
	}
}

func TestBuilderPushRootResets(t *testing.T) {
	var b Builder[int]
	b.PushRoot(1)
	b.Push(2, 0)
	b.PushRoot(3)
	tree := b.Tree()
	if tree.Len() != 1 {
		t.Fatalf("PushRoot must discard the staged build, len=%d", tree.Len())
	}
	_, node, _ := tree.RootNode()
	if node.Value != 3 {
		t.Fatalf("unexpected root value %d", node.Value)
	}
}

func TestBuilderIsReusable(t *testing.T) {
	var b Builder[int]
	b.PushRoot(0)
	b.Push(1, 0)
	t1 := b.Tree()
	t2 := b.Tree()
	if t1.Len() != 2 || t2.Len() != 2 {
		t.Fatalf("builder must be reusable")
	}
	root1, _ := t1.Root()
	if _, err := t1.Remove(root1, 0); err != nil {
		t.Fatal(err)
	}
	if t2.Len() != 2 {
		t.Fatalf("materialized trees must be independent")
	}
}
