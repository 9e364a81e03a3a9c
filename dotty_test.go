package arbor

import (
	"strings"
	"testing"
)

func TestTree2DotEmptyTree(t *testing.T) {
	var sb strings.Builder
	Tree2Dot(New[int](), &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("malformed DOT output:\n%s", out)
	}
	if strings.Contains(out, "->") {
		t.Fatalf("empty tree must produce no edges:\n%s", out)
	}
}

func TestTree2Dot(t *testing.T) {
	tree := New[string]()
	root, _ := tree.InsertRoot("root")
	tree.Insert(root, "left")
	tree.Insert(root, "right")

	var sb strings.Builder
	Tree2Dot(tree, &sb)
	out := sb.String()
	for _, label := range []string{"root", "left", "right"} {
		if !strings.Contains(out, label) {
			t.Fatalf("label %q missing in DOT output:\n%s", label, out)
		}
	}
	if strings.Count(out, "->") != 2 {
		t.Fatalf("expected 2 edges, output:\n%s", out)
	}
}
