package arbor_test

import (
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/stretchr/testify/require"
)

// shape is a declarative tree description for tests: a value plus the shapes
// of its children, in order.
type shape struct {
	value string
	kids  []shape
}

func n(value string, kids ...shape) shape {
	return shape{value: value, kids: kids}
}

// buildTree materializes a shape into a tree and returns the keys of all
// nodes, indexed by their (unique) value.
func buildTree(t *testing.T, s shape) (*arbor.Tree[string], map[string]arbor.Key) {
	t.Helper()
	tree := arbor.New[string]()
	keys := make(map[string]arbor.Key)

	root, err := tree.InsertRoot(s.value)
	require.NoError(t, err)
	keys[s.value] = root

	var grow func(parent arbor.Key, kids []shape)
	grow = func(parent arbor.Key, kids []shape) {
		for _, kid := range kids {
			key, err := tree.Insert(parent, kid.value)
			require.NoError(t, err)
			_, clash := keys[kid.value]
			require.False(t, clash, "shape values must be unique, %q is not", kid.value)
			keys[kid.value] = key
			grow(key, kid.kids)
		}
	}
	grow(root, s.kids)
	require.NoError(t, tree.Check())
	return tree, keys
}

// requireShape asserts that the tree below key matches the expected shape,
// including child order, and that the tree as a whole is structurally sound.
func requireShape(t *testing.T, tree *arbor.Tree[string], want shape) {
	t.Helper()
	require.NoError(t, tree.Check())
	root, ok := tree.Root()
	require.True(t, ok, "tree is unexpectedly empty")

	var match func(key arbor.Key, want shape)
	match = func(key arbor.Key, want shape) {
		node, err := tree.Get(key)
		require.NoError(t, err)
		require.Equal(t, want.value, node.Value)
		require.Len(t, node.Children, len(want.kids),
			"node %q has wrong child count", want.value)
		for i, kid := range want.kids {
			match(node.Children[i], kid)
		}
	}
	match(root, want)
	// the shape covers the whole tree iff the node counts agree
	require.Equal(t, countShape(want), tree.Len())
}

func countShape(s shape) int {
	n := 1
	for _, kid := range s.kids {
		n += countShape(kid)
	}
	return n
}
