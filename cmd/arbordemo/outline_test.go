package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOutline(t *testing.T) {
	tree, err := parseOutline(strings.NewReader(`fruit
	citrus
		lemon
		orange
	berries
		strawberry
`))
	require.NoError(t, err)
	require.NoError(t, tree.Check())
	require.Equal(t, 6, tree.Len())

	_, root, ok := tree.RootNode()
	require.True(t, ok)
	require.Equal(t, "fruit", root.Value)
	require.Len(t, root.Children, 2)

	citrus, err := tree.Get(root.Children[0])
	require.NoError(t, err)
	require.Equal(t, "citrus", citrus.Value)
	require.Len(t, citrus.Children, 2)
}

func TestParseOutlineWithSpaces(t *testing.T) {
	tree, err := parseOutline(strings.NewReader("a\n  b\n    c\n  d\n"))
	require.NoError(t, err)
	require.Equal(t, 4, tree.Len())
}

func TestParseOutlineRejectsForests(t *testing.T) {
	_, err := parseOutline(strings.NewReader("a\nb\n"))
	require.Error(t, err)
}

func TestParseOutlineRejectsSkippedLevels(t *testing.T) {
	_, err := parseOutline(strings.NewReader("a\n\t\tb\n"))
	require.Error(t, err)
}

func TestParseOutlineEmptyInput(t *testing.T) {
	tree, err := parseOutline(strings.NewReader("\n\n"))
	require.NoError(t, err)
	require.True(t, tree.IsEmpty())
}

func TestSplitIndent(t *testing.T) {
	cases := []struct {
		line  string
		depth int
		label string
	}{
		{"a", 0, "a"},
		{"\ta", 1, "a"},
		{"\t\tx y", 2, "x y"},
		{"  a", 1, "a"},
		{"    a", 2, "a"},
		{" a", 0, "a"},
		{"\t  a", 2, "a"},
	}
	for _, c := range cases {
		depth, label := splitIndent(c.line)
		require.Equal(t, c.depth, depth, "line %q", c.line)
		require.Equal(t, c.label, label, "line %q", c.line)
	}
}
