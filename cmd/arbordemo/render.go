package main

import (
	"fmt"

	"github.com/npillmayer/arbor"
	"github.com/pterm/pterm"
)

// renderTree prints a tree to stdout using pterm's tree renderer.
func renderTree(tree *arbor.Tree[string], caption string) error {
	rootKey, ok := tree.Root()
	if !ok {
		pterm.Println(pterm.Gray("(empty tree)"))
		return nil
	}
	root, err := ptermNode(tree, rootKey)
	if err != nil {
		return err
	}
	if caption != "" {
		pterm.DefaultSection.Println(caption)
	}
	return pterm.DefaultTree.WithRoot(root).Render()
}

func ptermNode(tree *arbor.Tree[string], key arbor.Key) (pterm.TreeNode, error) {
	node, err := tree.Get(key)
	if err != nil {
		return pterm.TreeNode{}, fmt.Errorf("render: %w", err)
	}
	out := pterm.TreeNode{Text: node.Value}
	for _, child := range node.Children {
		sub, err := ptermNode(tree, child)
		if err != nil {
			return pterm.TreeNode{}, err
		}
		out.Children = append(out.Children, sub)
	}
	return out, nil
}
