package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through insertion, rebasing and cycle-breaking rebasing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := demoInsert(); err != nil {
				return err
			}
			if err := demoRebase(); err != nil {
				return err
			}
			return demoCycleBreaking()
		},
	}
}

func demoInsert() error {
	tree := arbor.New[string]()
	root, err := tree.InsertRoot("0")
	if err != nil {
		return err
	}
	for _, v := range []string{"1", "2", "3"} {
		if _, err := tree.Insert(root, v); err != nil {
			return err
		}
	}
	node, err := tree.Get(root)
	if err != nil {
		return err
	}
	fmt.Println(color.CyanString("Root with %d children, inserted in order:", len(node.Children)))
	return renderTree(tree, "insertion")
}

// demoRebase moves the subtree below "4" underneath "2", turning
//
//	0             0
//	├── 1         ├── 1
//	│   ├── 3     │   └── 3
//	│   └── 4     └── 2
//	│       └── 5     ├── 6
//	└── 2             ├── 7
//	    ├── 6         └── 4
//	    └── 7             └── 5
func demoRebase() error {
	var b arbor.Builder[string]
	root := b.PushRoot("0")
	one := b.Push("1", root)
	two := b.Push("2", root)
	b.Push("3", one)
	four := b.Push("4", one)
	b.Push("5", four)
	b.Push("6", two)
	b.Push("7", two)
	tree := b.Tree()

	if err := renderTree(tree, "before rebase"); err != nil {
		return err
	}
	fourKey, twoKey, err := findValues(tree, "4", "2")
	if err != nil {
		return err
	}
	if err := tree.Rebase(fourKey, twoKey); err != nil {
		return err
	}
	fmt.Println(color.CyanString("Rebased 4 (with its subtree) underneath 2:"))
	return renderTree(tree, "after rebase")
}

// demoCycleBreaking rebases a node onto its own descendant: for the chain
// r→a→b→c, rebasing a under c reverses the connecting path into r→c→b→a.
func demoCycleBreaking() error {
	var b arbor.Builder[string]
	root := b.PushRoot("r")
	aIdx := b.Push("a", root)
	bIdx := b.Push("b", aIdx)
	b.Push("c", bIdx)
	tree := b.Tree()

	if err := renderTree(tree, "before cycle-breaking rebase"); err != nil {
		return err
	}
	aKey, cKey, err := findValues(tree, "a", "c")
	if err != nil {
		return err
	}
	if err := tree.Rebase(aKey, cKey); err != nil {
		return err
	}
	fmt.Println(color.CyanString("Rebased a underneath its descendant c; the path was reversed:"))
	return renderTree(tree, "after cycle-breaking rebase")
}

// findValues resolves two node values to their keys.
func findValues(tree *arbor.Tree[string], v1, v2 string) (arbor.Key, arbor.Key, error) {
	var k1, k2 arbor.Key
	for key, node := range tree.RangeNodes() {
		switch node.Value {
		case v1:
			k1 = key
		case v2:
			k2 = key
		}
	}
	if k1.IsZero() || k2.IsZero() {
		return k1, k2, fmt.Errorf("values %q/%q not found in tree", v1, v2)
	}
	return k1, k2, nil
}
