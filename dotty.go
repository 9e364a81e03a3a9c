package arbor

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes are labeled with their value (via %v) and their key; edges follow
// the child order.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box];\n")
	root, ok := tree.Root()
	if !ok {
		io.WriteString(w, "}\n")
		return
	}
	nodelist, edgelist := "", ""
	pending := []Key{root}
	for len(pending) > 0 {
		key := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		n, err := tree.Get(key)
		assert(err == nil, "tree structure references a dead key")
		label := fmt.Sprintf("%v\\n%v", n.Value, key)
		nodelist += fmt.Sprintf("\"%v\" [label=\"%s\"];\n", key, label)
		for _, child := range n.Children {
			edgelist += fmt.Sprintf("\"%v\" -> \"%v\";\n", key, child)
			pending = append(pending, child)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
