/*
Package arbor implements an arbitrary-arity tree with constant-time keyed
access to its nodes.

Trees in this package do not link nodes by pointers. Instead, all node storage
lives in a central slot arena (see package arena), and every node is addressed
by an opaque, generation-tagged key. Keys are handed out on insertion and stay
valid until the node is removed; a key of a removed node is detectably stale
rather than undefined. This sidesteps the aliasing problems of parent/child
back-pointers and makes random access into deep hierarchies an O(1) lookup
instead of a traversal.

A tree is built top-down:

	tree := arbor.New[string]()
	root, _ := tree.InsertRoot("/")
	etc, _ := tree.Insert(root, "etc")
	tree.Insert(etc, "passwd")

Structural operations (Insert, Remove, Rebase, ReorderChildren) maintain the
tree invariants: a single root, a single parent per node, child order under
caller control, and acyclicity. Rebase even supports moving a node underneath
one of its own descendants; the connecting path is reversed so the result
remains a tree.

Node values are reached through two view shapes: Get returns a read-only view,
GetMut additionally exposes the stored value for in-place update. Neither view
permits editing of parent or child links, so the invariants cannot be broken
from the outside.

Trees are designed for exclusive-owner access. No operation blocks, spawns
background work, or retries; all errors are recoverable precondition
violations reported to the caller.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package arbor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
