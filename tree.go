package arbor

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/arbor/arena"
)

// Key addresses one node of a Tree.
//
// Keys are minted by the tree's arena on insertion and stay valid until the
// node is removed. The zero Key is never issued; views use it to express
// "no parent".
type Key = arena.Key

// Tree is an arbitrary-arity tree over values of type T with keyed node
// access.
//
// Every node holds a value, a back-reference to its parent and an ordered
// sequence of child keys. All node storage is owned by an internal arena;
// lookup, insertion and single-node removal are O(1).
//
// The zero value of Tree is an empty tree ready for use. A Tree must not be
// shared between goroutines without external synchronization.
type Tree[T any] struct {
	nodes   arena.Arena[node[T]]
	rootKey Key // zero while the tree is empty
}

// node is the stored shape of a tree position. parent is the zero Key exactly
// for the root. children holds the keys of all nodes whose parent is this
// node, in caller-controlled order and without duplicates.
type node[T any] struct {
	value    T
	parent   Key
	children []Key
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// WithCapacity creates an empty tree with node storage for n nodes
// pre-allocated.
func WithCapacity[T any](n int) *Tree[T] {
	return &Tree[T]{nodes: *arena.WithCapacity[node[T]](n)}
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.nodes.Len()
}

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Contains reports whether key refers to a live node of this tree.
func (t *Tree[T]) Contains(key Key) bool {
	return t != nil && t.nodes.Contains(key)
}

// Root returns the key of the root node, if any.
func (t *Tree[T]) Root() (Key, bool) {
	if t == nil || t.rootKey.IsZero() {
		return Key{}, false
	}
	return t.rootKey, true
}

// RootNode returns the root key together with a read-only view of the root
// node. The second return value is false for an empty tree.
func (t *Tree[T]) RootNode() (Key, Node[T], bool) {
	key, ok := t.Root()
	if !ok {
		return Key{}, Node[T]{}, false
	}
	n, err := t.Get(key)
	assert(err == nil, "tree root key does not resolve")
	return key, n, true
}

// Clear removes all nodes, keeping allocated storage for reuse. Every
// previously issued key becomes stale.
func (t *Tree[T]) Clear() {
	t.nodes.Clear()
	t.rootKey = Key{}
}

// Node is a read-only view of one tree position.
//
// The view is a snapshot taken at call time: the child-key sequence is a
// copy, and Value is a copy of the stored value. A Node does not observe
// later mutations of the tree.
type Node[T any] struct {
	// Parent is the key of the parent node, or the zero Key for the root.
	Parent Key
	// Children holds the keys of the immediate children, in order.
	Children []Key
	// Value is the value stored at this position.
	Value T
}

// IsRoot reports whether the viewed node is the tree root.
func (n Node[T]) IsRoot() bool {
	return n.Parent.IsZero()
}

// NodeMut is a view of one tree position that permits updating the stored
// value in place.
//
// Only the value is reachable for mutation; parent and child links are
// snapshots, so tree structure cannot be edited through a NodeMut. The Value
// pointer must not be retained across structural mutations of the tree.
type NodeMut[T any] struct {
	// Parent is the key of the parent node, or the zero Key for the root.
	Parent Key
	// Children holds the keys of the immediate children, in order.
	Children []Key
	// Value points at the stored value.
	Value *T
}

// IsRoot reports whether the viewed node is the tree root.
func (n NodeMut[T]) IsRoot() bool {
	return n.Parent.IsZero()
}

// Get returns a read-only view of the node at key.
//
// Returns ErrNotFound if key is stale or was never issued by this tree.
func (t *Tree[T]) Get(key Key) (Node[T], error) {
	n, ok := t.lookup(key)
	if !ok {
		return Node[T]{}, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return Node[T]{
		Parent:   n.parent,
		Children: copyKeys(n.children),
		Value:    n.value,
	}, nil
}

// GetMut returns a view of the node at key with value-update access.
//
// Returns ErrNotFound if key is stale or was never issued by this tree.
func (t *Tree[T]) GetMut(key Key) (NodeMut[T], error) {
	n, ok := t.lookup(key)
	if !ok {
		return NodeMut[T]{}, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return NodeMut[T]{
		Parent:   n.parent,
		Children: copyKeys(n.children),
		Value:    &n.value,
	}, nil
}

// Set replaces the value at key and returns the previous value.
//
// Returns ErrNotFound if key is stale or was never issued by this tree.
func (t *Tree[T]) Set(key Key, value T) (T, error) {
	n, ok := t.lookup(key)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	old := n.value
	n.value = value
	return old, nil
}

func (t *Tree[T]) lookup(key Key) (*node[T], bool) {
	if t == nil {
		return nil, false
	}
	return t.nodes.Get(key)
}

func copyKeys(keys []Key) []Key {
	if len(keys) == 0 {
		return nil
	}
	cp := make([]Key, len(keys))
	copy(cp, keys)
	return cp
}
