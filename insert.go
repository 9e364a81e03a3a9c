package arbor

import "fmt"

// InsertRoot inserts value as the root of an empty tree and returns its key.
//
// Returns ErrAlreadyRooted if the tree already has a root; an existing tree
// is never replaced implicitly (use Clear first if that is intended).
func (t *Tree[T]) InsertRoot(value T) (Key, error) {
	return t.InsertRootWithCapacity(value, 0)
}

// InsertRootWithCapacity is InsertRoot with a capacity hint for the number of
// children the root is expected to get.
func (t *Tree[T]) InsertRootWithCapacity(value T, capacity int) (Key, error) {
	if !t.rootKey.IsZero() {
		return Key{}, fmt.Errorf("%w: root is %v", ErrAlreadyRooted, t.rootKey)
	}
	key := t.nodes.Insert(node[T]{
		value:    value,
		children: childSlice(capacity),
	})
	t.rootKey = key
	return key, nil
}

// Insert inserts value as a new child of the node at parent and returns the
// key of the new node.
//
// The new node is appended at the end of the parent's child sequence, so
// repeated inserts keep insertion order until reordered explicitly.
//
// Returns ErrNotFound if parent does not refer to a live node.
func (t *Tree[T]) Insert(parent Key, value T) (Key, error) {
	return t.InsertWithCapacity(parent, value, 0)
}

// InsertWithCapacity is Insert with a capacity hint for the number of
// children the new node is expected to get.
func (t *Tree[T]) InsertWithCapacity(parent Key, value T, capacity int) (Key, error) {
	if !t.Contains(parent) {
		return Key{}, fmt.Errorf("%w: parent %v", ErrNotFound, parent)
	}
	key := t.nodes.Insert(node[T]{
		value:    value,
		parent:   parent,
		children: childSlice(capacity),
	})
	p, ok := t.nodes.Get(parent)
	assert(ok, "parent vanished during insert")
	p.children = append(p.children, key)
	return key, nil
}

func childSlice(capacity int) []Key {
	if capacity <= 0 {
		return nil
	}
	return make([]Key, 0, capacity)
}
