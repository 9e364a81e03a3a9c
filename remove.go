package arbor

import "fmt"

// Remove deletes the node at key together with its entire subtree and
// returns the removed node's own value. Descendant values are dropped.
//
// sizeHint may carry an estimate of the subtree size; it pre-sizes the
// scratch storage for collecting descendants and has no effect on the
// result. Pass 0 (or any non-positive number) if no estimate is available.
//
// Removing the root empties the tree. Returns ErrNotFound if key does not
// refer to a live node; the tree is left untouched in that case.
func (t *Tree[T]) Remove(key Key, sizeHint int) (T, error) {
	var zero T
	n, ok := t.lookup(key)
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}

	if key == t.rootKey {
		value := n.value
		t.Clear()
		return value, nil
	}

	removed, ok := t.nodes.Remove(key)
	assert(ok, "node resolved but could not be removed")

	if sizeHint <= 0 {
		sizeHint = t.nodes.Len()
	}
	pending := make([]Key, 0, sizeHint)
	pending = append(pending, removed.children...)
	freed := 0
	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		child, ok := t.nodes.Remove(next)
		assert(ok, "child link points at a dead node")
		pending = append(pending, child.children...)
		freed++
	}
	tracer().Debugf("removed node %v and %d descendants", key, freed)

	parent, ok := t.nodes.Get(removed.parent)
	assert(ok, "removed non-root node has no live parent")
	parent.children = excise(parent.children, key)

	return removed.value, nil
}

// excise removes the first occurrence of key from keys, preserving the order
// of the remaining entries.
func excise(keys []Key, key Key) []Key {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}
