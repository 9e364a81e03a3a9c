package arbor

import "iter"

// RangeKeys returns an iterator over the keys of all live nodes.
//
// The order is unspecified; in particular it is not a tree traversal order.
// The tree must not be structurally mutated while iterating.
func (t *Tree[T]) RangeKeys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if t == nil {
			return
		}
		for key := range t.nodes.RangeKeys() {
			if !yield(key) {
				return
			}
		}
	}
}

// RangeNodes returns an iterator over all live nodes, each yielded as key
// plus read-only view.
//
// The order is unspecified; in particular it is not a tree traversal order.
// The tree must not be structurally mutated while iterating.
func (t *Tree[T]) RangeNodes() iter.Seq2[Key, Node[T]] {
	return func(yield func(Key, Node[T]) bool) {
		if t == nil {
			return
		}
		for key, n := range t.nodes.Range() {
			view := Node[T]{
				Parent:   n.parent,
				Children: copyKeys(n.children),
				Value:    n.value,
			}
			if !yield(key, view) {
				return
			}
		}
	}
}

// RangeNodesMut returns an iterator over all live nodes, each yielded as key
// plus value-mutable view.
//
// Values may be updated in place through the views. The order is unspecified.
// The tree must not be structurally mutated while iterating.
func (t *Tree[T]) RangeNodesMut() iter.Seq2[Key, NodeMut[T]] {
	return func(yield func(Key, NodeMut[T]) bool) {
		if t == nil {
			return
		}
		for key, n := range t.nodes.Range() {
			view := NodeMut[T]{
				Parent:   n.parent,
				Children: copyKeys(n.children),
				Value:    &n.value,
			}
			if !yield(key, view) {
				return
			}
		}
	}
}
