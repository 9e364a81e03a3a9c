package arbor

import "fmt"

// ReorderChildren replaces the child sequence of the node at parent with
// order.
//
// order must be an exact permutation of the current child keys: the same
// keys, each exactly once, in any order. The sequence is taken over verbatim,
// so callers control child order completely. No other node is affected.
//
// Returns ErrNotFound if parent is not live, and ErrMismatchedChildSet if
// order misses a child key, contains a foreign key, or contains duplicates.
// On error the child sequence is left unchanged.
func (t *Tree[T]) ReorderChildren(parent Key, order []Key) error {
	n, ok := t.lookup(parent)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, parent)
	}
	if len(order) != len(n.children) {
		return fmt.Errorf("%w: got %d keys, node has %d children",
			ErrMismatchedChildSet, len(order), len(n.children))
	}
	current := make(map[Key]bool, len(n.children))
	for _, k := range n.children {
		current[k] = false
	}
	for _, k := range order {
		seen, ok := current[k]
		if !ok {
			return fmt.Errorf("%w: %v is not a child of %v",
				ErrMismatchedChildSet, k, parent)
		}
		if seen {
			return fmt.Errorf("%w: duplicate key %v", ErrMismatchedChildSet, k)
		}
		current[k] = true
	}
	n.children = copyKeys(order)
	return nil
}
