package arbor

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it verifies root
// uniqueness, parent/child symmetry, duplicate-free child sequences, and that
// every node is reachable from the root (which rules out cycles).
func (t *Tree[T]) Check() error {
	if t == nil {
		return nil
	}
	if t.rootKey.IsZero() {
		if t.nodes.Len() != 0 {
			return fmt.Errorf("arbor: rootless tree holds %d nodes", t.nodes.Len())
		}
		return nil
	}
	root, ok := t.nodes.Get(t.rootKey)
	if !ok {
		return fmt.Errorf("arbor: root key %v does not resolve", t.rootKey)
	}
	if !root.parent.IsZero() {
		return fmt.Errorf("arbor: root %v has parent %v", t.rootKey, root.parent)
	}

	reached := make(map[Key]struct{}, t.nodes.Len())
	pending := []Key{t.rootKey}
	for len(pending) > 0 {
		key := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if _, seen := reached[key]; seen {
			return fmt.Errorf("arbor: node %v reached twice", key)
		}
		reached[key] = struct{}{}
		n, ok := t.nodes.Get(key)
		if !ok {
			return fmt.Errorf("arbor: child link points at dead key %v", key)
		}
		dup := make(map[Key]struct{}, len(n.children))
		for _, child := range n.children {
			if _, twice := dup[child]; twice {
				return fmt.Errorf("arbor: node %v lists child %v twice", key, child)
			}
			dup[child] = struct{}{}
			c, ok := t.nodes.Get(child)
			if !ok {
				return fmt.Errorf("arbor: node %v lists dead child %v", key, child)
			}
			if c.parent != key {
				return fmt.Errorf("arbor: child %v of %v has parent %v", child, key, c.parent)
			}
			pending = append(pending, child)
		}
	}

	// Reachability plus node count pins down the shape: every parent link of
	// a reached node points at a reached node listing it as child.
	if len(reached) != t.nodes.Len() {
		return fmt.Errorf("arbor: %d of %d nodes unreachable from root",
			t.nodes.Len()-len(reached), t.nodes.Len())
	}
	for key := range t.nodes.RangeKeys() {
		n, _ := t.nodes.Get(key)
		if key != t.rootKey && n.parent.IsZero() {
			return fmt.Errorf("arbor: second parentless node %v", key)
		}
	}
	return nil
}
