package arbor

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Rebase moves the node at key, together with its entire subtree, underneath
// the node at newParent.
//
// In the common case newParent lies outside the subtree of key: the node is
// detached from its current parent and appended to newParent's child
// sequence; nothing inside the moved subtree changes. Rebasing a node onto
// its current parent is a no-op.
//
// If newParent is a descendant of key, a plain move would create a cycle.
// Rebase instead reverses the ancestor path between the two nodes: every node
// on the path from newParent up to key becomes the parent of its former
// parent, and the top of the reversed path takes over the child slot that
// key leaves behind. Subtrees hanging off the path nodes stay attached to
// their respective node. See the package example for a picture.
//
// Returns ErrNotFound if either key is not live, and ErrInvalidRebase if both
// keys are equal or key is the current root. A failed rebase leaves the tree
// exactly as it was.
func (t *Tree[T]) Rebase(key, newParent Key) error {
	n, ok := t.lookup(key)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	if !t.Contains(newParent) {
		return fmt.Errorf("%w: new parent %v", ErrNotFound, newParent)
	}
	if key == newParent {
		return fmt.Errorf("%w: cannot rebase %v onto itself", ErrInvalidRebase, key)
	}
	if key == t.rootKey {
		return fmt.Errorf("%w: cannot rebase the root %v", ErrInvalidRebase, key)
	}

	if path, isDescendant := t.ancestorPath(newParent, key); isDescendant {
		t.reverseRebase(key, path)
		return nil
	}
	t.moveSubtree(n, key, newParent)
	return nil
}

// ancestorPath walks the parent chain from lower towards the root. If upper
// is encountered, it reports true and returns the visited keys from lower up
// to, but not including, upper. Otherwise it reports false.
func (t *Tree[T]) ancestorPath(lower, upper Key) ([]Key, bool) {
	path := []Key{lower}
	current := lower
	for {
		n, ok := t.nodes.Get(current)
		assert(ok, "ancestor walk hit a dead key")
		if n.parent == upper {
			return path, true
		}
		if n.parent.IsZero() {
			return nil, false
		}
		current = n.parent
		path = append(path, current)
	}
}

// moveSubtree performs the ordinary, cycle-free rebase of key onto newParent.
func (t *Tree[T]) moveSubtree(n *node[T], key, newParent Key) {
	oldParent := n.parent
	if oldParent == newParent {
		return
	}
	n.parent = newParent

	op, ok := t.nodes.Get(oldParent)
	assert(ok, "parent link points at a dead node")
	op.children = excise(op.children, key)

	np, ok := t.nodes.Get(newParent)
	assert(ok, "new parent vanished during rebase")
	np.children = append(np.children, key)
}

// reverseRebase handles a rebase target inside the subtree of key.
//
// path holds the ancestor chain from the new parent up to, but not
// including, key; so path[0] is the new parent and path[len-1] is the child
// of key the chain enters through. Parent/child links along the chain,
// including key's own, are turned around, and key's former parent adopts the
// new parent in the slot key occupied. Everything off the chain keeps its
// position.
func (t *Tree[T]) reverseRebase(key Key, path []Key) {
	tracer().Debugf("rebase of %v onto descendant %v reverses a path of %d nodes",
		key, path[0], len(path))

	// chain lists the affected nodes top-down as they are linked before the
	// call: chain[i] is the parent of chain[i+1].
	chain := make([]Key, 0, len(path)+1)
	chain = append(chain, key)
	for i := len(path) - 1; i >= 0; i-- {
		chain = append(chain, path[i])
	}

	top, ok := t.nodes.Get(key)
	assert(ok, "rebased node vanished")
	oldParent := top.parent

	op, ok := t.nodes.Get(oldParent)
	assert(ok, "rebased non-root node has no live parent")
	replaceKey(op.children, key, chain[len(chain)-1])

	for i := len(chain) - 1; i >= 1; i-- {
		upper, ok := t.nodes.Get(chain[i-1])
		assert(ok, "path key does not resolve")
		lower, ok := t.nodes.Get(chain[i])
		assert(ok, "path key does not resolve")

		upper.children = excise(upper.children, chain[i])
		lower.children = append(lower.children, chain[i-1])
		upper.parent = chain[i]
	}

	bottom, ok := t.nodes.Get(chain[len(chain)-1])
	assert(ok, "path key does not resolve")
	bottom.parent = oldParent
}

// replaceKey substitutes want for the first occurrence of have, in place.
func replaceKey(keys []Key, have, want Key) {
	for i, k := range keys {
		if k == have {
			keys[i] = want
			return
		}
	}
	assert(false, "child sequence does not contain the expected key")
}
