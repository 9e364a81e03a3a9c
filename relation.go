package arbor

import "fmt"

// RelationKind classifies how two nodes of the same tree relate.
type RelationKind int8

const (
	// RelationSame: both keys address the same node.
	RelationSame RelationKind = iota
	// RelationAncestor: the first key lies on the parent chain of the second.
	RelationAncestor
	// RelationDescendant: the second key lies on the parent chain of the first.
	RelationDescendant
	// RelationSiblings: both nodes share the same immediate parent.
	RelationSiblings
	// RelationKin: no direct line between the nodes; they connect through a
	// common ancestor further up.
	RelationKin
)

func (k RelationKind) String() string {
	switch k {
	case RelationSame:
		return "same"
	case RelationAncestor:
		return "ancestor"
	case RelationDescendant:
		return "descendant"
	case RelationSiblings:
		return "siblings"
	case RelationKin:
		return "kin"
	}
	return "invalid"
}

// Relation describes the relationship between two nodes.
type Relation struct {
	Kind RelationKind
	// CommonAncestor is the nearest node both parent chains run through.
	// It is set for RelationSiblings (the shared parent) and RelationKin,
	// and is the zero Key otherwise.
	CommonAncestor Key
}

// Relationship classifies the relationship between the nodes at a and b.
//
// The classification walks the parent chains of both nodes, so the cost is
// bounded by the depth of the tree, not its size.
//
// Returns ErrNotFound if either key does not refer to a live node.
func (t *Tree[T]) Relationship(a, b Key) (Relation, error) {
	na, ok := t.lookup(a)
	if !ok {
		return Relation{}, fmt.Errorf("%w: %v", ErrNotFound, a)
	}
	nb, ok := t.lookup(b)
	if !ok {
		return Relation{}, fmt.Errorf("%w: %v", ErrNotFound, b)
	}
	if a == b {
		return Relation{Kind: RelationSame}, nil
	}
	if na.parent == nb.parent && !na.parent.IsZero() {
		return Relation{Kind: RelationSiblings, CommonAncestor: na.parent}, nil
	}

	// Collect a's ancestor chain; meeting b on the way up settles the case.
	ancestors := make(map[Key]struct{})
	for current := na.parent; !current.IsZero(); {
		if current == b {
			return Relation{Kind: RelationDescendant}, nil
		}
		ancestors[current] = struct{}{}
		n, ok := t.nodes.Get(current)
		assert(ok, "parent link points at a dead node")
		current = n.parent
	}

	// Walk up from b; the first key also on a's chain is the nearest common
	// ancestor. Both chains end at the root, so the walk terminates.
	for current := nb.parent; ; {
		if current == a {
			return Relation{Kind: RelationAncestor}, nil
		}
		assert(!current.IsZero(), "parent chains do not converge")
		if _, common := ancestors[current]; common {
			return Relation{Kind: RelationKin, CommonAncestor: current}, nil
		}
		n, ok := t.nodes.Get(current)
		assert(ok, "parent link points at a dead node")
		current = n.parent
	}
}
