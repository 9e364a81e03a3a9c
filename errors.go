package arbor

import "errors"

var (
	// ErrNotFound signals a key that does not refer to a live node.
	ErrNotFound = errors.New("arbor: key not found")
	// ErrAlreadyRooted signals InsertRoot on a tree that already has a root.
	ErrAlreadyRooted = errors.New("arbor: tree already has a root")
	// ErrInvalidRebase signals a rebase onto the node itself, or of the root.
	ErrInvalidRebase = errors.New("arbor: invalid rebase")
	// ErrMismatchedChildSet signals a reorder sequence that is not a
	// permutation of the current child keys.
	ErrMismatchedChildSet = errors.New("arbor: mismatched child set")
)
