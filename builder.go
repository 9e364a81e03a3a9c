package arbor

// Builder stages a tree shape without a live Tree.
//
// Building a tree directly requires threading the *Tree and the parent keys
// through every function that contributes nodes. A Builder decouples that:
// contributors record values against small dense indices, builders can be
// grafted into one another, and the actual Tree is materialized at the end.
//
//	var b arbor.Builder[int]
//	root := b.PushRoot(0)
//	child := b.Push(1, root)
//	b.Push(2, child)
//	tree := b.Tree()
//
// Index 0 always denotes the root. The zero value of Builder is an empty
// builder; its Tree() is the empty tree.
type Builder[T any] struct {
	rooted    bool
	rootValue T
	hooks     []hook[T]
}

// hook is one staged node: a value plus the dense index of its parent,
// where index 0 means the root.
type hook[T any] struct {
	value  T
	parent int
}

// PushRoot stages the root value and returns its index, always 0.
//
// A previously staged build is discarded, like InsertRoot after Clear.
func (b *Builder[T]) PushRoot(value T) int {
	b.rooted = true
	b.rootValue = value
	b.hooks = b.hooks[:0]
	return 0
}

// Push stages value as a child of the staged node at parentIndex and returns
// the new node's index.
//
// Push panics if no root has been staged or parentIndex is out of range;
// indices are builder-internal bookkeeping, not caller data.
func (b *Builder[T]) Push(value T, parentIndex int) int {
	assert(b.rooted, "Builder.Push before PushRoot")
	assert(parentIndex >= 0 && parentIndex <= len(b.hooks), "Builder.Push: parent index out of range")
	b.hooks = append(b.hooks, hook[T]{value: value, parent: parentIndex})
	return len(b.hooks)
}

// Len returns the number of staged nodes.
func (b *Builder[T]) Len() int {
	if b == nil || !b.rooted {
		return 0
	}
	return len(b.hooks) + 1
}

// Graft appends the complete staged content of other underneath the staged
// node at parentIndex. other's root becomes a child of that node.
//
// An empty other is a no-op. If b itself is empty, it takes over other's
// content and parentIndex is ignored.
func (b *Builder[T]) Graft(other *Builder[T], parentIndex int) {
	if other == nil || !other.rooted {
		return
	}
	if !b.rooted {
		b.rooted = true
		b.rootValue = other.rootValue
		b.hooks = append(b.hooks[:0], other.hooks...)
		return
	}
	assert(parentIndex >= 0 && parentIndex <= len(b.hooks), "Builder.Graft: parent index out of range")
	offset := len(b.hooks) + 1
	b.hooks = append(b.hooks, hook[T]{value: other.rootValue, parent: parentIndex})
	for _, h := range other.hooks {
		parent := h.parent + offset
		if h.parent == 0 {
			parent = offset
		}
		b.hooks = append(b.hooks, hook[T]{value: h.value, parent: parent})
	}
}

// Tree materializes the staged build into a Tree.
//
// Staging indices map onto keys in push order. The builder remains usable
// afterwards and repeated calls produce independent trees.
func (b *Builder[T]) Tree() *Tree[T] {
	if b == nil || !b.rooted {
		return New[T]()
	}
	tree := WithCapacity[T](len(b.hooks) + 1)
	rootKey, err := tree.InsertRoot(b.rootValue)
	assert(err == nil, "insert into fresh tree failed")

	keys := make([]Key, 0, len(b.hooks)+1)
	keys = append(keys, rootKey)
	for _, h := range b.hooks {
		key, err := tree.Insert(keys[h.parent], h.value)
		assert(err == nil, "staged parent key does not resolve")
		keys = append(keys, key)
	}
	return tree
}
