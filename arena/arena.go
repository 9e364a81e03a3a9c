package arena

import (
	"fmt"
	"iter"
)

// Key identifies one occupied slot of an Arena.
//
// Keys are opaque, comparable and cheap to copy. A key stays valid until the
// value it refers to is removed from the arena. The zero Key is never issued
// and compares unequal to every issued key.
type Key struct {
	index uint32
	gen   uint32
}

// IsZero reports whether k is the zero Key, i.e. no key at all.
func (k Key) IsZero() bool {
	return k.gen == 0
}

func (k Key) String() string {
	if k.IsZero() {
		return "‹none›"
	}
	return fmt.Sprintf("‹%d·%d›", k.index, k.gen)
}

// slot is one storage cell. gen counts the occupancies of the cell and is
// bumped on every remove, which is what invalidates stale keys.
type slot[T any] struct {
	value    T
	gen      uint32
	occupied bool
}

// Arena is a growable pool of values of type T, addressed by generation-tagged
// keys. The zero value is an empty arena ready for use.
//
// Insert, Get and Remove all operate in O(1) amortized time. An Arena is not
// safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // indices of vacant slots, used LIFO
	count int
}

// WithCapacity creates an arena with storage for n values pre-allocated.
func WithCapacity[T any](n int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, n),
	}
}

// Reserve pre-allocates storage for n additional values.
func (a *Arena[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	grown := make([]slot[T], len(a.slots), len(a.slots)+n)
	copy(grown, a.slots)
	a.slots = grown
}

// Len returns the number of live values in the arena.
func (a *Arena[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.count
}

// IsEmpty reports whether the arena holds no values.
func (a *Arena[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Contains reports whether key refers to a live value.
func (a *Arena[T]) Contains(key Key) bool {
	_, ok := a.Get(key)
	return ok
}

// Insert stores value and returns a fresh key for it.
//
// Vacant slots are reused before the backing storage grows, but a reused slot
// never resurrects a previously issued key.
func (a *Arena[T]) Insert(value T) Key {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[index]
		assert(!s.occupied, "free list points at an occupied slot")
		s.gen++
		s.value = value
		s.occupied = true
		a.count++
		return Key{index: index, gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{value: value, gen: 1, occupied: true})
	a.count++
	return Key{index: uint32(len(a.slots) - 1), gen: 1}
}

// Get resolves key to a pointer at the stored value.
//
// The second return value is false if key is the zero Key, stale, or was not
// issued by this arena. The returned pointer stays valid until the value is
// removed; callers must not retain it across removals.
func (a *Arena[T]) Get(key Key) (*T, bool) {
	if a == nil || key.IsZero() || int(key.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[key.index]
	if !s.occupied || s.gen != key.gen {
		return nil, false
	}
	return &s.value, true
}

// Remove deletes the value referred to by key and returns it.
//
// The slot becomes available for reuse; key is invalid from now on. No other
// key is affected. Removing with a stale or foreign key reports false.
func (a *Arena[T]) Remove(key Key) (T, bool) {
	var zero T
	if _, ok := a.Get(key); !ok {
		return zero, false
	}
	s := &a.slots[key.index]
	value := s.value
	s.value = zero
	s.occupied = false
	s.gen++ // keys minted for this occupancy are now stale
	a.free = append(a.free, key.index)
	a.count--
	return value, true
}

// Clear removes all values, keeping the allocated storage for reuse.
//
// Every previously issued key is invalidated, exactly as if each value had
// been removed individually.
func (a *Arena[T]) Clear() {
	var zero T
	for i := range a.slots {
		s := &a.slots[i]
		if s.occupied {
			s.value = zero
			s.occupied = false
			s.gen++
			a.free = append(a.free, uint32(i))
		}
	}
	a.count = 0
}

// RangeKeys returns an iterator over the keys of all live values.
//
// The order is unspecified. The arena must not be mutated while iterating.
func (a *Arena[T]) RangeKeys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if a == nil {
			return
		}
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(Key{index: uint32(i), gen: s.gen}) {
				return
			}
		}
	}
}

// Range returns an iterator over key/value pairs of all live values.
//
// Values are yielded as pointers into the arena, so callers may update them
// in place. The order is unspecified. The arena must not be structurally
// mutated (Insert, Remove, Clear) while iterating.
func (a *Arena[T]) Range() iter.Seq2[Key, *T] {
	return func(yield func(Key, *T) bool) {
		if a == nil {
			return
		}
		for i := range a.slots {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(Key{index: uint32(i), gen: s.gen}, &s.value) {
				return
			}
		}
	}
}
