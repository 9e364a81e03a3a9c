/*
Package arena provides a keyed slot pool with generation-tagged keys.

The arena hands out a stable Key for every inserted value and resolves keys
back to values in constant time. Removing a value frees its slot for reuse,
but never relocates or invalidates any other entry. A reused slot carries a
bumped generation counter, so keys minted before the reuse are detectably
stale instead of silently aliasing the new occupant.

The arena is a pure object pool. It knows nothing about relations between the
values it stores; clients like package arbor layer structure on top of it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package arena

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
