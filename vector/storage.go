// SPDX-License-Identifier: MIT

package vector

// block is the contiguous backing storage exclusively owned by one Vector.
//
// len(slots) is the vector's capacity. Slots [0, size) hold live elements;
// slots [size, len(slots)) are allocated and kept at the zero value so that
// released elements do not pin memory for the garbage collector.
//
// A released block keeps its identity (cursors still compare against it) but
// owns no slots: released == true, slots == nil, owner == nil.
type block[T any] struct {
	slots    []T
	owner    *Vector[T]
	released bool
}

// allocate returns a zero-filled block with exactly capacity slots.
// Capacity must be > 0; an empty vector owns no block at all.
func allocate[T any](capacity int, owner *Vector[T]) *block[T] {
	return &block[T]{slots: make([]T, capacity), owner: owner}
}

// moveFrom transfers the first n elements of src into b, position for position,
// and resets the vacated source slots.
func (b *block[T]) moveFrom(src *block[T], n int) {
	copy(b.slots[:n], src.slots[:n])
	clear(src.slots[:n])
}

// destroy resets slots [from, to) to the zero value.
func (b *block[T]) destroy(from, to int) {
	clear(b.slots[from:to])
}

// release destroys every slot and drops the storage. Cursors that still
// reference b observe released == true from here on.
func (b *block[T]) release() {
	clear(b.slots)
	b.slots = nil
	b.owner = nil
	b.released = true
}
