// SPDX-License-Identifier: MIT

package vector

import "log/slog"

// reserveOne guarantees a free slot at index size, growing when size == Cap().
//
// Implementation:
//   - Stage 1: fast path when a free slot already exists.
//   - Stage 2: target = 1 from empty, else Cap()*2, clamped to the limit.
//   - Stage 3: fail with ErrCapacityExceeded before touching storage if the
//     clamped target cannot hold one more element.
//   - Stage 4: reallocate.
func (v *Vector[T]) reserveOne(op string) error {
	capacity := v.Cap()
	if v.size < capacity {
		return nil
	}

	limit := v.limit()
	target := initialCapacity
	if capacity > 0 {
		target = limit
		if capacity <= limit/2 {
			target = capacity * 2
		}
	}
	if target <= v.size {
		return vectorErrorf(op, ErrCapacityExceeded)
	}
	v.reallocate(target, opGrow)

	return nil
}

// PushBack appends a copy of x, growing storage first when full.
// Returns ErrCapacityExceeded (vector unchanged) if growth hits the limit.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.reserveOne(opPush); err != nil {
		return err
	}
	v.blk.slots[v.size] = x
	v.size++

	return nil
}

// MoveBack appends *src and resets *src to the zero value, transferring
// ownership of whatever src referenced. src must be non-nil.
// On error *src is left untouched.
func (v *Vector[T]) MoveBack(src *T) error {
	if err := v.reserveOne(opMove); err != nil {
		return err
	}
	var zero T
	v.blk.slots[v.size], *src = *src, zero
	v.size++

	return nil
}

// EmplaceBack constructs the new last element in place: init receives a
// pointer to the zeroed target slot after any growth has completed.
// A nil init appends the zero value.
func (v *Vector[T]) EmplaceBack(init func(slot *T)) error {
	if err := v.reserveOne(opEmplace); err != nil {
		return err
	}
	slot := &v.blk.slots[v.size]
	var zero T
	*slot = zero
	if init != nil {
		init(slot)
	}
	v.size++

	return nil
}

// PopBack destroys the last element and applies the shrink policy:
// candidate = Cap()/2, and storage is reallocated to exactly candidate
// whenever Len() ≤ candidate. No-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.blk.destroy(v.size, v.size+1)

	candidate := v.Cap() / 2
	if v.size <= candidate {
		v.reallocate(candidate, opShrink)
	}
}

// Clear destroys every element and releases storage: Len() == Cap() == 0.
func (v *Vector[T]) Clear() {
	if v.blk == nil {
		v.size = 0
		return
	}
	from := v.Cap()
	v.blk.destroy(0, v.size)
	v.blk.release()
	v.blk, v.size = nil, 0

	v.log().Debug("vector: reallocate",
		slog.String("op", opClear),
		slog.Int("from", from),
		slog.Int("to", 0),
		slog.Int("size", 0),
	)
}
