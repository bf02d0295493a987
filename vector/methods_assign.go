// SPDX-License-Identifier: MIT

package vector

import "log/slog"

// Assign replaces v's contents with a copy of src, taking src's size and
// capacity. Self-assignment is a no-op; a nil src clears v.
//
// Implementation:
//   - Stage 1: identity check (v == src) returns before anything is released.
//   - Stage 2: allocate and fill the new block from src while v's old block
//     is still intact.
//   - Stage 3: release the old block and install the new one.
//
// Errors:
//   - ErrCapacityExceeded if src's capacity is above v's limit (v unchanged).
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src == nil || src.blk == nil {
		v.Clear()
		return nil
	}
	capacity := len(src.blk.slots)
	if capacity > v.limit() {
		return vectorErrorf(opAssign, ErrCapacityExceeded)
	}

	next := allocate(capacity, v)
	copy(next.slots, src.blk.slots[:src.size])
	v.install(next, src.size, opAssign)

	return nil
}

// AssignMove transfers src's storage to v and leaves src empty
// (Len == Cap == 0). No element is copied. Self-move is a no-op.
// Cursors into src's storage now observe v as the owner.
func (v *Vector[T]) AssignMove(src *Vector[T]) {
	if v == src {
		return
	}
	if src == nil || src.blk == nil {
		v.Clear()
		return
	}
	next, size := src.blk, src.size
	src.blk, src.size = nil, 0
	next.owner = v
	v.install(next, size, opTransfer)
}

// AssignValues replaces v's contents with elems, in order, with
// Len == Cap == len(elems). elems may alias v's own storage (e.g. v.Values()).
//
// Errors:
//   - ErrCapacityExceeded if len(elems) is above v's limit (v unchanged).
func (v *Vector[T]) AssignValues(elems ...T) error {
	if len(elems) == 0 {
		v.Clear()
		return nil
	}
	if len(elems) > v.limit() {
		return vectorErrorf(opAssign, ErrCapacityExceeded)
	}

	next := allocate(len(elems), v)
	copy(next.slots, elems)
	v.install(next, len(elems), opAssign)

	return nil
}

// install releases v's current block and adopts next with size live elements.
func (v *Vector[T]) install(next *block[T], size int, op string) {
	from := v.Cap()
	if v.blk != nil {
		v.blk.destroy(0, v.size)
		v.blk.release()
	}
	v.blk, v.size = next, size

	v.log().Debug("vector: reallocate",
		slog.String("op", op),
		slog.Int("from", from),
		slog.Int("to", len(next.slots)),
		slog.Int("size", size),
	)
}
