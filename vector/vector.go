// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"
	"log/slog"
)

// Operation tags used in error wrappers and log records.
const (
	opNew       = "New"
	opPush      = "PushBack"
	opMove      = "MoveBack"
	opEmplace   = "EmplaceBack"
	opPop       = "PopBack"
	opClear     = "Clear"
	opAssign    = "Assign"
	opGet       = "Get"
	opPut       = "Put"
	opCursorGet = "Get"
	opGrow      = "grow"
	opShrink    = "shrink"
	opTransfer  = "transfer"
)

// initialCapacity is the capacity of the first block allocated by growth.
const initialCapacity = 1

// Vector is a dynamic array with explicit size/capacity bookkeeping.
//
// The zero value is an empty vector with default options, ready to use.
// Invariant: 0 ≤ size ≤ Cap(); blk == nil iff Cap() == 0.
type Vector[T any] struct {
	blk    *block[T]
	size   int
	maxCap int
	logger *slog.Logger
}

// New returns an empty vector (Len == Cap == 0, no storage).
func New[T any](opts ...Option) *Vector[T] {
	cfg := newConfig(opts)

	return &Vector[T]{maxCap: cfg.maxCap, logger: cfg.logger}
}

// NewSized returns a vector of n zero-valued elements with Len == Cap == n.
//
// Errors:
//   - ErrNegativeSize if n < 0.
//   - ErrCapacityExceeded if n is above the capacity limit.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.presize(n); err != nil {
		return nil, err
	}

	return v, nil
}

// NewFilled returns a vector of n copies of fill with Len == Cap == n.
// Errors are the same as NewSized.
func NewFilled[T any](n int, fill T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.presize(n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v.blk.slots[i] = fill
	}

	return v, nil
}

// NewCopy returns a deep, independent copy of src that keeps src's size,
// capacity, and options. Elements are copied with Go assignment semantics.
// A nil src yields an empty vector.
func NewCopy[T any](src *Vector[T]) *Vector[T] {
	if src == nil {
		return New[T]()
	}
	v := &Vector[T]{maxCap: src.maxCap, logger: src.logger}
	if src.blk != nil {
		v.blk = allocate(len(src.blk.slots), v)
		copy(v.blk.slots, src.blk.slots[:src.size])
		v.size = src.size
	}

	return v
}

// Of builds a vector holding elems in order, with Len == Cap == len(elems).
func Of[T any](elems ...T) *Vector[T] {
	v := New[T]()
	if len(elems) > 0 {
		v.blk = allocate(len(elems), v)
		copy(v.blk.slots, elems)
		v.size = len(elems)
	}

	return v
}

// presize allocates n slots on a fresh vector and marks all of them live.
func (v *Vector[T]) presize(n int) error {
	if n < 0 {
		return vectorErrorf(opNew, ErrNegativeSize)
	}
	if n > v.limit() {
		return vectorErrorf(opNew, ErrCapacityExceeded)
	}
	if n > 0 {
		v.blk = allocate(n, v)
		v.size = n
	}

	return nil
}

// Clone is NewCopy(v).
func (v *Vector[T]) Clone() *Vector[T] { return NewCopy(v) }

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v.blk == nil {
		return 0
	}

	return len(v.blk.slots)
}

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the element at i. Unchecked: the caller guarantees 0 ≤ i < Len().
func (v *Vector[T]) At(i int) T { return v.blk.slots[i] }

// Ref returns a pointer to the element at i for in-place mutation.
// Unchecked, and the pointer is only meaningful until the next reallocation.
func (v *Vector[T]) Ref(i int) *T { return &v.blk.slots[i] }

// Set overwrites the element at i. Unchecked.
func (v *Vector[T]) Set(i int, x T) { v.blk.slots[i] = x }

// Get is the checked form of At.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, vectorIndexErrorf(opGet, i, ErrIndexOutOfBounds)
	}

	return v.blk.slots[i], nil
}

// Put is the checked form of Set.
func (v *Vector[T]) Put(i int, x T) error {
	if i < 0 || i >= v.size {
		return vectorIndexErrorf(opPut, i, ErrIndexOutOfBounds)
	}
	v.blk.slots[i] = x

	return nil
}

// Values returns a copy of the live elements in order. Empty vectors yield nil.
func (v *Vector[T]) Values() []T {
	if v.size == 0 {
		return nil
	}
	out := make([]T, v.size)
	copy(out, v.blk.slots[:v.size])

	return out
}

// All yields (index, element) pairs over the live range.
// Mutating the vector during iteration is not supported.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.blk.slots[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Values())
}

// limit returns the effective capacity limit (zero-value vectors use the default).
func (v *Vector[T]) limit() int {
	if v.maxCap <= 0 {
		return DefaultMaxCapacity
	}

	return v.maxCap
}

// log returns the effective logger (zero-value vectors discard).
func (v *Vector[T]) log() *slog.Logger {
	if v.logger == nil {
		return discardLogger
	}

	return v.logger
}

// reallocate replaces the backing block with one of exactly capacity slots.
//
// Implementation:
//   - Stage 1: allocate the new block (none for capacity 0).
//   - Stage 2: move the live elements into it, preserving positions.
//   - Stage 3: release the old block, invalidating its cursors.
//
// Callers guarantee capacity ≥ size and capacity ≤ limit().
func (v *Vector[T]) reallocate(capacity int, op string) {
	old, from := v.blk, v.Cap()

	var next *block[T]
	if capacity > 0 {
		next = allocate(capacity, v)
		if old != nil {
			next.moveFrom(old, v.size)
		}
	}
	if old != nil {
		old.release()
	}
	v.blk = next

	v.log().Debug("vector: reallocate",
		slog.String("op", op),
		slog.Int("from", from),
		slog.Int("to", capacity),
		slog.Int("size", v.size),
	)
}
