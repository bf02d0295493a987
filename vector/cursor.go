// SPDX-License-Identifier: MIT

package vector

import "cmp"

// Cursor is a random-access position into one storage block of a Vector.
//
// A Cursor is a weak reference. It does not keep the vector from
// reallocating, and it becomes stale when its block is released (growth,
// shrink, Clear, Assign*). Unchecked access through a stale or sentinel cursor
// panics; Get reports the condition instead.
//
// Cursors are comparable values: == is position equality within the same
// block. Ordering (Less, Compare, Distance, …) is meaningful only between
// cursors drawn from the same vector without an intervening reallocation.
// The zero value is the sentinel cursor.
type Cursor[T any] struct {
	blk *block[T]
	pos int
}

// Begin returns a cursor to the first element, or the sentinel when empty.
func (v *Vector[T]) Begin() Cursor[T] { return v.cursorAt(0) }

// End returns a cursor one past the last element, or the sentinel when empty.
func (v *Vector[T]) End() Cursor[T] { return v.cursorAt(v.size) }

// Front returns a cursor to the first element, or the sentinel when empty.
func (v *Vector[T]) Front() Cursor[T] { return v.cursorAt(0) }

// Back returns a cursor to the last element, or the sentinel when empty.
func (v *Vector[T]) Back() Cursor[T] { return v.cursorAt(v.size - 1) }

func (v *Vector[T]) cursorAt(pos int) Cursor[T] {
	if v.size == 0 {
		return Cursor[T]{}
	}

	return Cursor[T]{blk: v.blk, pos: pos}
}

// Pos returns the cursor's offset from the start of its block.
func (c Cursor[T]) Pos() int { return c.pos }

// IsSentinel reports whether c is the "no element" cursor.
func (c Cursor[T]) IsSentinel() bool { return c.blk == nil }

// Valid reports whether c is bound to storage that has not been released.
// It says nothing about whether c.Pos() is dereferenceable; see Get.
func (c Cursor[T]) Valid() bool { return c.blk != nil && !c.blk.released }

// ---------- navigation ----------

// Inc advances c by one and returns the advanced cursor (pre-increment).
func (c *Cursor[T]) Inc() Cursor[T] {
	c.pos++
	return *c
}

// PostInc advances c by one and returns the cursor as it was before.
func (c *Cursor[T]) PostInc() Cursor[T] {
	prev := *c
	c.pos++

	return prev
}

// Dec moves c back by one and returns the moved cursor (pre-decrement).
func (c *Cursor[T]) Dec() Cursor[T] {
	c.pos--
	return *c
}

// PostDec moves c back by one and returns the cursor as it was before.
func (c *Cursor[T]) PostDec() Cursor[T] {
	prev := *c
	c.pos--

	return prev
}

// Add returns a new cursor n positions after c. c is unchanged.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.pos += n
	return c
}

// Sub returns a new cursor n positions before c. c is unchanged.
func (c Cursor[T]) Sub(n int) Cursor[T] {
	c.pos -= n
	return c
}

// Advance moves c forward by n in place and returns the result.
func (c *Cursor[T]) Advance(n int) Cursor[T] {
	c.pos += n
	return *c
}

// Retreat moves c backward by n in place and returns the result.
func (c *Cursor[T]) Retreat(n int) Cursor[T] {
	c.pos -= n
	return *c
}

// ---------- dereference (unchecked) ----------

// Value returns the referenced element.
func (c Cursor[T]) Value() T { return c.blk.slots[c.pos] }

// Ptr returns a pointer to the referenced element for member access.
func (c Cursor[T]) Ptr() *T { return &c.blk.slots[c.pos] }

// Index returns the element n positions after c; c.Index(n) ≡ c.Add(n).Value().
func (c Cursor[T]) Index(n int) T { return c.blk.slots[c.pos+n] }

// Set overwrites the referenced element.
func (c Cursor[T]) Set(x T) { c.blk.slots[c.pos] = x }

// Get is the checked dereference.
//
// Errors:
//   - ErrSentinelCursor if c is the sentinel.
//   - ErrStaleCursor if c's block was released by a reallocation.
//   - ErrCursorOutOfRange if c is outside the owner's live range (End included).
func (c Cursor[T]) Get() (T, error) {
	var zero T
	switch {
	case c.blk == nil:
		return zero, cursorErrorf(opCursorGet, c.pos, ErrSentinelCursor)
	case c.blk.released:
		return zero, cursorErrorf(opCursorGet, c.pos, ErrStaleCursor)
	case c.pos < 0 || c.pos >= c.blk.owner.size:
		return zero, cursorErrorf(opCursorGet, c.pos, ErrCursorOutOfRange)
	}

	return c.blk.slots[c.pos], nil
}

// ---------- ordering ----------

// Equal reports c == o.
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c == o }

// NotEqual reports c != o.
func (c Cursor[T]) NotEqual(o Cursor[T]) bool { return c != o }

// Less reports whether c is before o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.pos < o.pos }

// Greater reports whether c is after o.
func (c Cursor[T]) Greater(o Cursor[T]) bool { return c.pos > o.pos }

// LessOrEqual reports !(c > o).
func (c Cursor[T]) LessOrEqual(o Cursor[T]) bool { return !c.Greater(o) }

// GreaterOrEqual reports !(c < o).
func (c Cursor[T]) GreaterOrEqual(o Cursor[T]) bool { return !c.Less(o) }

// Compare returns -1, 0 or +1 as c is before, at, or after o.
func (c Cursor[T]) Compare(o Cursor[T]) int { return cmp.Compare(c.pos, o.pos) }

// Distance returns the number of steps from c to o (o - c).
func (c Cursor[T]) Distance(o Cursor[T]) int { return o.pos - c.pos }
