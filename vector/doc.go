// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a dynamic array with explicit storage
// bookkeeping, and Cursor[T], a random-access position into that storage.
//
// Unlike a bare Go slice, Vector keeps the allocated slot count (Cap) apart
// from the live element count (Len) and drives both through a fixed,
// observable policy:
//
//   - Growth: when Len == Cap, PushBack/MoveBack/EmplaceBack reallocate to
//     1 (from an empty vector) or Cap*2, move the live elements over, release
//     the old block, and only then write the new element.
//   - Shrink: every PopBack recomputes candidate = Cap/2 and reallocates down
//     to exactly candidate when Len ≤ candidate (candidate 0 frees storage).
//   - Clear always drops to Len == Cap == 0.
//
// Capacity sequence for pushes from empty: 1, 2, 4, 4, 8, …
// Popping a {Len 3, Cap 4} vector three times yields Cap 2, 1, 0.
//
// Cursors:
//
//	Begin/End/Front/Back return Cursor values bound to the current storage
//	block. Any reallocation (growth, shrink, Clear, Assign*) releases that
//	block; cursors drawn from it become stale. Unchecked access (Value, Ptr,
//	Index, Set) on a stale cursor panics through the runtime bounds check and
//	never observes another block's data. The checked Get reports
//	ErrStaleCursor instead. On an empty vector all four accessors return the
//	zero Cursor, which compares equal across every empty vector.
//
// Access contract:
//
//	At/Ref/Set are unchecked: the caller guarantees 0 ≤ i < Len(). Get/Put
//	are the checked counterparts and return ErrIndexOutOfBounds.
//
// Concurrency:
//
//	Vector is not safe for concurrent use. One owner issues mutating calls;
//	traversal concurrent with mutation needs external synchronization.
//
// Complexity:
//
//	At/Set/cursor moves O(1); PushBack/PopBack O(1) amortized; Clear, NewCopy,
//	Assign O(n).
package vector
