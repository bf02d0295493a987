// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned when a sized constructor receives n < 0.
	ErrNegativeSize = errors.New("vector: negative size")

	// ErrCapacityExceeded signals that a requested allocation would exceed the
	// configured capacity limit. The vector is left untouched.
	ErrCapacityExceeded = errors.New("vector: capacity limit exceeded")

	// ErrIndexOutOfBounds is returned by the checked accessors (Get/Put) when
	// the index is outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrSentinelCursor is returned when dereferencing the zero Cursor.
	ErrSentinelCursor = errors.New("vector: sentinel cursor")

	// ErrStaleCursor is returned when dereferencing a cursor whose storage
	// block has been released by a reallocation.
	ErrStaleCursor = errors.New("vector: stale cursor")

	// ErrCursorOutOfRange is returned when a live cursor points outside the
	// current live element range.
	ErrCursorOutOfRange = errors.New("vector: cursor out of range")
)

// vectorErrorf attaches an operation tag to a sentinel, keeping errors.Is intact.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("Vector.%s: %w", op, err)
}

// vectorIndexErrorf is vectorErrorf for operations addressed by index.
func vectorIndexErrorf(op string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", op, i, err)
}

// cursorErrorf tags a cursor error with the operation and position.
func cursorErrorf(op string, pos int, err error) error {
	return fmt.Errorf("Cursor.%s(%d): %w", op, pos, err)
}
