// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep loop orders fixed so results are reproducible.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(1) (view).

package matrix

import "fmt"

// Dense is a row-major matrix of T.
//   - r, c hold the dimensions; either may be zero (empty matrix).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[T Number] struct {
	r, c int
	data []T
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0 && cols ≥ 0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNew, rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Zeros is NewDense under an intention-revealing name.
func Zeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewFilled creates an r×c matrix with every cell set to v.
func NewFilled[T Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// Identity returns an r×c matrix with ones on the main diagonal
// (min(r, c) of them) and zeros elsewhere.
func Identity[T Number](rows, cols int) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.SetIdentity()

	return m, nil
}

// FromRows copies a rectangular [][]T into a new matrix.
// An empty (or nil) input yields the 0×0 matrix.
//
// Errors:
//   - ErrNonRectangular if rows differ in length.
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	r, c, err := rectShape(rows)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// rectShape returns the shape of rows or ErrNonRectangular.
func rectShape[T Number](rows [][]T) (r, c int, err error) {
	r = len(rows)
	if r == 0 {
		return 0, 0, nil
	}
	c = len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return 0, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrNonRectangular)
		}
	}

	return r, c, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Dimensions returns {Rows(), Cols()}.
func (m *Dense[T]) Dimensions() []int { return []int{m.r, m.c} }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(opAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(opSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a mutable view of row i: writes through it change m.
// The view is capped to the row, so appending to it never touches row i+1.
// It stays valid until the next shape-changing call (Clear, Assign*, TransposeInPlace, …).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(opRow, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// ToRows returns a deep [][]T copy of m.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of m.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and elements.
// Two nil matrices are equal.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}
