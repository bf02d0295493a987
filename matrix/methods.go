// SPDX-License-Identifier: MIT
// Package matrix: in-place mutators on *Dense.
//
// Every in-place operator computes into fresh storage first and only then
// swaps it into the receiver, so passing the receiver as its own operand
// (m.MulInPlace(m)) is safe.

package matrix

// Clear resets m to the 0×0 matrix and drops its storage.
func (m *Dense[T]) Clear() {
	m.r, m.c, m.data = 0, 0, nil
}

// Fill sets every cell to v.
func (m *Dense[T]) Fill(v T) {
	for k := range m.data {
		m.data[k] = v
	}
}

// SetIdentity overwrites m with ones on the main diagonal and zeros elsewhere.
// Works for any shape.
func (m *Dense[T]) SetIdentity() {
	clear(m.data)
	n := min(m.r, m.c)
	for i := 0; i < n; i++ {
		m.data[i*m.c+i] = 1
	}
}

// Transpose returns mᵀ as a new matrix. The transpose of an empty matrix is 0×0.
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	if m.r == 0 || m.c == 0 {
		return &Dense[T]{}
	}
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// TransposeInPlace replaces m with mᵀ (rows and columns swap).
func (m *Dense[T]) TransposeInPlace() {
	m.adopt(m.Transpose())
}

// Assign replaces m's shape and contents with a copy of src.
// Self-assignment is a no-op; a nil src clears m.
func (m *Dense[T]) Assign(src *Dense[T]) {
	if m == src {
		return
	}
	if src == nil {
		m.Clear()
		return
	}
	m.adopt(src.Clone())
}

// AssignRows replaces m with a copy of rows.
// On ErrNonRectangular m is unchanged.
func (m *Dense[T]) AssignRows(rows [][]T) error {
	next, err := FromRows(rows)
	if err != nil {
		return err
	}
	m.adopt(next)

	return nil
}

// AddInPlace sets m = m + b.
// On error m is unchanged.
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAdd, err)
	}
	for k := range m.data {
		m.data[k] += b.data[k]
	}

	return nil
}

// SubInPlace sets m = m - b.
// On error m is unchanged.
func (m *Dense[T]) SubInPlace(b *Dense[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opSub, err)
	}
	for k := range m.data {
		m.data[k] -= b.data[k]
	}

	return nil
}

// MulInPlace sets m = m·b; m takes the shape m.Rows × b.Cols.
// On error m is unchanged.
func (m *Dense[T]) MulInPlace(b *Dense[T]) error {
	next, err := Mul(m, b)
	if err != nil {
		return err
	}
	m.adopt(next)

	return nil
}

// PowInPlace sets m = m^k.
// On error m is unchanged.
func (m *Dense[T]) PowInPlace(k int) error {
	next, err := Pow(m, k)
	if err != nil {
		return err
	}
	m.adopt(next)

	return nil
}

// adopt takes over next's shape and storage.
func (m *Dense[T]) adopt(next *Dense[T]) {
	m.r, m.c, m.data = next.r, next.c, next.data
}
