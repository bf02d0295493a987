// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvblocks/matrix"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestNewDenseShapes checks zero-sized shapes are legal and negatives are rejected.
func TestNewDenseShapes(t *testing.T) {
	m, err := matrix.NewDense[int](0, 5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 5}, m.Dimensions())

	_, err = matrix.NewDense[int](-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense[float64](2, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	z, err := matrix.Zeros[float64](2, 3)
	require.NoError(t, err)
	rows, cols := z.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.False(t, z.IsSquare())
}

// TestFilledAndIdentity checks the value-initialising constructors.
func TestFilledAndIdentity(t *testing.T) {
	f, err := matrix.NewFilled(2, 2, 7)
	require.NoError(t, err)
	require.Equal(t, [][]int{{7, 7}, {7, 7}}, f.ToRows())

	id, err := matrix.Identity[int](2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}}, id.ToRows())

	_, err = matrix.Identity[int](-2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromRows covers rectangular, empty and ragged input.
func TestFromRows(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	empty := mustRows[int](t, nil)
	require.Equal(t, []int{0, 0}, empty.Dimensions())

	_, err := matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
}

// TestAtSetOutOfRange ensures At/Set/Row return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.5), matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 2.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

// TestRowView checks that Row aliases storage but cannot spill into the next row.
func TestRowView(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	row, err := m.Row(0)
	require.NoError(t, err)

	row[1] = 20
	_ = append(row, 99)

	require.Equal(t, [][]int{{1, 20}, {3, 4}}, m.ToRows())
}

// TestCloneIndependence ensures Clone and Assign produce independent storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))

	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
	require.False(t, m.Equal(c))

	var a matrix.Dense[int]
	a.Assign(m)
	require.True(t, a.Equal(m))
	require.NoError(t, a.Set(1, 1, 0))
	v, _ = m.At(1, 1)
	require.Equal(t, 4, v)

	m.Assign(m)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.ToRows())

	m.Assign(nil)
	require.Equal(t, []int{0, 0}, m.Dimensions())
}

// TestAssignRows checks replacement and the unchanged-on-error guarantee.
func TestAssignRows(t *testing.T) {
	m := mustRows(t, [][]int{{1}})
	require.NoError(t, m.AssignRows([][]int{{1, 2, 3}}))
	require.Equal(t, []int{1, 3}, m.Dimensions())

	require.ErrorIs(t, m.AssignRows([][]int{{1}, {2, 3}}), matrix.ErrNonRectangular)
	require.Equal(t, [][]int{{1, 2, 3}}, m.ToRows())
}

// TestShapeMutators covers Clear, Fill, SetIdentity and transposition.
func TestShapeMutators(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	tr := m.Transpose()
	if diff := cmp.Diff([][]int{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows()); diff != "" {
		t.Fatalf("Transpose mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []int{2, 3}, m.Dimensions(), "Transpose must not mutate")

	m.TransposeInPlace()
	require.True(t, m.Equal(tr))

	m.Fill(9)
	require.Equal(t, [][]int{{9, 9}, {9, 9}, {9, 9}}, m.ToRows())

	m.SetIdentity()
	require.Equal(t, [][]int{{1, 0}, {0, 1}, {0, 0}}, m.ToRows())

	m.Clear()
	require.Equal(t, []int{0, 0}, m.Dimensions())

	empty, err := matrix.NewDense[int](0, 4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, empty.Transpose().Dimensions())
}

// TestEqual checks shape- and value-sensitive equality, including nil.
func TestEqual(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}})
	b := mustRows(t, [][]int{{1}, {2}})
	require.False(t, a.Equal(b))
	require.True(t, a.Equal(a.Clone()))

	var n1, n2 *matrix.Dense[int]
	require.True(t, n1.Equal(n2))
	require.False(t, a.Equal(nil))
}
