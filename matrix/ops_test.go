// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvblocks/matrix"
)

// celsius checks that named numeric types satisfy matrix.Number.
type celsius float64

// TestAddSub covers element-wise kernels and their shape checks.
func TestAddSub(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{11, 22}, {33, 44}}, sum.ToRows())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, [][]int{{9, 18}, {27, 36}}, diff.ToRows())

	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.ToRows(), "operands must stay untouched")

	c := mustRows(t, [][]int{{1, 2, 3}})
	_, err = matrix.Add(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul checks a rectangular product and the inner-dimension guard.
func TestMul(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{58, 64}, {139, 154}}, p.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPow checks binary exponentiation against Fibonacci numbers.
func TestPow(t *testing.T) {
	fib := mustRows(t, [][]int64{{1, 1}, {1, 0}})

	tests := []struct {
		k    int
		want [][]int64
	}{
		{0, [][]int64{{1, 0}, {0, 1}}},
		{1, [][]int64{{1, 1}, {1, 0}}},
		{2, [][]int64{{2, 1}, {1, 1}}},
		{10, [][]int64{{89, 55}, {55, 34}}},
		{50, [][]int64{{20365011074, 12586269025}, {12586269025, 7778742049}}},
	}
	for _, tc := range tests {
		got, err := matrix.Pow(fib, tc.k)
		require.NoError(t, err, "k=%d", tc.k)
		require.Equal(t, tc.want, got.ToRows(), "k=%d", tc.k)
	}
	require.Equal(t, [][]int64{{1, 1}, {1, 0}}, fib.ToRows())

	_, err := matrix.Pow(mustRows(t, [][]int64{{1, 2}}), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Pow(fib, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
	_, err = matrix.Pow[int64](nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale checks scalar multiplication on a named float type.
func TestScale(t *testing.T) {
	m := mustRows(t, [][]celsius{{1.5, -2}})
	s, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	require.Equal(t, [][]celsius{{3, -4}}, s.ToRows())
}

// TestInPlaceOperators covers the compound operators, including self operands.
func TestInPlaceOperators(t *testing.T) {
	m := mustRows(t, [][]int{{1, 1}, {1, 0}})

	require.NoError(t, m.AddInPlace(m))
	require.Equal(t, [][]int{{2, 2}, {2, 0}}, m.ToRows())

	require.NoError(t, m.SubInPlace(mustRows(t, [][]int{{1, 1}, {1, 0}})))
	require.Equal(t, [][]int{{1, 1}, {1, 0}}, m.ToRows())

	require.NoError(t, m.MulInPlace(m))
	require.Equal(t, [][]int{{2, 1}, {1, 1}}, m.ToRows())

	require.NoError(t, m.PowInPlace(3))
	require.Equal(t, [][]int{{13, 8}, {8, 5}}, m.ToRows())

	require.NoError(t, m.PowInPlace(0))
	require.Equal(t, [][]int{{1, 0}, {0, 1}}, m.ToRows())

	wide := mustRows(t, [][]int{{1, 2, 3}})
	require.ErrorIs(t, m.AddInPlace(wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, wide.PowInPlace(2), matrix.ErrNonSquare)
	require.Equal(t, [][]int{{1, 2, 3}}, wide.ToRows())

	require.NoError(t, m.MulInPlace(mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})))
	require.Equal(t, []int{2, 3}, m.Dimensions())
}
