// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels producing fresh results.
//
// Purpose:
//   - Element-wise Add/Sub, matrix product Mul, Scale, and binary
//     exponentiation Pow. Operands are never mutated.
//
// Determinism:
//   - Flat 0..n-1 loops for element-wise kernels; i→k→j for Mul.

package matrix

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop over the row-major buffers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T Number](a, b *Dense[T], negate bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	if negate {
		for k := range out.data {
			out.data[k] = a.data[k] - b.data[k]
		}
	} else {
		for k := range out.data {
			out.data[k] = a.data[k] + b.data[k]
		}
	}

	return out, nil
}

// Add returns a + b. Shapes must match.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b. Shapes must match.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul returns the matrix product a·b (a.Rows × b.Cols).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j accumulation over flat buffers, skipping zero a[i,k].
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul is the unchecked product kernel shared by Mul and Pow.
func mul[T Number](a, b *Dense[T]) *Dense[T] {
	n, bc := a.c, b.c
	out := &Dense[T]{r: a.r, c: bc, data: make([]T, a.r*bc)}
	var (
		i, k, j    int
		av         T
		rowA, rowR int
		rowB       int
	)
	for i = 0; i < a.r; i++ {
		rowA, rowR = i*n, i*bc
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * bc
			for j = 0; j < bc; j++ {
				out.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return out
}

// Scale returns alpha·m.
func Scale[T Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for k, v := range m.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Pow returns m^k by binary exponentiation; Pow(m, 0) is the identity of m's size.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); reject k < 0.
//   - Stage 2: result = I, base = m; for each bit of k, multiply result by
//     base when the bit is set, then square base.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeExponent.
//
// Complexity:
//   - Time O(n³·log k), Space O(n²).
func Pow[T Number](m *Dense[T], k int) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}

	result := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	result.SetIdentity()
	base := m.Clone()
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			result = mul(result, base)
		}
		if k > 1 {
			base = mul(base, base)
		}
	}

	return result, nil
}
