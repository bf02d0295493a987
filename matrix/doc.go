// SPDX-License-Identifier: MIT

// Package matrix provides Dense[T], a generic row-major numeric matrix with
// element-wise arithmetic, matrix product, and fast exponentiation.
//
// The element type is any integer or floating-point type (see Number).
// Shapes with zero rows or zero columns are legal and represent the empty
// matrix; the transpose of an empty matrix is 0×0.
//
// Operations:
//
//	Add(a, b), Sub(a, b)   // same shape          → ErrDimensionMismatch
//	Mul(a, b)              // a.Cols == b.Rows    → ErrDimensionMismatch
//	Pow(m, k)              // square, k ≥ 0       → ErrNonSquare, ErrNegativeExponent
//	m.AddInPlace(b), m.SubInPlace(b), m.MulInPlace(b), m.PowInPlace(k)
//	m.Transpose(), m.TransposeInPlace(), m.SetIdentity(), m.Fill(v)
//
// Pow uses binary exponentiation: O(n³·log k). Pow(m, 0) is the identity.
//
// Text I/O:
//
//	String()   → "[1, 2]\n[3, 4]\n"
//	WriteTo(w) → "1 2\n3 4\n"
//	Scan(r)    fills a pre-sized matrix from whitespace-separated values.
//
// All public accessors are bounds-checked and return sentinel errors
// (ErrOutOfRange, …) instead of panicking. Dense is not safe for concurrent
// mutation.
package matrix
