// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels, optionally wrapped with an
// operation tag via matrixErrorf; callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonRectangular is returned by FromRows/AssignRows when rows differ in length.
	ErrNonRectangular = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeExponent is returned by Pow/PowInPlace for k < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrShortRead is returned by Scan when the input ends before every cell is filled.
	ErrShortRead = errors.New("matrix: not enough values in input")
)

// Operation tags for uniform error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opPow       = "Pow"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opScan      = "Scan"
	opNew       = "NewDense"
	opFromRows  = "FromRows"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps err with the Dense method name and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
