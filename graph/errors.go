// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexExists indicates AddVertex was called for a vertex already present.
	ErrVertexExists = errors.New("graph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeExists indicates AddEdge was called for an edge already present.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight.
	ErrInvalidWeight = errors.New("graph: invalid edge weight")
)

// graphErrorf attaches the operation and its arguments to a sentinel.
func graphErrorf(op string, args string, err error) error {
	return fmt.Errorf("Graph.%s(%s): %w", op, args, err)
}

// Builder errors.
var (
	// ErrTooFewVertices indicates a size parameter below a builder's minimum.
	ErrTooFewVertices = errors.New("graph: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("graph: probability out of range")

	// ErrNeedRandSource indicates a stochastic builder was given a nil *rand.Rand.
	ErrNeedRandSource = errors.New("graph: nil random source")
)

// ErrWalkOverflow indicates a walk count too large for int64.
var ErrWalkOverflow = errors.New("graph: walk count overflow")
