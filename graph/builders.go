// SPDX-License-Identifier: MIT
// Package: graph
//
// builders.go: deterministic constructors for common topologies over int vertices.
//
// Contract:
//   - Vertices are 0..n-1, added in ascending order.
//   - Edges use the graph's default weight (see WithDefaultWeight).
//   - Size checks fail fast with ErrTooFewVertices before any work.

package graph

import (
	"fmt"
	"math/rand"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minGridSide      = 1
)

// withVertices returns a graph holding 0..n-1 and no edges.
func withVertices(n int, opts []Option) *Graph[int] {
	g := New[int](opts...)
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]float64)
	}

	return g
}

// connectAll adds each pair in order, wrapping the first failure with method.
func connectAll(g *Graph[int], method string, pairs [][2]int) error {
	for _, p := range pairs {
		if err := g.Connect(p[0], p[1]); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

func tooFew(method, param string, got, want int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, want, ErrTooFewVertices)
}

// Path returns P_n: 0-1-…-(n-1).
func Path(n int, opts ...Option) (*Graph[int], error) {
	if n < minPathNodes {
		return nil, tooFew(methodPath, "n", n, minPathNodes)
	}
	g := withVertices(n, opts)
	pairs := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}

	return g, connectAll(g, methodPath, pairs)
}

// Cycle returns C_n: Path(n) closed by {n-1, 0}.
func Cycle(n int, opts ...Option) (*Graph[int], error) {
	if n < minCycleNodes {
		return nil, tooFew(methodCycle, "n", n, minCycleNodes)
	}
	g := withVertices(n, opts)
	pairs := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % n})
	}

	return g, connectAll(g, methodCycle, pairs)
}

// Complete returns K_n.
// Complexity: O(n²) edges.
func Complete(n int, opts ...Option) (*Graph[int], error) {
	if n < minCompleteNodes {
		return nil, tooFew(methodComplete, "n", n, minCompleteNodes)
	}
	g := withVertices(n, opts)
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return g, connectAll(g, methodComplete, pairs)
}

// Star returns a hub 0 joined to leaves 1..n-1.
func Star(n int, opts ...Option) (*Graph[int], error) {
	if n < minStarNodes {
		return nil, tooFew(methodStar, "n", n, minStarNodes)
	}
	g := withVertices(n, opts)
	pairs := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{0, i})
	}

	return g, connectAll(g, methodStar, pairs)
}

// Grid returns the rows×cols 4-neighborhood lattice; cell (r, c) is vertex r*cols+c.
func Grid(rows, cols int, opts ...Option) (*Graph[int], error) {
	if rows < minGridSide {
		return nil, tooFew(methodGrid, "rows", rows, minGridSide)
	}
	if cols < minGridSide {
		return nil, tooFew(methodGrid, "cols", cols, minGridSide)
	}
	g := withVertices(rows*cols, opts)
	pairs := make([][2]int, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				pairs = append(pairs, [2]int{v, v + 1})
			}
			if r+1 < rows {
				pairs = append(pairs, [2]int{v, v + cols})
			}
		}
	}

	return g, connectAll(g, methodGrid, pairs)
}

// RandomSparse returns an Erdős–Rényi G(n, p) graph: each pair i<j is joined
// with probability p, drawn from rng in ascending (i, j) order.
// A fixed seed therefore yields a fixed graph.
func RandomSparse(n int, p float64, rng *rand.Rand, opts ...Option) (*Graph[int], error) {
	if n < minPathNodes {
		return nil, tooFew(methodRandomSparse, "n", n, minPathNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}
	g := withVertices(n, opts)
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return g, connectAll(g, methodRandomSparse, pairs)
}
