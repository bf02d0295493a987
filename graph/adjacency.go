// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvblocks/matrix"
)

const opWalks = "Walks"

// walkLimit bounds the counts Walks reports; at or above it ErrWalkOverflow is returned.
const walkLimit = 1 << 62

// AdjacencyMatrix is a dense snapshot of a Graph.
// Mat[i][j] holds the weight of {Vertex(i), Vertex(j)} and 0 where no edge exists.
// Vertices are indexed in ascending order.
type AdjacencyMatrix[T cmp.Ordered] struct {
	Mat         *matrix.Dense[float64]
	VertexIndex map[T]int
	vertices    []T
	links       *matrix.Dense[int64] // 1 where an edge exists, whatever its weight
}

// NewAdjacencyMatrix snapshots g.
// Later changes to g are not reflected.
//
// Complexity: O(V² + E).
func NewAdjacencyMatrix[T cmp.Ordered](g *Graph[T]) *AdjacencyMatrix[T] {
	vertices := g.Vertices()
	idx := make(map[T]int, len(vertices))
	for i, v := range vertices {
		idx[v] = i
	}
	// A non-negative square shape cannot fail.
	mat, _ := matrix.NewDense[float64](len(vertices), len(vertices))
	links, _ := matrix.NewDense[int64](len(vertices), len(vertices))
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		_ = mat.Set(i, j, e.Weight)
		_ = mat.Set(j, i, e.Weight)
		_ = links.Set(i, j, 1)
		_ = links.Set(j, i, 1)
	}

	return &AdjacencyMatrix[T]{Mat: mat, VertexIndex: idx, vertices: vertices, links: links}
}

// Vertex returns the vertex stored at row/column i.
func (am *AdjacencyMatrix[T]) Vertex(i int) T { return am.vertices[i] }

// Walks returns the number of walks of exactly k edges from u to v,
// ignoring weights. A self-loop counts as one step. Zero-weight edges count.
//
// Implementation:
//   - Stage 1: A^k over the 0/1 edge mask by binary exponentiation.
//   - Stage 2: the same power in float64 estimates the magnitude; int64
//     arithmetic wraps modulo 2^64, so A^k[u][v] is exact whenever the
//     estimate stays below 2^62.
//
// Errors:
//   - ErrVertexNotFound for unknown endpoints.
//   - ErrWalkOverflow if the count reaches 2^62.
//   - matrix.ErrNegativeExponent for k < 0.
func (am *AdjacencyMatrix[T]) Walks(u, v T, k int) (int64, error) {
	i, ok := am.VertexIndex[u]
	if !ok {
		return 0, graphErrorf(opWalks, fmt.Sprint(u), ErrVertexNotFound)
	}
	j, ok := am.VertexIndex[v]
	if !ok {
		return 0, graphErrorf(opWalks, fmt.Sprint(v), ErrVertexNotFound)
	}

	p, err := matrix.Pow(am.links, k)
	if err != nil {
		return 0, err
	}
	estimate, err := matrix.Pow(am.linksFloat(), k)
	if err != nil {
		return 0, err
	}
	if approx, _ := estimate.At(i, j); approx >= walkLimit {
		return 0, graphErrorf(opWalks, fmt.Sprintf("%v, %v, %d", u, v, k), ErrWalkOverflow)
	}

	return p.At(i, j)
}

// linksFloat returns the edge mask as float64.
func (am *AdjacencyMatrix[T]) linksFloat() *matrix.Dense[float64] {
	rows := am.links.ToRows()
	out := make([][]float64, len(rows))
	for r, row := range rows {
		out[r] = make([]float64, len(row))
		for c, x := range row {
			out[r][c] = float64(x)
		}
	}
	// Rows come from a Dense, so they are rectangular.
	m, _ := matrix.FromRows(out)

	return m
}
