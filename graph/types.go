// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"log/slog"
	"sync"
)

// DefaultWeight is the weight given to edges created without an explicit one.
const DefaultWeight = 1.0

// Edge is an undirected connection between From and To.
// Edges returned by Graph.Edges always satisfy From <= To.
type Edge[T cmp.Ordered] struct {
	From   T
	To     T
	Weight float64
}

// NewEdge returns the edge {from, to} with DefaultWeight.
func NewEdge[T cmp.Ordered](from, to T) Edge[T] {
	return Edge[T]{From: from, To: to, Weight: DefaultWeight}
}

// NewWeightedEdge returns the edge {from, to} with the given weight.
func NewWeightedEdge[T cmp.Ordered](from, to T, weight float64) Edge[T] {
	return Edge[T]{From: from, To: to, Weight: weight}
}

// Graph is an undirected weighted graph keyed by vertex value.
// adj[u][v] holds the weight of {u, v}; every edge is present in both
// directions except self-loops, which are stored once under adj[u][u].
// mu protects all fields.
type Graph[T cmp.Ordered] struct {
	mu            sync.RWMutex
	adj           map[T]map[T]float64
	edges         int
	defaultWeight float64
	logger        *slog.Logger
}
