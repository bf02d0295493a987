// SPDX-License-Identifier: MIT

// Package graph provides Graph[T], an undirected weighted graph stored as a
// map of adjacency maps (adj[u][v] = weight), with connectivity queries.
//
// Every edge is mirrored: adding {u, v} stores adj[u][v] and adj[v][u].
// Self-loops are allowed and stored once. Parallel edges are not.
//
// Core Methods:
//
//	AddVertex(v) error               // ErrVertexExists
//	RemoveVertex(v) error            // ErrVertexNotFound; drops incident edges
//	AddEdge(e) / Connect(u, v) error // ErrVertexNotFound, ErrEdgeExists
//	RemoveEdge(u, v) error           // ErrVertexNotFound, ErrEdgeNotFound
//	SetWeight(u, v, w) error         // ErrVertexNotFound, ErrEdgeNotFound
//	HasEdge(u, v) (bool, error)      // ErrVertexNotFound
//	HasConnection(u, v) (bool, error)// DFS reachability
//	ComponentCount() int             // number of connected components
//	Components() [][]T               // members of each component
//	DFS(start, opts) (*DFSResult, error) // depth-first pre-order traversal
//
// Determinism:
//
//	Vertices, Neighbors, Edges and Components return sorted results, and
//	DFS visits neighbors in ascending order.
//
// Concurrency:
//
//	All methods are safe for concurrent use (sync.RWMutex). DFS holds the
//	read lock while calling OnVisit, so OnVisit must not mutate the graph.
//
// NewAdjacencyMatrix snapshots a graph into a matrix.Dense; Walks counts
// fixed-length walks through matrix.Pow.
//
// Traversal uses an explicit vector.Vector stack rather than recursion, so
// deep graphs do not grow the goroutine stack.
package graph
