// Package lvblocks is a small set of generic in-memory building blocks:
// a growable array with random-access cursors, a dense numeric matrix,
// and an undirected weighted graph.
//
// 🚀 What is lvblocks?
//
//	Three packages that stand on their own and compose cleanly:
//		• vector: Vector[T] with a strict doubling/halving capacity policy
//		  and Cursor[T] random-access positions with stale detection
//		• matrix: Dense[T] over integers and floats with + - · and fast Pow
//		• graph:  Graph[T] adjacency map with DFS, connectivity, components,
//		  adjacency-matrix snapshots and topology builders
//
// ✨ Why choose lvblocks?
//
//   - Deterministic: fixed growth schedule, sorted graph outputs
//   - Explicit errors: sentinels matched with errors.Is, no panics on checked paths
//   - Observable: optional log/slog debug events for reallocations and removals
//
// Under the hood:
//
//	vector/ — Vector, Cursor, storage blocks & capacity policy
//	matrix/ — Dense, validators, arithmetic kernels, text I/O
//	graph/  — Graph, DFS, AdjacencyMatrix, builders (uses vector & matrix)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2     graph.Cycle(4): one component, four edges
//
//	go get github.com/katalvlaran/lvblocks
package lvblocks
