// SPDX-License-Identifier: MIT

package graph

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/lvblocks/vector"
)

// DFSOptions configures depth-first search behavior.
type DFSOptions[T comparable] struct {
	// Ctx is optional. If non-nil, traversal aborts when ctx.Done() is signaled.
	Ctx context.Context

	// OnVisit(v, depth) is called when v is first visited.
	// Returning a non-nil error aborts traversal,
	// but v will already have been added to Order.
	// OnVisit runs under the graph's read lock and must not mutate the graph.
	OnVisit func(v T, depth int) error
}

// DFSResult holds the outcome of a DFS traversal.
type DFSResult[T comparable] struct {
	Order  []T       // pre-order sequence of visited vertices
	Depth  map[T]int // Depth[v] = tree depth from the start vertex
	Parent map[T]T   // Parent[v] = predecessor; the start vertex has no entry
}

// Visited reports whether v was reached.
func (r *DFSResult[T]) Visited(v T) bool {
	_, ok := r.Depth[v]

	return ok
}

// frame is one pending stack entry: a vertex and how it was reached.
type frame[T comparable] struct {
	v         T
	parent    T
	depth     int
	hasParent bool
}

// errStop ends a traversal early without reporting an error.
var errStop = errors.New("graph: stop traversal")

// DFS performs an iterative depth-first search from start.
// Neighbors are explored in ascending order, so Order is deterministic.
// If opts is nil, uses sane defaults (no callback, background context).
//
// Implementation:
//   - Stage 1: validate start; ErrVertexNotFound otherwise.
//   - Stage 2: pop a frame; skip it if already seen; record and visit it.
//   - Stage 3: push unseen neighbors in descending order so the smallest pops first.
//
// Errors:
//   - ErrVertexNotFound, ctx.Err() on cancellation, or the OnVisit error.
//     The partial result is returned alongside a traversal error.
//
// Complexity: O(V + E log Δ).
func (g *Graph[T]) DFS(start T, opts *DFSOptions[T]) (*DFSResult[T], error) {
	topts := DFSOptions[T]{}
	if opts != nil {
		topts = *opts
	}
	ctx := topts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.adj[start]; !ok {
		return nil, graphErrorf(opDFS, fmt.Sprint(start), ErrVertexNotFound)
	}
	res := &DFSResult[T]{
		Order:  make([]T, 0),
		Depth:  make(map[T]int),
		Parent: make(map[T]T),
	}
	err := g.traverse(ctx, start, nil, func(f frame[T]) error {
		res.Order = append(res.Order, f.v)
		res.Depth[f.v] = f.depth
		if f.hasParent {
			res.Parent[f.v] = f.parent
		}
		if topts.OnVisit != nil {
			return topts.OnVisit(f.v, f.depth)
		}
		return nil
	})

	return res, err
}

// HasConnection reports whether a path joins u and v.
// Every vertex is connected to itself.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is absent.
func (g *Graph[T]) HasConnection(u, v T) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requirePair(u, v); err != nil {
		return false, graphErrorf(opHasConnection, fmt.Sprintf("%v, %v", u, v), err)
	}
	found := false
	err := g.traverse(context.Background(), u, nil, func(f frame[T]) error {
		if f.v == v {
			found = true
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return false, err
	}

	return found, nil
}

// ComponentCount returns the number of connected components.
// An empty graph has zero; each isolated vertex is its own component.
func (g *Graph[T]) ComponentCount() int {
	return len(g.Components())
}

// Components returns the vertex sets of the connected components.
// Each set is sorted, and sets are ordered by their smallest vertex.
func (g *Graph[T]) Components() [][]T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[T]struct{}, len(g.adj))
	var out [][]T
	for _, v := range slices.Sorted(maps.Keys(g.adj)) {
		if _, ok := seen[v]; ok {
			continue
		}
		var comp []T
		// Only an exhausted capacity limit can fail here; the default limit is unreachable.
		_ = g.traverse(context.Background(), v, seen, func(f frame[T]) error {
			comp = append(comp, f.v)
			return nil
		})
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}

// traverse runs the iterative DFS core from start, marking vertices in seen
// (allocated when nil) and calling visit once per newly reached vertex.
// Caller must hold mu.
func (g *Graph[T]) traverse(ctx context.Context, start T, seen map[T]struct{}, visit func(frame[T]) error) error {
	if seen == nil {
		seen = make(map[T]struct{})
	}
	stack := vector.New[frame[T]]()
	if err := stack.PushBack(frame[T]{v: start}); err != nil {
		return err
	}
	for !stack.Empty() {
		// Cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := stack.Back().Value()
		stack.PopBack()
		if _, ok := seen[f.v]; ok {
			continue
		}
		seen[f.v] = struct{}{}
		if err := visit(f); err != nil {
			return err
		}

		nbrs := slices.Sorted(maps.Keys(g.adj[f.v]))
		for i := len(nbrs) - 1; i >= 0; i-- {
			if _, ok := seen[nbrs[i]]; ok {
				continue
			}
			next := frame[T]{v: nbrs[i], parent: f.v, depth: f.depth + 1, hasParent: true}
			if err := stack.PushBack(next); err != nil {
				return err
			}
		}
	}

	return nil
}
