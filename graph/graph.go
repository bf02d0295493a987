// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
)

// Operation tags used in wrapped errors.
const (
	opAddVertex     = "AddVertex"
	opRemoveVertex  = "RemoveVertex"
	opAddEdge       = "AddEdge"
	opRemoveEdge    = "RemoveEdge"
	opSetWeight     = "SetWeight"
	opWeight        = "Weight"
	opHasEdge       = "HasEdge"
	opNeighbors     = "Neighbors"
	opHasConnection = "HasConnection"
	opDFS           = "DFS"
)

// New returns an empty graph configured by opts.
func New[T cmp.Ordered](opts ...Option) *Graph[T] {
	cfg := newConfig(opts)

	return &Graph[T]{
		adj:           make(map[T]map[T]float64),
		defaultWeight: cfg.defaultWeight,
		logger:        cfg.logger,
	}
}

// FromEdges builds a graph containing every endpoint of edges and the edges themselves.
// A repeated edge fails with ErrEdgeExists.
func FromEdges[T cmp.Ordered](edges []Edge[T], opts ...Option) (*Graph[T], error) {
	g := New[T](opts...)
	for _, e := range edges {
		g.ensureVertex(e.From)
		g.ensureVertex(e.To)
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ensureVertex adds v if it is missing; callers must not hold mu.
func (g *Graph[T]) ensureVertex(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[T]float64)
	}
}

// AddVertex inserts v with no incident edges.
//
// Errors:
//   - ErrVertexExists if v is already present.
func (g *Graph[T]) AddVertex(v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[v]; ok {
		return graphErrorf(opAddVertex, fmt.Sprint(v), ErrVertexExists)
	}
	g.adj[v] = make(map[T]float64)

	return nil
}

// HasVertex reports whether v is present.
func (g *Graph[T]) HasVertex(v T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
//
// Complexity: O(deg(v)).
func (g *Graph[T]) RemoveVertex(v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return graphErrorf(opRemoveVertex, fmt.Sprint(v), ErrVertexNotFound)
	}
	for u := range nbrs {
		if u != v {
			delete(g.adj[u], v)
		}
	}
	g.edges -= len(nbrs)
	delete(g.adj, v)
	g.logger.Debug("graph: remove vertex", slog.Any("vertex", v), slog.Int("degree", len(nbrs)))

	return nil
}

// AddEdge inserts the undirected edge {e.From, e.To} with e.Weight.
// A self-loop (From == To) is allowed.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is absent.
//   - ErrEdgeExists if the pair is already connected.
//   - ErrInvalidWeight if e.Weight is NaN or ±Inf.
func (g *Graph[T]) AddEdge(e Edge[T]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	args := fmt.Sprintf("%v, %v", e.From, e.To)
	if err := g.requirePair(e.From, e.To); err != nil {
		return graphErrorf(opAddEdge, args, err)
	}
	if !validWeight(e.Weight) {
		return graphErrorf(opAddEdge, args, ErrInvalidWeight)
	}
	if _, ok := g.adj[e.From][e.To]; ok {
		return graphErrorf(opAddEdge, args, ErrEdgeExists)
	}
	g.adj[e.From][e.To] = e.Weight
	g.adj[e.To][e.From] = e.Weight
	g.edges++

	return nil
}

// Connect inserts {u, v} with the graph's default weight.
// Errors are those of AddEdge.
func (g *Graph[T]) Connect(u, v T) error {
	return g.AddEdge(NewWeightedEdge(u, v, g.defaultWeight))
}

// RemoveEdge deletes the edge {u, v}.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is absent.
//   - ErrEdgeNotFound if u and v are not adjacent.
func (g *Graph[T]) RemoveEdge(u, v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	args := fmt.Sprintf("%v, %v", u, v)
	if err := g.requirePair(u, v); err != nil {
		return graphErrorf(opRemoveEdge, args, err)
	}
	if _, ok := g.adj[u][v]; !ok {
		return graphErrorf(opRemoveEdge, args, ErrEdgeNotFound)
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edges--

	return nil
}

// SetWeight replaces the weight of the existing edge {u, v}.
//
// Errors:
//   - ErrVertexNotFound, ErrEdgeNotFound, ErrInvalidWeight.
func (g *Graph[T]) SetWeight(u, v T, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	args := fmt.Sprintf("%v, %v", u, v)
	if err := g.requirePair(u, v); err != nil {
		return graphErrorf(opSetWeight, args, err)
	}
	if _, ok := g.adj[u][v]; !ok {
		return graphErrorf(opSetWeight, args, ErrEdgeNotFound)
	}
	if !validWeight(w) {
		return graphErrorf(opSetWeight, args, ErrInvalidWeight)
	}
	g.adj[u][v] = w
	g.adj[v][u] = w

	return nil
}

// Weight returns the weight of {u, v}.
//
// Errors:
//   - ErrVertexNotFound, ErrEdgeNotFound.
func (g *Graph[T]) Weight(u, v T) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	args := fmt.Sprintf("%v, %v", u, v)
	if err := g.requirePair(u, v); err != nil {
		return 0, graphErrorf(opWeight, args, err)
	}
	w, ok := g.adj[u][v]
	if !ok {
		return 0, graphErrorf(opWeight, args, ErrEdgeNotFound)
	}

	return w, nil
}

// HasEdge reports whether u and v are adjacent.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is absent.
func (g *Graph[T]) HasEdge(u, v T) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requirePair(u, v); err != nil {
		return false, graphErrorf(opHasEdge, fmt.Sprintf("%v, %v", u, v), err)
	}
	_, ok := g.adj[u][v]

	return ok, nil
}

// Neighbors returns the vertices adjacent to v in ascending order.
// A self-loop lists v itself.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
func (g *Graph[T]) Neighbors(v T) ([]T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[v]
	if !ok {
		return nil, graphErrorf(opNeighbors, fmt.Sprint(v), ErrVertexNotFound)
	}

	return slices.Sorted(maps.Keys(nbrs)), nil
}

// Degree returns the number of edges incident to v; a self-loop counts once.
// An absent vertex has degree 0.
func (g *Graph[T]) Degree(v T) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v])
}

// Vertices returns every vertex in ascending order.
func (g *Graph[T]) Vertices() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Sorted(maps.Keys(g.adj))
}

// VertexCount returns the number of vertices.
func (g *Graph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges; each pair counts once.
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, normalized to From <= To and sorted by (From, To).
//
// Complexity: O(V + E log E).
func (g *Graph[T]) Edges() []Edge[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[T], 0, g.edges)
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u <= v {
				out = append(out, Edge[T]{From: u, To: v, Weight: w})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge[T]) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	return out
}

// Clone returns a deep copy of g sharing its configuration.
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[T]{
		adj:           make(map[T]map[T]float64, len(g.adj)),
		edges:         g.edges,
		defaultWeight: g.defaultWeight,
		logger:        g.logger,
	}
	for u, nbrs := range g.adj {
		out.adj[u] = maps.Clone(nbrs)
	}

	return out
}

// Clear removes every vertex and edge.
func (g *Graph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.logger.Debug("graph: clear", slog.Int("vertices", len(g.adj)), slog.Int("edges", g.edges))
	clear(g.adj)
	g.edges = 0
}

// requirePair returns ErrVertexNotFound unless both u and v are present.
// Caller must hold mu.
func (g *Graph[T]) requirePair(u, v T) error {
	if _, ok := g.adj[u]; !ok {
		return fmt.Errorf("vertex %v: %w", u, ErrVertexNotFound)
	}
	if _, ok := g.adj[v]; !ok {
		return fmt.Errorf("vertex %v: %w", v, ErrVertexNotFound)
	}

	return nil
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0)
}
