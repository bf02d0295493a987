// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvblocks/graph"
	"github.com/katalvlaran/lvblocks/matrix"
)

func TestAdjacencyMatrix_Snapshot(t *testing.T) {
	g := buildGraph(t, 3, nil)
	require.NoError(t, g.AddEdge(graph.NewWeightedEdge(3, 1, 2.5)))
	require.NoError(t, g.Connect(2, 2))

	am := graph.NewAdjacencyMatrix(g)
	require.Equal(t, [][]float64{
		{0, 0, 2.5},
		{0, 1, 0},
		{2.5, 0, 0},
	}, am.Mat.ToRows())
	require.Equal(t, 2, am.VertexIndex[3])
	require.Equal(t, 1, am.Vertex(0))

	require.NoError(t, g.RemoveVertex(3))
	require.Equal(t, 3, am.Mat.Rows())
}

func TestAdjacencyMatrix_Walks(t *testing.T) {
	// triangle: closed walks of length 3 from a vertex = 2
	g := buildGraph(t, 3, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	am := graph.NewAdjacencyMatrix(g)

	cases := []struct {
		u, v, k int
		want    int64
	}{
		{1, 1, 0, 1},
		{1, 2, 0, 0},
		{1, 2, 1, 1},
		{1, 1, 2, 2},
		{1, 1, 3, 2},
		{1, 2, 3, 3},
	}
	for _, tc := range cases {
		got, err := am.Walks(tc.u, tc.v, tc.k)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "Walks(%d, %d, %d)", tc.u, tc.v, tc.k)
	}

	_, err := am.Walks(1, 9, 1)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = am.Walks(1, 2, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
}

func TestAdjacencyMatrix_WalksZeroWeight(t *testing.T) {
	g := buildGraph(t, 3, nil)
	require.NoError(t, g.AddEdge(graph.NewWeightedEdge(1, 2, 0)))
	require.NoError(t, g.AddEdge(graph.NewWeightedEdge(2, 3, 0)))
	ok, err := g.HasEdge(1, 2)
	require.NoError(t, err)
	require.True(t, ok)

	am := graph.NewAdjacencyMatrix(g)
	require.Zero(t, am.Mat.ToRows()[0][1])
	got, err := am.Walks(1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), got)
	got, err = am.Walks(1, 3, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), got)
}

func TestAdjacencyMatrix_WalksOverflow(t *testing.T) {
	// K3 closed walks: (2^k + 2(-1)^k) / 3
	g, err := graph.Complete(3)
	require.NoError(t, err)
	am := graph.NewAdjacencyMatrix(g)

	got, err := am.Walks(0, 0, 60)
	require.NoError(t, err)
	require.Equal(t, int64(384307168202282326), got)

	_, err = am.Walks(0, 0, 70)
	require.ErrorIs(t, err, graph.ErrWalkOverflow)
	_, err = am.Walks(0, 1, 200)
	require.ErrorIs(t, err, graph.ErrWalkOverflow)
}
