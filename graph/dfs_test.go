// SPDX-License-Identifier: MIT

package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvblocks/graph"
)

func TestDFS_OrderDepthParent(t *testing.T) {
	//   1 - 2 - 4
	//   |
	//   3 - 5
	g := buildGraph(t, 5, [][2]int{{1, 3}, {1, 2}, {2, 4}, {3, 5}})
	res, err := g.DFS(1, nil)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 4, 3, 5}, res.Order)
	if diff := cmp.Diff(map[int]int{1: 0, 2: 1, 4: 2, 3: 1, 5: 2}, res.Depth); diff != "" {
		t.Fatalf("Depth mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[int]int{2: 1, 4: 2, 3: 1, 5: 3}, res.Parent); diff != "" {
		t.Fatalf("Parent mismatch (-want +got):\n%s", diff)
	}
	require.True(t, res.Visited(5))
}

func TestDFS_CycleVisitsOnce(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{1, 2}, {2, 3}, {3, 1}, {2, 2}})
	res, err := g.DFS(2, nil)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, res.Order)
}

func TestDFS_MissingStart(t *testing.T) {
	g := buildGraph(t, 1, nil)
	_, err := g.DFS(2, nil)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestDFS_OnVisitAborts(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}})
	stop := errors.New("stop")
	res, err := g.DFS(1, &graph.DFSOptions[int]{
		OnVisit: func(v int, _ int) error {
			if v == 3 {
				return stop
			}
			return nil
		},
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 2, 3}, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{1, 2}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := g.DFS(1, &graph.DFSOptions[int]{Ctx: ctx})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, res.Order)
}

func TestHasConnection(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{1, 2}, {2, 3}, {4, 5}})
	cases := []struct {
		u, v int
		want bool
	}{
		{1, 3, true},
		{3, 1, true},
		{1, 1, true},
		{1, 4, false},
		{5, 4, true},
	}
	for _, tc := range cases {
		got, err := g.HasConnection(tc.u, tc.v)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "HasConnection(%d, %d)", tc.u, tc.v)
	}

	_, err := g.HasConnection(1, 9)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestComponents(t *testing.T) {
	g := buildGraph(t, 7, [][2]int{{5, 1}, {1, 3}, {2, 6}})
	want := [][]int{{1, 3, 5}, {2, 6}, {4}, {7}}
	if diff := cmp.Diff(want, g.Components()); diff != "" {
		t.Fatalf("Components mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 4, g.ComponentCount())

	require.NoError(t, g.Connect(3, 4))
	require.NoError(t, g.Connect(7, 6))
	require.Equal(t, 2, g.ComponentCount())

	require.NoError(t, g.RemoveVertex(3))
	require.Equal(t, 3, g.ComponentCount()) // {1,5} {2,6,7} {4}
}

func TestComponents_DeepPath(t *testing.T) {
	const n = 20000
	g := graph.New[int]()
	for v := 0; v < n; v++ {
		require.NoError(t, g.AddVertex(v))
		if v > 0 {
			require.NoError(t, g.Connect(v-1, v))
		}
	}
	require.Equal(t, 1, g.ComponentCount())
	ok, err := g.HasConnection(0, n-1)
	require.NoError(t, err)
	require.True(t, ok)
}
