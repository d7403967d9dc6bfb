// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph and core.DiGraph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelgraph/core"
)

func TestNewGraph_Negative(t *testing.T) {
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeCount)

	_, err = core.NewDiGraph(-3)
	assert.ErrorIs(t, err, core.ErrNegativeCount)
}

func TestGraph_AddVertex(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.Equal(t, 2, g.VertexCount())

	idx, err := g.AddVertex()
	require.NoError(t, err)
	assert.Equal(t, 2, idx, "new index must equal previous count")
	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasVertex(2))
	assert.False(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(-1))
	assert.Equal(t, []int{0, 1, 2}, g.Vertices())
}

func TestGraph_AddEdgeUndirected(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.False(t, g.Directed())

	added, err := g.AddEdge(2, 0)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))

	// Re-insertion in either orientation is a no-op.
	added, err = g.AddEdge(0, 2)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = g.AddEdge(0, 5)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(-1, 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.False(t, g.HasEdge(0, 5))
}

func TestDiGraph_AddEdgeDirected(t *testing.T) {
	g, err := core.NewDiGraph(3)
	require.NoError(t, err)
	assert.True(t, g.Directed())

	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))

	added, err := g.AddEdge(1, 0)
	require.NoError(t, err)
	assert.True(t, added, "reverse edge is distinct in a directed graph")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_SelfLoop(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	_, err = g.AddEdge(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: 1, To: 1}}, g.Edges())

	nb, err := g.OutNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, nb)
}

func TestEdges_Order(t *testing.T) {
	ug, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{3, 2}, {1, 0}, {2, 1}} {
		_, err = ug.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	assert.Equal(t, []core.Edge{{0, 1}, {1, 2}, {2, 3}}, ug.Edges(),
		"undirected edges are normalized From<=To and sorted")

	dg, err := core.NewDiGraph(3)
	require.NoError(t, err)
	for _, e := range [][2]int{{2, 0}, {0, 2}, {1, 0}} {
		_, err = dg.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	assert.Equal(t, []core.Edge{{0, 2}, {1, 0}, {2, 0}}, dg.Edges())
}

func TestNeighbors(t *testing.T) {
	dg, err := core.NewDiGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 3}, {0, 1}, {2, 0}} {
		_, err = dg.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	out, err := dg.OutNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, out)

	in, err := dg.InNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, in)

	deg, err := dg.OutDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	deg, err = dg.InDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = dg.OutNeighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = dg.InNeighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	ug, err := core.NewGraph(3)
	require.NoError(t, err)
	_, err = ug.AddEdge(0, 1)
	require.NoError(t, err)
	out, err = ug.OutNeighbors(1)
	require.NoError(t, err)
	in, err = ug.InNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, out, in, "undirected in/out neighbourhoods coincide")
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	nb, err := g.OutNeighbors(0)
	require.NoError(t, err)
	nb[0] = 42

	again, err := g.OutNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, again)
}

func TestClone_Independent(t *testing.T) {
	g, err := core.NewDiGraph(2)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	c := g.Clone()
	_, err = c.AddVertex()
	require.NoError(t, err)
	_, err = c.AddEdge(1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3, c.VertexCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.True(t, c.Directed())
}

func TestGraph_ConcurrentAddVertex(t *testing.T) {
	const n = 200
	g, err := core.NewGraph(0)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int]bool, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx, _ := g.AddVertex()
			mu.Lock()
			seen[idx] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, n, g.VertexCount())
	assert.Len(t, seen, n, "every AddVertex must receive a distinct index")
}
