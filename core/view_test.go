// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelgraph/core"
)

// pathGraph builds 0-1-2-...-(n-1).
func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, err = g.AddEdge(i-1, i)
		require.NoError(t, err)
	}

	return g
}

func TestInducedSubgraph_Path(t *testing.T) {
	g := pathGraph(t, 4)

	sub, err := g.InducedSubgraph([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.VertexCount())
	assert.Equal(t, []core.Edge{{From: 0, To: 1}}, sub.Edges())

	// Source is untouched.
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestInducedSubgraph_Reordered(t *testing.T) {
	g := pathGraph(t, 4)

	sub, err := g.InducedSubgraph([]int{3, 0, 2})
	require.NoError(t, err)
	// Only 2-3 survives; 3 → 0, 2 → 2.
	assert.Equal(t, []core.Edge{{From: 0, To: 2}}, sub.Edges())
	assert.Equal(t, 1, sub.EdgeCount())
}

func TestInducedSubgraph_Directed(t *testing.T) {
	g, err := core.NewDiGraph(3)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 2}} {
		_, err = g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	sub, err := g.InducedSubgraph([]int{2, 0})
	require.NoError(t, err)
	assert.True(t, sub.Directed())
	assert.ElementsMatch(t, []core.Edge{{From: 0, To: 1}, {From: 0, To: 0}}, sub.Edges())

	in, err := sub.InNeighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, in)
}

func TestInducedSubgraph_Errors(t *testing.T) {
	g := pathGraph(t, 3)

	_, err := g.InducedSubgraph([]int{0, 7})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.InducedSubgraph([]int{1, 1})
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestInducedSubgraph_Independent(t *testing.T) {
	g := pathGraph(t, 3)
	sub, err := g.InducedSubgraph([]int{0, 1, 2})
	require.NoError(t, err)

	_, err = sub.AddEdge(0, 2)
	require.NoError(t, err)
	assert.False(t, g.HasEdge(0, 2))
}
