package labelled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelgraph/core"
	"github.com/katalvlaran/labelgraph/labelled"
)

func TestAddVertex(t *testing.T) {
	lg := labelledPath(t)

	require.NoError(t, lg.AddVertex("e"))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, lg.Vertices())
	idx, err := lg.IndexOf("e")
	require.NoError(t, err)
	assert.Equal(t, 4, idx)

	_, err = lg.AddEdge("d", "e")
	require.NoError(t, err)
	assert.True(t, lg.HasEdge("e", "d"))
}

func TestAddVertex_Duplicate(t *testing.T) {
	lg := labelledPath(t)

	err := lg.AddVertex("a")
	assert.ErrorIs(t, err, labelled.ErrDuplicateLabel)
	assert.Equal(t, 4, lg.VertexCount())
	assert.Equal(t, abcd, lg.Vertices())
}

func TestAddVertex_BackendFailureLeavesRegistry(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	fg := &flakyGraph{Graph: g, failGrow: true}
	lg, err := labelled.New([]string{"a"}, fg)
	require.NoError(t, err)

	err = lg.AddVertex("b")
	assert.ErrorIs(t, err, errGrow)
	assert.False(t, lg.HasVertex("b"))
	assert.Equal(t, 1, lg.VertexCount())
	assert.Equal(t, 1, fg.VertexCount())
}

func TestAddVertex_SkewedIndexKeepsLockstep(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	fg := &flakyGraph{Graph: g, skew: 3}
	lg, err := labelled.New([]string{"a"}, fg, labelled.WithLogger(quietLogger()))
	require.NoError(t, err)

	require.NoError(t, lg.AddVertex("b"))
	assert.Equal(t, fg.VertexCount(), lg.VertexCount())
	idx, err := lg.IndexOf("b")
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "label lands on the slot the engine filled")

	fg.skew = 0
	require.NoError(t, lg.AddVertex("c"))
	assert.Equal(t, fg.VertexCount(), lg.VertexCount())
	assert.Equal(t, []string{"a", "b", "c"}, lg.Vertices())
}

func TestAddVertex_MisalignedBackendUnchanged(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	lg, err := labelled.New([]string{"a"}, g, labelled.WithLogger(quietLogger()))
	require.NoError(t, err)

	// grow the engine behind the labelled graph's back
	_, err = g.AddVertex()
	require.NoError(t, err)

	err = lg.AddVertex("b")
	assert.ErrorIs(t, err, labelled.ErrIndexMismatch)
	assert.False(t, lg.HasVertex("b"))
	assert.Equal(t, 1, lg.VertexCount())
	assert.Equal(t, 2, g.VertexCount(), "engine not grown further")

	err = lg.AddVertices([]string{"x", "y"})
	assert.ErrorIs(t, err, labelled.ErrIndexMismatch)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"a"}, lg.Vertices())
}

func TestAddVertices_BackendFailureMidBatch(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	fg := &flakyGraph{Graph: g, growLimit: 2}
	lg, err := labelled.New([]string{"a"}, fg, labelled.WithLogger(quietLogger()))
	require.NoError(t, err)

	err = lg.AddVertices([]string{"b", "c", "d", "e"})
	assert.ErrorIs(t, err, errGrow)
	assert.Equal(t, []string{"a", "b", "c"}, lg.Vertices())
	assert.Equal(t, fg.VertexCount(), lg.VertexCount())
	assert.False(t, lg.HasVertex("d"))
	assert.False(t, lg.HasVertex("e"))
}

func TestAddVertices(t *testing.T) {
	lg := labelledPath(t)

	require.NoError(t, lg.AddVertices([]string{"e", "f", "g"}))
	assert.Equal(t, 7, lg.VertexCount())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, lg.Vertices())
	for i, l := range []string{"e", "f", "g"} {
		idx, err := lg.IndexOf(l)
		require.NoError(t, err)
		assert.Equal(t, 4+i, idx)
	}

	require.NoError(t, lg.AddVertices(nil))
	assert.Equal(t, 7, lg.VertexCount())
}

func TestAddVertices_Atomic(t *testing.T) {
	cases := []struct {
		name  string
		batch []string
	}{
		{"collides with existing", []string{"x", "y", "c"}},
		{"repeats within batch", []string{"x", "y", "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lg := labelledPath(t)
			beforeEdges := lg.Edges()

			err := lg.AddVertices(tc.batch)
			assert.ErrorIs(t, err, labelled.ErrDuplicateLabel)
			assert.Equal(t, 4, lg.VertexCount())
			assert.Equal(t, abcd, lg.Vertices())
			assert.Equal(t, beforeEdges, lg.Edges())
			assert.False(t, lg.HasVertex("x"))
		})
	}
}

func TestAddEdge(t *testing.T) {
	lg, err := labelled.NewDirected([]string{"a", "b"})
	require.NoError(t, err)

	added, err := lg.AddEdge("a", "b")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = lg.AddLabelledEdge(labelled.NewEdge("a", "b"))
	require.NoError(t, err)
	assert.False(t, added, "re-insertion is a no-op")
	assert.Equal(t, 1, lg.EdgeCount())

	_, err = lg.AddEdge("a", "zz")
	assert.ErrorIs(t, err, labelled.ErrUnknownLabel)
	_, err = lg.AddEdge("zz", "a")
	assert.ErrorIs(t, err, labelled.ErrUnknownLabel)
	assert.Equal(t, 1, lg.EdgeCount())
}
