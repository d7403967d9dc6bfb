package labelled_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelgraph/builder"
	"github.com/katalvlaran/labelgraph/core"
	"github.com/katalvlaran/labelgraph/labelled"
)

// Common labels used across labelled tests.
var abcd = []string{"a", "b", "c", "d"}

// quietLogger discards output but keeps Debug enabled so logging paths run.
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)

	return l
}

// pathBacking returns the undirected path 0-1-...-(n-1).
func pathBacking(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	g, err = builder.Build(g, builder.Path(n))
	require.NoError(t, err)

	return g
}

// labelledPath returns the path a-b-c-d.
func labelledPath(t *testing.T) *labelled.Graph[string, *core.Graph] {
	t.Helper()
	lg, err := labelled.New(abcd, pathBacking(t, len(abcd)), labelled.WithLogger(quietLogger()))
	require.NoError(t, err)

	return lg
}

var errGrow = errors.New("flaky: growth refused")

// flakyGraph is a backend whose growth can be made to fail (at once, or after
// growLimit successful growths when growLimit > 0) or to report a skewed index.
type flakyGraph struct {
	*core.Graph
	failGrow  bool
	growLimit int
	grown     int
	skew      int
}

func (f *flakyGraph) AddVertex() (int, error) {
	if f.failGrow || (f.growLimit > 0 && f.grown == f.growLimit) {
		return 0, errGrow
	}
	f.grown++
	idx, err := f.Graph.AddVertex()

	return idx + f.skew, err
}

func (f *flakyGraph) InducedSubgraph(vs []int) (*flakyGraph, error) {
	sub, err := f.Graph.InducedSubgraph(vs)
	if err != nil {
		return nil, err
	}

	return &flakyGraph{Graph: sub}, nil
}
