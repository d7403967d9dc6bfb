// SPDX-License-Identifier: MIT

package metagraph

import (
	"fmt"

	"github.com/katalvlaran/labelgraph/core"
	"github.com/katalvlaran/labelgraph/props"
)

// Graph is an undirected core.Graph with a property store.
type Graph struct {
	*core.Graph
	host
}

// DiGraph is a directed core.DiGraph with a property store.
type DiGraph struct {
	*core.DiGraph
	host
}

// NewGraph creates an undirected property graph with n isolated vertices.
func NewGraph(n int) (*Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("metagraph.NewGraph: %w", err)
	}

	return Wrap(g), nil
}

// NewDiGraph creates a directed property graph with n isolated vertices.
func NewDiGraph(n int) (*DiGraph, error) {
	g, err := core.NewDiGraph(n)
	if err != nil {
		return nil, fmt.Errorf("metagraph.NewDiGraph: %w", err)
	}

	return WrapDi(g), nil
}

// Wrap attaches an empty property store to g. The result owns g.
func Wrap(g *core.Graph) *Graph {
	return &Graph{Graph: g, host: host{topo: g, store: props.NewStore()}}
}

// WrapDi attaches an empty property store to g. The result owns g.
func WrapDi(g *core.DiGraph) *DiGraph {
	return &DiGraph{DiGraph: g, host: host{topo: g, store: props.NewStore()}}
}

// InducedSubgraph returns the subgraph induced by vs together with the
// properties of the graph, of every kept vertex and of every kept edge,
// re-indexed so that vertex i of the result is vs[i].
func (g *Graph) InducedSubgraph(vs []int) (*Graph, error) {
	sub, err := g.Graph.InducedSubgraph(vs)
	if err != nil {
		return nil, err
	}

	store, err := g.inducedStore(vs)
	if err != nil {
		return nil, err
	}

	return &Graph{Graph: sub, host: host{topo: sub, store: store}}, nil
}

// InducedSubgraph is the directed counterpart of Graph.InducedSubgraph.
func (g *DiGraph) InducedSubgraph(vs []int) (*DiGraph, error) {
	sub, err := g.DiGraph.InducedSubgraph(vs)
	if err != nil {
		return nil, err
	}

	store, err := g.inducedStore(vs)
	if err != nil {
		return nil, err
	}

	return &DiGraph{DiGraph: sub, host: host{topo: sub, store: store}}, nil
}

// Clone returns an independent deep copy including properties.
func (g *Graph) Clone() *Graph {
	c := g.Graph.Clone()

	return &Graph{Graph: c, host: host{topo: c, store: g.store.Clone()}}
}

// Clone returns an independent deep copy including properties.
func (g *DiGraph) Clone() *DiGraph {
	c := g.DiGraph.Clone()

	return &DiGraph{DiGraph: c, host: host{topo: c, store: g.store.Clone()}}
}
