// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/labelgraph/labelled"
	"github.com/katalvlaran/labelgraph/metagraph"
)

// UndirectedGraph is the graph type produced by BuildUndirected.
type UndirectedGraph = labelled.Graph[string, *metagraph.Graph]

// DirectedGraph is the graph type produced by BuildDirected.
type DirectedGraph = labelled.Graph[string, *metagraph.DiGraph]

// BuildUndirected validates doc and builds an undirected property graph.
//
// Errors:
//   - ErrDirectionMismatch when doc.Directed is true.
//   - Anything Validate reports.
func BuildUndirected(doc *Document, opts ...labelled.Option) (*UndirectedGraph, error) {
	if doc.Directed {
		return nil, fmt.Errorf("codec.BuildUndirected: %w", ErrDirectionMismatch)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("codec.BuildUndirected: %w", err)
	}
	g, err := labelled.NewMetaUndirected(doc.Labels(), opts...)
	if err != nil {
		return nil, fmt.Errorf("codec.BuildUndirected: %w", err)
	}
	if err = populate(g, doc); err != nil {
		return nil, fmt.Errorf("codec.BuildUndirected: %w", err)
	}

	return g, nil
}

// BuildDirected validates doc and builds a directed property graph.
//
// Errors:
//   - ErrDirectionMismatch when doc.Directed is false.
//   - Anything Validate reports.
func BuildDirected(doc *Document, opts ...labelled.Option) (*DirectedGraph, error) {
	if !doc.Directed {
		return nil, fmt.Errorf("codec.BuildDirected: %w", ErrDirectionMismatch)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("codec.BuildDirected: %w", err)
	}
	g, err := labelled.NewMetaDirected(doc.Labels(), opts...)
	if err != nil {
		return nil, fmt.Errorf("codec.BuildDirected: %w", err)
	}
	if err = populate(g, doc); err != nil {
		return nil, fmt.Errorf("codec.BuildDirected: %w", err)
	}

	return g, nil
}

// populate adds the edges of a validated doc and copies every property.
func populate[B labelled.Backend[B]](g *labelled.Graph[string, B], doc *Document) error {
	// Validate already proved every mapping converts.
	gp, _ := toProperties(doc.Properties)
	if gp != nil {
		if err := g.SetProperties(labelled.OnGraph[string](), gp); err != nil {
			return err
		}
	}
	for _, v := range doc.Vertices {
		vp, _ := toProperties(v.Properties)
		if vp == nil {
			continue
		}
		if err := g.SetProperties(labelled.OnVertex(v.Label), vp); err != nil {
			return err
		}
	}
	for _, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return err
		}
		ep, _ := toProperties(e.Properties)
		if ep == nil {
			continue
		}
		if err := g.SetProperties(labelled.OnEdgeBetween(e.From, e.To), ep); err != nil {
			return err
		}
	}

	return nil
}

// FromGraph snapshots g into a Document. Properties are included when the
// backing engine has a property store; otherwise only topology is exported.
func FromGraph[B labelled.Backend[B]](g *labelled.Graph[string, B]) (*Document, error) {
	withProps := g.SupportsProperties()
	doc := &Document{
		Directed: g.Directed(),
		Vertices: make([]Vertex, 0, g.VertexCount()),
	}
	if withProps {
		p, err := g.GetProperties(labelled.OnGraph[string]())
		if err != nil {
			return nil, fmt.Errorf("codec.FromGraph: %w", err)
		}
		doc.Properties = fromProperties(p)
	}
	for _, label := range g.Vertices() {
		v := Vertex{Label: label}
		if withProps {
			p, err := g.GetProperties(labelled.OnVertex(label))
			if err != nil {
				return nil, fmt.Errorf("codec.FromGraph: %w", err)
			}
			v.Properties = fromProperties(p)
		}
		doc.Vertices = append(doc.Vertices, v)
	}
	edges := g.Edges()
	if len(edges) > 0 {
		doc.Edges = make([]Edge, 0, len(edges))
	}
	for _, e := range edges {
		de := Edge{From: e.Src, To: e.Dst}
		if withProps {
			p, err := g.GetProperties(labelled.OnEdge(e))
			if err != nil {
				return nil, fmt.Errorf("codec.FromGraph: %w", err)
			}
			de.Properties = fromProperties(p)
		}
		doc.Edges = append(doc.Edges, de)
	}

	return doc, nil
}
