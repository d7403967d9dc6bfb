// SPDX-License-Identifier: MIT
// File: backend.go
// Role: Capability contracts the labelled layer consumes from a backing engine.

package labelled

import (
	"github.com/katalvlaran/labelgraph/core"
	"github.com/katalvlaran/labelgraph/props"
)

// Backend is the dense-index engine contract. B is the concrete engine type
// itself, so InducedSubgraph can return a value of the same kind.
//
// Requirements:
//   - AddVertex returns the new index, equal to the previous VertexCount().
//   - Edges reports each logical edge once; ordering is engine-defined.
//   - Directed is constant for a given engine type.
//   - InducedSubgraph(vs) returns an independent instance whose vertex i is vs[i].
//
// *core.Graph, *core.DiGraph, *metagraph.Graph and *metagraph.DiGraph satisfy it.
type Backend[B any] interface {
	VertexCount() int
	AddVertex() (int, error)
	AddEdge(u, v int) (bool, error)
	HasEdge(u, v int) bool
	EdgeCount() int
	Edges() []core.Edge
	OutNeighbors(v int) ([]int, error)
	InNeighbors(v int) ([]int, error)
	Directed() bool
	InducedSubgraph(vs []int) (B, error)
}

// PropertyBackend is the optional property-store capability. A Backend that
// also implements it enables the property methods of Graph.
//
// All semantics (missing keys, merge rule of SetProperties, edge orientation)
// belong to the implementation; the labelled layer only translates labels.
type PropertyBackend interface {
	GetProperty(s props.Subject, key string) (props.Value, error)
	SetProperty(s props.Subject, key string, v props.Value) error
	GetProperties(s props.Subject) (props.Properties, error)
	SetProperties(s props.Subject, p props.Properties) error
	HasProperty(s props.Subject, key string) bool
}
