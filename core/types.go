// SPDX-License-Identifier: MIT
// Package core defines the dense-index Graph and DiGraph types, the Edge pair,
// and sentinel errors shared by every backing representation.
//
// Errors:
//
//	ErrNegativeCount   - negative vertex count passed to a constructor.
//	ErrVertexNotFound  - index outside the vertex range.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrDuplicateVertex - index repeated where a vertex set is expected.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeCount indicates a constructor received n < 0.
	ErrNegativeCount = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an operation referenced an index outside [0, VertexCount()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateVertex indicates a vertex index appeared twice in a vertex set.
	ErrDuplicateVertex = errors.New("core: duplicate vertex index")
)

// Edge is an index pair (From, To).
//
// For undirected graphs Edges() always reports From <= To; the pair itself
// carries no directedness.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int
}

// String renders the edge as "From->To".
func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.From, e.To) }

// Reverse returns the edge with endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// engine is the shared adjacency storage behind Graph and DiGraph.
//
// out[u] holds the sorted successors of u. For directed engines in[v] holds
// the sorted predecessors of v; undirected engines leave in nil and mirror
// every edge inside out. ne counts logical edges (an undirected edge once).
type engine struct {
	mu       sync.RWMutex // guards out, in, ne
	directed bool

	out [][]int
	in  [][]int
	ne  int
}

// init allocates n isolated vertices.
// Complexity: O(n).
func (e *engine) init(n int, directed bool) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeCount)
	}
	e.directed = directed
	e.out = make([][]int, n)
	if directed {
		e.in = make([][]int, n)
	}

	return nil
}

// Graph is an undirected dense-index graph with self-loops permitted and no
// parallel edges.
type Graph struct {
	engine
}

// DiGraph is a directed dense-index graph with self-loops permitted and no
// parallel edges.
type DiGraph struct {
	engine
}

// NewGraph creates an undirected Graph with n isolated vertices 0..n-1.
// Returns ErrNegativeCount when n < 0.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	g := &Graph{}
	if err := g.init(n, false); err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}

	return g, nil
}

// NewDiGraph creates a directed DiGraph with n isolated vertices 0..n-1.
// Returns ErrNegativeCount when n < 0.
// Complexity: O(n).
func NewDiGraph(n int) (*DiGraph, error) {
	g := &DiGraph{}
	if err := g.init(n, true); err != nil {
		return nil, fmt.Errorf("NewDiGraph: %w", err)
	}

	return g, nil
}

// Directed reports false: Graph edges are traversable both ways.
func (*Graph) Directed() bool { return false }

// Directed reports true: DiGraph edges are one-way.
func (*DiGraph) Directed() bool { return true }
