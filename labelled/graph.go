// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Labelled Graph type, constructor and read-only queries.
// Determinism:
//   - Vertices() is construction order followed by insertion order.
//   - Edges(), OutNeighbors(), InNeighbors() keep the backing engine's order.

package labelled

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Graph is a graph whose vertices are addressed by labels of type T, stored
// in a backing engine B that works on dense indices.
//
// The Graph exclusively owns both its Registry and its backing engine; the
// engine must not be mutated through any other reference.
type Graph[T comparable, B Backend[B]] struct {
	reg     *Registry[T]
	backing B
	log     logrus.FieldLogger
}

// New labels the vertices of backing with labels (labels[i] names index i)
// and takes ownership of backing.
//
// Errors:
//   - ErrArityMismatch when len(labels) != backing.VertexCount().
//   - ErrDuplicateLabel when labels repeat.
//
// Complexity: O(len(labels)).
func New[T comparable, B Backend[B]](labels []T, backing B, opts ...Option) (*Graph[T, B], error) {
	reg, err := NewRegistry(labels, backing.VertexCount())
	if err != nil {
		return nil, fmt.Errorf("labelled.New: %w", err)
	}
	cfg := newConfig(opts...)

	return &Graph[T, B]{reg: reg, backing: backing, log: cfg.log}, nil
}

// NewEmpty builds a backing engine with len(labels) isolated vertices through
// factory and labels it. factory selects the representation.
func NewEmpty[T comparable, B Backend[B]](labels []T, factory func(n int) (B, error), opts ...Option) (*Graph[T, B], error) {
	backing, err := factory(len(labels))
	if err != nil {
		return nil, fmt.Errorf("labelled.NewEmpty: %w", err)
	}

	return New(labels, backing, opts...)
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[T, B]) VertexCount() int { return g.reg.Len() }

// Vertices returns the labels in index order (a fresh slice).
func (g *Graph[T, B]) Vertices() []T { return g.reg.Labels() }

// HasVertex reports whether label is registered. Never fails.
func (g *Graph[T, B]) HasVertex(label T) bool { return g.reg.Contains(label) }

// IndexOf returns the dense index behind label, or ErrUnknownLabel.
func (g *Graph[T, B]) IndexOf(label T) (int, error) { return g.reg.IndexOf(label) }

// LabelOf returns the label behind index i. i must be in [0, VertexCount()).
func (g *Graph[T, B]) LabelOf(i int) T { return g.reg.LabelOf(i) }

// Directed reports the backing representation's directedness.
func (g *Graph[T, B]) Directed() bool { return g.backing.Directed() }

// EdgeCount delegates to the backing engine.
func (g *Graph[T, B]) EdgeCount() int { return g.backing.EdgeCount() }

// Edges returns every edge as a label pair, in the backing engine's order.
// Undirected core engines report each edge once, normalized by index.
//
// Complexity: O(E).
func (g *Graph[T, B]) Edges() []Edge[T] {
	raw := g.backing.Edges()
	out := make([]Edge[T], len(raw))
	for i, e := range raw {
		out[i] = Edge[T]{Src: g.reg.LabelOf(e.From), Dst: g.reg.LabelOf(e.To)}
	}

	return out
}

// HasEdge reports whether src → dst exists. Unknown labels yield false.
func (g *Graph[T, B]) HasEdge(src, dst T) bool {
	u, err := g.reg.IndexOf(src)
	if err != nil {
		return false
	}
	v, err := g.reg.IndexOf(dst)
	if err != nil {
		return false
	}

	return g.backing.HasEdge(u, v)
}

// HasLabelledEdge is HasEdge(e.Src, e.Dst).
func (g *Graph[T, B]) HasLabelledEdge(e Edge[T]) bool { return g.HasEdge(e.Src, e.Dst) }

// OutNeighbors returns the successors of label in the backing engine's order.
//
// Errors:
//   - ErrUnknownLabel if label is not registered.
func (g *Graph[T, B]) OutNeighbors(label T) ([]T, error) {
	v, err := g.reg.IndexOf(label)
	if err != nil {
		return nil, fmt.Errorf("OutNeighbors: %w", err)
	}
	idx, err := g.backing.OutNeighbors(v)
	if err != nil {
		return nil, fmt.Errorf("OutNeighbors(%v): %w", label, err)
	}

	return g.reg.lookup(idx), nil
}

// InNeighbors returns the predecessors of label in the backing engine's order.
//
// Errors:
//   - ErrUnknownLabel if label is not registered.
func (g *Graph[T, B]) InNeighbors(label T) ([]T, error) {
	v, err := g.reg.IndexOf(label)
	if err != nil {
		return nil, fmt.Errorf("InNeighbors: %w", err)
	}
	idx, err := g.backing.InNeighbors(v)
	if err != nil {
		return nil, fmt.Errorf("InNeighbors(%v): %w", label, err)
	}

	return g.reg.lookup(idx), nil
}

// AllNeighbors returns the union of OutNeighbors and InNeighbors without
// duplicates: out-neighbours first, then in-only neighbours, each in backing order.
//
// Errors:
//   - ErrUnknownLabel if label is not registered.
func (g *Graph[T, B]) AllNeighbors(label T) ([]T, error) {
	out, err := g.OutNeighbors(label)
	if err != nil {
		return nil, err
	}
	in, err := g.InNeighbors(label)
	if err != nil {
		return nil, err
	}

	seen := make(map[T]struct{}, len(out)+len(in))
	all := make([]T, 0, len(out)+len(in))
	for _, group := range [][]T{out, in} {
		for _, l := range group {
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			all = append(all, l)
		}
	}

	return all, nil
}

// OutDegree returns len(OutNeighbors(label)).
func (g *Graph[T, B]) OutDegree(label T) (int, error) {
	nb, err := g.OutNeighbors(label)
	if err != nil {
		return 0, err
	}

	return len(nb), nil
}

// InDegree returns len(InNeighbors(label)).
func (g *Graph[T, B]) InDegree(label T) (int, error) {
	nb, err := g.InNeighbors(label)
	if err != nil {
		return 0, err
	}

	return len(nb), nil
}

// String summarizes the graph, e.g. "{4, 3} undirected labelled graph".
func (g *Graph[T, B]) String() string {
	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}

	return fmt.Sprintf("{%d, %d} %s labelled graph", g.VertexCount(), g.EdgeCount(), kind)
}
