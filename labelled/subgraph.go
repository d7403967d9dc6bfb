// SPDX-License-Identifier: MIT
// File: subgraph.go
// Role: Induced subgraphs and deep copies.

package labelled

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// InducedSubgraph returns the subgraph over labels, together with every edge
// whose endpoints are both in labels. In the result, labels[i] names index i.
// The returned label slice is a copy of the request, for convenience.
// The result shares no mutable state with g.
//
// Errors:
//   - ErrUnknownLabel if any label is not registered.
//   - ErrDuplicateLabel if labels repeats an entry.
//
// Complexity: dominated by the engine's InducedSubgraph.
func (g *Graph[T, B]) InducedSubgraph(labels []T) (*Graph[T, B], []T, error) {
	idx, err := g.reg.translate(labels)
	if err != nil {
		return nil, nil, fmt.Errorf("InducedSubgraph: %w", err)
	}
	seen := make(map[T]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return nil, nil, fmt.Errorf("InducedSubgraph: %v: %w", l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	sub, err := g.backing.InducedSubgraph(idx)
	if err != nil {
		return nil, nil, fmt.Errorf("InducedSubgraph: %w", err)
	}
	out, err := New(labels, sub, WithLogger(g.log))
	if err != nil {
		return nil, nil, fmt.Errorf("InducedSubgraph: %w", err)
	}
	g.log.WithFields(logrus.Fields{"vertices": out.VertexCount(), "edges": out.EdgeCount()}).
		Debug("labelled: induced subgraph extracted")

	return out, out.Vertices(), nil
}

// Clone returns an independent deep copy, obtained as the subgraph induced
// by every vertex in index order.
func (g *Graph[T, B]) Clone() (*Graph[T, B], error) {
	all := make([]int, g.reg.Len())
	for i := range all {
		all[i] = i
	}
	c, err := g.backing.InducedSubgraph(all)
	if err != nil {
		return nil, fmt.Errorf("Clone: %w", err)
	}

	return New(g.reg.Labels(), c, WithLogger(g.log))
}
