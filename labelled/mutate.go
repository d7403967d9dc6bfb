// SPDX-License-Identifier: MIT
// File: mutate.go
// Role: Vertex and edge insertion.
// Invariants:
//   - The registry and the backing engine grow in lockstep, one vertex at a time.
//   - All label validation happens before the first mutation.
// AI-HINT (file):
//   - AddVertices validates the whole batch first: either every label is added or none.

package labelled

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// AddVertex appends a vertex named label.
//
// Implementation:
//   - Stage 1: Reject a registered label (ErrDuplicateLabel); nothing is mutated.
//   - Stage 2: Reject an engine whose vertex count no longer matches the
//     registry (ErrIndexMismatch); nothing is mutated.
//   - Stage 3: Grow the backing engine by one vertex.
//   - Stage 4: Register label at the slot the engine just filled.
//
// Behavior highlights:
//   - If the engine fails to grow, the registry is untouched.
//   - The new index is taken from the engine's vertex count. An engine that
//     reports a different index is logged at Warn and the label still lands
//     on the filled slot, so registry and engine stay in lockstep.
//
// Errors:
//   - ErrDuplicateLabel, ErrIndexMismatch, or the engine's growth error.
//
// Complexity: O(1) amortized plus the engine's growth cost.
func (g *Graph[T, B]) AddVertex(label T) error {
	if g.reg.Contains(label) {
		return fmt.Errorf("AddVertex(%v): %w", label, ErrDuplicateLabel)
	}

	return g.addVertex(label)
}

// AddVertices appends every label in order, all-or-nothing with respect to
// label validation.
//
// Errors:
//   - ErrDuplicateLabel if any label is registered already or repeats within
//     labels. The graph is unchanged in that case.
//   - ErrIndexMismatch if the engine's vertex count disagrees with the
//     registry before the first insertion. The graph is unchanged.
//   - The engine's growth error, wrapped. Vertices added before the failing
//     one stay registered (engines cannot remove vertices); registry and
//     engine still agree, and the failing label and every later one are absent.
//
// Complexity: O(len(labels)).
func (g *Graph[T, B]) AddVertices(labels []T) error {
	if err := g.reg.checkFresh(labels); err != nil {
		return fmt.Errorf("AddVertices: %w", err)
	}
	if err := g.checkAligned(); err != nil {
		return fmt.Errorf("AddVertices: %w", err)
	}
	for _, l := range labels {
		if err := g.addVertex(l); err != nil {
			return fmt.Errorf("AddVertices: %w", err)
		}
	}

	return nil
}

// checkAligned reports ErrIndexMismatch when the engine grew or shrank
// outside this Graph.
func (g *Graph[T, B]) checkAligned() error {
	if have, want := g.backing.VertexCount(), g.reg.Len(); have != want {
		return fmt.Errorf("backing graph has %d vertices, registry has %d: %w", have, want, ErrIndexMismatch)
	}

	return nil
}

// addVertex grows the engine and registers an already validated label.
func (g *Graph[T, B]) addVertex(label T) error {
	// refuse before mutating: a misaligned engine cannot be repaired here
	if err := g.checkAligned(); err != nil {
		return fmt.Errorf("AddVertex(%v): %w", label, err)
	}
	want := g.reg.Len()
	idx, err := g.backing.AddVertex()
	if err != nil {
		return fmt.Errorf("AddVertex(%v): %w", label, err)
	}
	if idx != want {
		g.log.WithFields(logrus.Fields{"label": label, "reported": idx, "index": want}).
			Warn("labelled: backing graph reported unexpected index")
	}
	if _, err = g.reg.Append(label); err != nil {
		return fmt.Errorf("AddVertex(%v): %w", label, err)
	}
	g.log.WithFields(logrus.Fields{"label": label, "index": want}).Debug("labelled: vertex added")

	return nil
}

// AddEdge inserts src → dst (src - dst for undirected backends).
//
// Returns:
//   - bool: whether the engine stored a new edge (false for a re-insertion).
//
// Errors:
//   - ErrUnknownLabel if either endpoint is not registered.
func (g *Graph[T, B]) AddEdge(src, dst T) (bool, error) {
	u, err := g.reg.IndexOf(src)
	if err != nil {
		return false, fmt.Errorf("AddEdge: source %w", err)
	}
	v, err := g.reg.IndexOf(dst)
	if err != nil {
		return false, fmt.Errorf("AddEdge: destination %w", err)
	}

	added, err := g.backing.AddEdge(u, v)
	if err != nil {
		return false, fmt.Errorf("AddEdge(%v, %v): %w", src, dst, err)
	}
	if added {
		g.log.WithFields(logrus.Fields{"src": src, "dst": dst}).Debug("labelled: edge added")
	}

	return added, nil
}

// AddLabelledEdge is AddEdge(e.Src, e.Dst).
func (g *Graph[T, B]) AddLabelledEdge(e Edge[T]) (bool, error) { return g.AddEdge(e.Src, e.Dst) }
