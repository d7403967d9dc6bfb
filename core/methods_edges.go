// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeCount/Edges.
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
//   - Undirected edges are reported once, normalized to From <= To.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Re-adding an existing edge is a no-op reported as (false, nil).
//   - Self-loops are stored once (no mirror) and count as one edge.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the edge u→v (u-v when undirected).
//
// Implementation:
//   - Stage 1: Under mu write lock validate both endpoints (ErrVertexNotFound).
//   - Stage 2: Insert v into out[u] keeping it sorted; stop if already present.
//   - Stage 3: Directed: insert u into in[v]. Undirected non-loop: insert u into out[v].
//   - Stage 4: Increment the logical edge counter.
//
// Returns:
//   - bool: true if the edge was newly inserted, false if it already existed.
//   - error: ErrVertexNotFound wrapped with the offending index.
//
// Complexity:
//   - Time O(deg(u) + deg(v)) for the sorted insertions, Space O(1) amortized.
func (e *engine) AddEdge(u, v int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Validate both endpoints before touching adjacency.
	if !e.hasVertex(u) {
		return false, fmt.Errorf("AddEdge(%d,%d): source %d: %w", u, v, u, ErrVertexNotFound)
	}
	if !e.hasVertex(v) {
		return false, fmt.Errorf("AddEdge(%d,%d): destination %d: %w", u, v, v, ErrVertexNotFound)
	}

	// Insert into u's row; an existing entry makes the call a no-op.
	var added bool
	if e.out[u], added = insertSorted(e.out[u], v); !added {
		return false, nil
	}
	// Mirror the edge: predecessor row when directed, v's row when undirected.
	// A self-loop already sits in the only row it belongs to.
	if e.directed {
		e.in[v], _ = insertSorted(e.in[v], u)
	} else if u != v {
		e.out[v], _ = insertSorted(e.out[v], u)
	}
	// Count logical edges, not adjacency entries.
	e.ne++

	return true, nil
}

// HasEdge reports whether u→v exists (either orientation when undirected).
// Out-of-range indices yield false.
// Complexity: O(log deg(u)).
func (e *engine) HasEdge(u, v int) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.hasVertex(u) || !e.hasVertex(v) {
		return false
	}

	return containsSorted(e.out[u], v)
}

// EdgeCount returns the number of logical edges.
// Complexity: O(1).
func (e *engine) EdgeCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.ne
}

// Edges returns every edge sorted by (From, To).
//
// Undirected engines report each edge once with From <= To; the mirrored
// adjacency entry (To, From) is skipped.
//
// Complexity: O(V + E).
func (e *engine) Edges() []Edge {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Edge, 0, e.ne)
	var u, v int
	// Rows are visited in index order and each row is ascending, so the
	// result is already sorted by (From, To).
	for u = range e.out {
		for _, v = range e.out[u] {
			// Skip the mirrored half of undirected edges.
			if !e.directed && v < u {
				continue
			}
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// insertSorted inserts x into the ascending slice s.
// Returns the (possibly reallocated) slice and false when x was already present.
func insertSorted(s []int, x int) ([]int, bool) {
	// Binary search for the insertion point.
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		return s, false
	}
	// Grow by one and shift the tail right.
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s, true
}

// containsSorted reports whether x is in the ascending slice s.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}
