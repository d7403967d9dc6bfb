// File: methods_adjacent.go
// Role: Neighbourhood APIs (OutNeighbors, InNeighbors, degrees).
// Determinism:
//   - Returned index slices are ascending and independent of internal storage.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import "fmt"

// OutNeighbors returns the successors of v in ascending order.
// For undirected graphs this is the full neighbourhood.
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity: O(deg(v)) for the defensive copy.
func (e *engine) OutNeighbors(v int) ([]int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.hasVertex(v) {
		return nil, fmt.Errorf("OutNeighbors(%d): %w", v, ErrVertexNotFound)
	}

	return cloneInts(e.out[v]), nil
}

// InNeighbors returns the predecessors of v in ascending order.
// For undirected graphs this equals OutNeighbors(v).
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity: O(deg(v)).
func (e *engine) InNeighbors(v int) ([]int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.hasVertex(v) {
		return nil, fmt.Errorf("InNeighbors(%d): %w", v, ErrVertexNotFound)
	}
	// Undirected engines keep a single symmetric row.
	if !e.directed {
		return cloneInts(e.out[v]), nil
	}

	return cloneInts(e.in[v]), nil
}

// OutDegree returns len(OutNeighbors(v)).
// Complexity: O(1).
func (e *engine) OutDegree(v int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.hasVertex(v) {
		return 0, fmt.Errorf("OutDegree(%d): %w", v, ErrVertexNotFound)
	}

	return len(e.out[v]), nil
}

// InDegree returns len(InNeighbors(v)).
// Complexity: O(1).
func (e *engine) InDegree(v int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.hasVertex(v) {
		return 0, fmt.Errorf("InDegree(%d): %w", v, ErrVertexNotFound)
	}
	if !e.directed {
		return len(e.out[v]), nil
	}

	return len(e.in[v]), nil
}

// cloneInts returns an independent copy; nil stays non-nil empty for stable comparisons.
func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
