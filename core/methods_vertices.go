// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - AddVertex always assigns the next free index (== previous VertexCount()).
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

// AddVertex appends one isolated vertex and returns its index.
//
// Implementation:
//   - Stage 1: Acquire mu write lock.
//   - Stage 2: Append an empty successor bucket (and predecessor bucket when directed).
//   - Stage 3: Return the previous vertex count as the new index.
//
// Behavior highlights:
//   - The index space only grows; the returned index is never reused.
//
// Returns:
//   - int: the new vertex index.
//   - error: always nil for the in-memory engines; present to satisfy growable backends
//     whose growth can fail.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// AI-Hints:
//   - Callers that keep a parallel label table must append their label only after
//     this returns without error.
func (e *engine) AddVertex() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// The new vertex takes the next dense index.
	idx := len(e.out)
	// Empty adjacency row; lazily allocated on first edge.
	e.out = append(e.out, nil)
	// Directed engines keep a parallel predecessor row.
	if e.directed {
		e.in = append(e.in, nil)
	}

	return idx, nil
}

// HasVertex reports whether v is a valid index.
// Complexity: O(1).
func (e *engine) HasVertex(v int) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.hasVertex(v)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (e *engine) VertexCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.out)
}

// Vertices returns the index range 0..VertexCount()-1.
// Complexity: O(V).
func (e *engine) Vertices() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	vs := make([]int, len(e.out))
	for i := range vs {
		vs[i] = i
	}

	return vs
}

// hasVertex is the lock-free range check; callers hold mu.
func (e *engine) hasVertex(v int) bool {
	return v >= 0 && v < len(e.out)
}
