// File: methods_clone.go
// Role: Deep copies of Graph and DiGraph.
// Concurrency:
//   - Read lock on the source; the clone is a fresh instance with its own lock.

package core

// copyFrom deep-copies src adjacency into e. Caller holds src.mu read lock.
// Complexity: O(V + E).
func (e *engine) copyFrom(src *engine) {
	// Scalars first; the mutex is never copied.
	e.directed = src.directed
	e.ne = src.ne
	// Deep-copy every successor row.
	e.out = make([][]int, len(src.out))
	for i, s := range src.out {
		e.out[i] = cloneInts(s)
	}
	// Predecessor rows exist only for directed engines.
	if src.directed {
		e.in = make([][]int, len(src.in))
		for i, s := range src.in {
			e.in[i] = cloneInts(s)
		}
	}
}

// Clone returns an independent deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{}
	c.copyFrom(&g.engine)

	return c
}

// Clone returns an independent deep copy of g.
// Complexity: O(V + E).
func (g *DiGraph) Clone() *DiGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &DiGraph{}
	c.copyFrom(&g.engine)

	return c
}
