// File: view.go
// Role: Non-mutating graph views (induced subgraphs).
// Determinism:
//   - Vertex i of the result corresponds to vs[i]; edges keep their relative order.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input graph.
//   - InducedSubgraph keeps only vertices in vs and edges with both endpoints kept.

package core

import "fmt"

// induce fills dst with the subgraph of e induced by vs.
//
// Implementation:
//   - Stage 1: Under e.mu read lock, validate vs (range and uniqueness) and build old→new index map.
//   - Stage 2: Allocate len(vs) vertices in dst.
//   - Stage 3: For each kept vertex, copy successors whose endpoint is also kept, translated.
//
// Complexity: O(len(vs) + Σ deg(vs[i]) · log deg).
func (e *engine) induce(dst *engine, vs []int) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	// Build old→new index map, validating range and uniqueness on the way.
	remap := make(map[int]int, len(vs))
	for i, v := range vs {
		if !e.hasVertex(v) {
			return fmt.Errorf("InducedSubgraph: index %d: %w", v, ErrVertexNotFound)
		}
		if _, dup := remap[v]; dup {
			return fmt.Errorf("InducedSubgraph: index %d: %w", v, ErrDuplicateVertex)
		}
		remap[v] = i
	}

	// Fresh edgeless engine with one vertex per requested index.
	if err := dst.init(len(vs), e.directed); err != nil {
		return err
	}

	var (
		nv int
		ok bool
	)
	// Copy every edge whose endpoints both survive.
	for oldU, nu := range remap {
		for _, oldV := range e.out[oldU] {
			// Endpoint dropped from the subgraph.
			if nv, ok = remap[oldV]; !ok {
				continue
			}
			// Undirected edges are visited from both ends; take each once.
			if !e.directed && oldV < oldU {
				continue
			}
			dst.out[nu], _ = insertSorted(dst.out[nu], nv)
			if e.directed {
				dst.in[nv], _ = insertSorted(dst.in[nv], nu)
			} else if nu != nv {
				dst.out[nv], _ = insertSorted(dst.out[nv], nu)
			}
			dst.ne++
		}
	}

	return nil
}

// InducedSubgraph returns a new Graph over vs, where vertex i of the result is
// vs[i] of g, together with every edge of g whose endpoints are both in vs.
// The input graph is not mutated.
//
// Errors:
//   - ErrVertexNotFound if any index is out of range.
//   - ErrDuplicateVertex if vs repeats an index.
//
// Complexity: O(V' + E') where V', E' bound the kept neighbourhoods.
func (g *Graph) InducedSubgraph(vs []int) (*Graph, error) {
	out := &Graph{}
	if err := g.induce(&out.engine, vs); err != nil {
		return nil, err
	}

	return out, nil
}

// InducedSubgraph is the directed counterpart of Graph.InducedSubgraph.
func (g *DiGraph) InducedSubgraph(vs []int) (*DiGraph, error) {
	out := &DiGraph{}
	if err := g.induce(&out.engine, vs); err != nil {
		return nil, err
	}

	return out, nil
}
