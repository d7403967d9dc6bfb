// SPDX-License-Identifier: MIT
// Package: labelgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(g, cons...). Runs cons in order on g.
//   - Determinism: same inputs and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import "fmt"

// Growable is the subset of a dense-index engine the constructors need.
// Both *core.Graph and *core.DiGraph satisfy it.
type Growable interface {
	AddVertex() (int, error)
	AddEdge(u, v int) (bool, error)
	Directed() bool
}

// Constructor appends a deterministic topology to g. Constructors MUST:
//   - Validate parameters before touching g.
//   - Add only fresh vertices (obtained from g.AddVertex).
//   - Return sentinel errors wrapped with method context.
type Constructor func(g Growable) error

// Build applies all constructors to g in order and returns g.
// Any constructor error is wrapped with "Build: %w" and returned immediately;
// no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor.
func Build[G Growable](g G, cons ...Constructor) (G, error) {
	// Apply constructors strictly in the caller's order.
	for i, fn := range cons {
		// A nil entry is a configuration bug; report its position.
		if fn == nil {
			return g, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return g, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n vertices and returns their indices in order.
func addVertices(g Growable, method string, n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		// The engine picks the index; record it rather than assuming offsets.
		idx, err := g.AddVertex()
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex #%d: %w", method, i, err)
		}
		ids[i] = idx
	}

	return ids, nil
}

// addEdge inserts u→v and wraps failures with method context.
func addEdge(g Growable, method string, u, v int) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}

	return nil
}
