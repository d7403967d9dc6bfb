// SPDX-License-Identifier: MIT
// Package: labelgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n vertices in ascending index order.
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	// Return a closure capturing n; Build supplies g.
	return func(g Growable) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			// Preserve sentinel semantics with deterministic context message.
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Append n fresh vertices; indices come back in insertion order.
		ids, err := addVertices(g, methodPath, n)
		if err != nil {
			return err
		}

		// Emit edges (i-1) -> i in stable increasing order.
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
