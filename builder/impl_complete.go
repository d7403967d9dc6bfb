// SPDX-License-Identifier: MIT
// Package: labelgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, in lexicographic order.
//   • Directed graphs additionally receive j -> i so every ordered pair is present.
//
// Complexity:
//   • Time: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	// Return a closure capturing n; Build supplies g.
	return func(g Growable) error {
		// K_1 is allowed (single isolated vertex); K_0 is not.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Append n fresh vertices.
		ids, err := addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}

		// Read directedness once; it is fixed for the engine type.
		directed := g.Directed()
		// Visit each unordered pair i<j exactly once, in lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// Forward arc (the only edge for undirected engines).
				if err = addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				// Directed engines also need the back arc to stay complete.
				if directed {
					if err = addEdge(g, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
