// SPDX-License-Identifier: MIT
// Package: labelgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first appended vertex is the hub; the remaining n-1 are leaves.
//   - Emits spokes hub → leaf[i] in increasing leaf order. For directed graphs,
//     also emits leaf[i] → hub to preserve spoke symmetry.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	// Return a closure capturing n; Build supplies g.
	return func(g Growable) error {
		// One hub plus at least one leaf.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		// Append n fresh vertices; the first is the hub.
		ids, err := addVertices(g, methodStar, n)
		if err != nil {
			return err
		}
		hub := ids[0]
		directed := g.Directed()

		// Emit spokes in increasing leaf order.
		for _, leaf := range ids[1:] {
			if err = addEdge(g, methodStar, hub, leaf); err != nil {
				return err
			}
			if directed {
				if err = addEdge(g, methodStar, leaf, hub); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
