// SPDX-License-Identifier: MIT
// Package: labelgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges followed by the closing edge (n-1) -> 0.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	// Return a closure capturing n; Build supplies g.
	return func(g Growable) error {
		// A simple cycle needs at least three vertices.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Append n fresh vertices.
		ids, err := addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}

		// Emit i -> (i+1) mod n; the last step closes the ring back to ids[0].
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
