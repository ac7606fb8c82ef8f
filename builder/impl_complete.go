// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits every pair i<j once, lexicographic order.
//
// Between any two nodes of K_n, R = 2/n.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that wires every pair of n nodes.
func Complete(n int) Constructor {
	return func(d *Draft) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := d.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := d.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
