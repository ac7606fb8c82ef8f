// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits ring resistors i–(i+1) for i=0..n-2, then the closing (n-1)–0.
//
// Between adjacent ring nodes R = (n-1)/n: one resistor in parallel with a
// chain of n-1.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a ring of n nodes.
func Cycle(n int) Constructor {
	return func(d *Draft) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := d.AddNodes(n)
		for i := 0; i < n; i++ {
			if err := d.AddEdge(base+i, base+(i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
