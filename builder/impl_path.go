// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits resistors (i-1)–i for i=1..n-1 in stable increasing order.
//
// End-to-end effective resistance of P_n is n-1 (series chain).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a chain of n nodes and n-1 resistors.
func Path(n int) Constructor {
	return func(d *Draft) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := d.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := d.AddEdge(base+i-1, base+i); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
