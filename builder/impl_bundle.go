// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bundle.go - Bundle(k) and Link(u, v) constructors.
//
// Bundle: two nodes joined by k ≥ 1 parallel resistors, R = 1/k.
// Link:   one resistor between two already allocated nodes; allocates nothing.

package builder

import "fmt"

const (
	methodBundle = "Bundle"
	methodLink   = "Link"
	minBundle    = 1
)

// Bundle returns a Constructor for k parallel resistors between two new nodes.
func Bundle(k int) Constructor {
	return func(d *Draft) error {
		if k < minBundle {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBundle, k, minBundle, ErrTooFewVertices)
		}

		a := d.AddNodes(2)
		for i := 0; i < k; i++ {
			if err := d.AddEdge(a, a+1); err != nil {
				return fmt.Errorf("%s: %w", methodBundle, err)
			}
		}

		return nil
	}
}

// Link returns a Constructor that wires two existing nodes, typically to join
// blocks produced by earlier constructors.
func Link(u, v int) Constructor {
	return func(d *Draft) error {
		if err := d.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: %w", methodLink, err)
		}

		return nil
	}
}
