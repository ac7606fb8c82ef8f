// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (rim cycle of n-1 ≥ 3 nodes plus hub), else ErrTooFewVertices.
//   - Rim built by Cycle(n-1) first; the hub is allocated last; spokes follow
//     in increasing rim order.
//
// W_4 is K_4, so every pair sits at R = 1/2.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(d *Draft) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := d.Order() + 1
		if err := Cycle(n - 1)(d); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := d.AddNodes(1)

		for i := 0; i < n-1; i++ {
			if err := d.AddEdge(rim+i, hub); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
