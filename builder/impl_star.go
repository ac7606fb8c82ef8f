// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 total nodes: center plus n-1 leaves (else ErrTooFewVertices).
//   - Center is the block's first id; spokes are emitted leaf-ascending.
//
// Leaf to leaf R = 2, center to leaf R = 1.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(d *Draft) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := d.AddNodes(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err := d.AddEdge(center, leaf); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
