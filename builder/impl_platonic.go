// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_platonic.go - PlatonicSolid(name) constructor.
//
// Contract:
//   - Allocates V nodes; solid index i maps to base+i.
//   - Emits the canonical edge set in its fixed order.
//   - Unknown names return ErrConstructFailed.

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor for the skeleton of the named solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(d *Draft) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		base := d.AddNodes(n)
		for _, ch := range platonicEdgeSets[name] {
			if err := d.AddEdge(base+ch.U, base+ch.V); err != nil {
				return fmt.Errorf("%s(%s): %w", methodPlatonicSolid, name, err)
			}
		}

		return nil
	}
}
