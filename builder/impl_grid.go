// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 and at least two nodes (else ErrTooFewVertices).
//   - Node (r,c) = base + r*cols + c; for every cell emit right then down.
//
// A 2×2 grid is a square (opposite corners R = 1); 3×3 corners give R = 3/2.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(d *Draft) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d, two nodes total): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := d.AddNodes(rows * cols)
		id := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := d.AddEdge(id(r, c), id(r, c+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := d.AddEdge(id(r, c), id(r+1, c)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
