// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) resistor network.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - Visits pairs i<j in ascending order and keeps each with probability p,
//     drawn from a math/rand source seeded with seed.
//   - Same (n, p, seed) ⇒ identical topology. Connectivity is not guaranteed.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a seeded G(n,p) network.
func RandomSparse(n int, p float64, seed int64) Constructor {
	return func(d *Draft) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		rng := rand.New(rand.NewSource(seed))
		base := d.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < p || p == probMax {
					if err := d.AddEdge(base+i, base+j); err != nil {
						return fmt.Errorf("%s: %w", methodRandomSparse, err)
					}
				}
			}
		}

		return nil
	}
}
