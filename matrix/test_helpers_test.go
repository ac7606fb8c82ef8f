// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/effres/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions, so
// kernels take their interface (copy-to-Dense) path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c matrix from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: len(vals) must be r*c")
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, vals[i*c+j]))
		}
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// pathLaplacian returns the grounded conductance matrix of a chain of n unit
// resistors whose first node is tied to ground: tridiagonal 2,-1 with a 1 in
// the last diagonal slot.
func pathLaplacian(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 2))
		if i > 0 {
			require.NoError(t, m.Set(i, i-1, -1))
		}
		if i+1 < n {
			require.NoError(t, m.Set(i, i+1, -1))
		}
	}
	require.NoError(t, m.Set(n-1, n-1, 1))

	return m
}
