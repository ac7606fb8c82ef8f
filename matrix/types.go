// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense storage and the solver kernels.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// The resistance pipeline only needs the accessor surface; kernels take the
// interface and use a fast path when the dynamic type is *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// DefaultValidateNaNInf is the numeric policy applied by NewDense: Set and Inc
// reject NaN/±Inf so that a corrupted stamp surfaces before the solve.
const DefaultValidateNaNInf = true

// DefaultPivotTolerance is the relative threshold below which a pivot is
// considered zero by LUP: |pivot| <= tol * max|a_ij|.
const DefaultPivotTolerance = 1e-12
