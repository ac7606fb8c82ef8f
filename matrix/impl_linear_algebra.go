// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels used to solve
// conductance systems: matrix-vector products, LU with partial pivoting and
// the triangular solves built on top of it.
//
// Notes:
//   - Kernels validate through validators.go and wrap failures with matrixErrorf.
//   - Every kernel has a fast path on *Dense; other Matrix implementations are
//     copied into a *Dense first (asDense), which keeps one code path per kernel.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opLUP      = "LUP"
	opSolve    = "Solve"
	opResidual = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Only call with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a *Dense copy built
// through the interface accessors.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications; conductance rows are mostly zero
				acc += d.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Residual returns ‖A·x − b‖∞, the largest absolute equation error of a
// candidate solution x.
func Residual(a Matrix, x, b []float64) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	var worst float64
	for i := range ax {
		if d := math.Abs(ax[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}

// Factors holds a packed LU factorization with row permutation, P·A = L·U.
// The strictly lower part of lu is L (unit diagonal implied), the upper part
// including the diagonal is U. perm[i] is the original row placed at row i.
type Factors struct {
	n    int
	lu   *Dense
	perm []int
}

// LUP factors a square matrix with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: validate; copy A into a working buffer; scale := max|a_ij|.
//   - Stage 2: for each column k pick the row with the largest |a_ik|, i ≥ k,
//     swap it into place, then eliminate below the pivot.
//
// Behavior highlights:
//   - A pivot with |p| <= tol*scale is reported as ErrSingular: this is how a
//     floating sub-network (no terminal in its component) shows up.
//   - Ties keep the lowest row index, so results are deterministic.
//
// Inputs:
//   - m:   square matrix (not mutated).
//   - tol: relative pivot tolerance; tol <= 0 selects DefaultPivotTolerance.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUP(m Matrix, tol float64) (*Factors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	if err = ValidateFiniteVec(src.data); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	if tol <= 0 {
		tol = DefaultPivotTolerance
	}

	n := src.r
	w := src.Clone().(*Dense)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	scale := w.MaxAbs()
	if scale == 0 {
		return nil, matrixErrorf(opLUP, ErrSingular)
	}
	limit := tol * scale

	var i, j, k, p int
	var best, v, factor float64
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, math.Abs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(w.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= limit {
			return nil, matrixErrorf(opLUP, fmt.Errorf("pivot %d: |%g| <= %g: %w", k, best, limit, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				w.data[k*n+j], w.data[p*n+j] = w.data[p*n+j], w.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		// Eliminate below the pivot, storing multipliers in place.
		for i = k + 1; i < n; i++ {
			if w.data[i*n+k] == 0 {
				continue
			}
			factor = w.data[i*n+k] / w.data[k*n+k]
			w.data[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				w.data[i*n+j] -= factor * w.data[k*n+j]
			}
		}
	}

	return &Factors{n: n, lu: w, perm: perm}, nil
}

// Solve applies the factorization to b and returns x with A·x = b.
// b is not mutated.
func (f *Factors) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := f.n
	y := make([]float64, n)
	x := make([]float64, n)
	var i, k, base int
	var sum float64

	// Forward substitution: L*y = P*b
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += f.lu.data[base+k] * y[k]
		}
		y[i] = b[f.perm[i]] - sum
	}

	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += f.lu.data[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / f.lu.data[base+i]
	}

	if err := ValidateFiniteVec(x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Solve returns x with a·x = b using LU with partial pivoting.
// It is the dense direct solver used for conductance systems.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square a or len(b) != n),
//     ErrNaNInf, ErrSingular.
func Solve(a Matrix, b []float64, tol float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LUP(a, tol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}
