// Package matrix offers dense linear algebra for small conductance systems.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     accumulating Inc used to stamp conductances.
//   - LUP, the LU factorization with partial pivoting, and Factors.Solve.
//   - Solve, the dense direct solver: LUP followed by forward/backward
//     substitution, reporting ErrSingular for singular or near-singular input.
//   - MatVec and Residual for checking a solution against its system.
//
// Dense storage is O(n²), which suits networks of tens to a few hundred
// nodes. All kernels return sentinel errors (errors.go) and never panic on
// user input.
package matrix
