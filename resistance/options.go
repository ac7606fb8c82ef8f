// SPDX-License-Identifier: MIT

// Package resistance: functional configuration for Run.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Public entry points accept ...Option and resolve them via gatherOptions.
package resistance

import (
	"math"

	"github.com/katalvlaran/effres/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the relative pivot threshold handed to the
	// LU factorization.
	DefaultPivotTolerance = matrix.DefaultPivotTolerance

	// DefaultKCLTolerance bounds |I_ref − I_src| before Run logs a warning.
	// Both currents describe the same flow; a gap means the solve drifted.
	DefaultKCLTolerance = 1e-9
)

const (
	panicPivotToleranceInvalid = "resistance: WithPivotTolerance: tol must be finite, in (0, 1)"
	panicKCLToleranceInvalid   = "resistance: WithKCLTolerance: tol must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	pivotTol float64
	kclTol   float64
}

// WithPivotTolerance sets the relative pivot threshold: a pivot with
// |p| <= tol·max|a_ij| makes the system singular.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 || tol >= 1 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithKCLTolerance sets the threshold above which a mismatch between the
// reference and source currents is logged.
func WithKCLTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicKCLToleranceInvalid)
	}

	return func(o *Options) { o.kclTol = tol }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		pivotTol: DefaultPivotTolerance,
		kclTol:   DefaultKCLTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
