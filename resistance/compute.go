package resistance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/effres/matrix"
	"github.com/katalvlaran/effres/network"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Result carries every intermediate of one computation.
type Result struct {
	System     *System
	Potentials []float64
	Currents   Currents
	// Residual is ‖A·V − B‖∞ of the computed potentials.
	Residual float64
	// Resistance is ΔV over the tapped current.
	Resistance float64
	// Kirchhoff is ΔV over the full current into the reference terminal.
	// It equals Resistance when no taps are given; 0 if no current flows.
	Kirchhoff float64
}

// Summary renders the resistance rounded to four decimals.
func (r *Result) Summary() string {
	return fmt.Sprintf("The effective resistance between nodes %d and %d is approximately: %.4f ohms.",
		r.System.Terminals.Reference, r.System.Terminals.Source, r.Resistance)
}

// Compute returns the effective resistance between the two terminals of topo,
// reading the injected current at taps (nil: every resistor at the reference
// terminal). It is pure: no output is produced and topo is not modified.
//
// Errors (match with errors.Is): ErrMalformedTopology, ErrBadTerminals,
// ErrSingularSystem, ErrOpenCircuit.
func Compute(topo network.Topology, terms Terminals, taps Taps) (float64, error) {
	res, err := Run(topo, terms, taps)
	if err != nil {
		return 0, err
	}

	return res.Resistance, nil
}

// Run assembles, solves and derives, returning all intermediates.
//
// Stages:
//   - assemble: Assemble(topo, terms).
//   - solve:    terminals in different components are rejected up front;
//     otherwise A·V = B is solved by LU with partial pivoting. A floating
//     sub-network surfaces here as a negligible pivot.
//   - derive:   Derive(topo, terms, taps, V); the currents at the two
//     terminals are compared and a mismatch is logged.
func Run(topo network.Topology, terms Terminals, taps Taps, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	sys, err := Assemble(topo, terms)
	if err != nil {
		return nil, err
	}

	v, err := solve(topo, sys, o.pivotTol)
	if err != nil {
		return nil, errors.Wrap(err, stageSolve)
	}

	residual, err := matrix.Residual(sys.A, v, sys.B)
	if err != nil {
		return nil, errors.Wrap(err, stageSolve)
	}
	klog.V(2).Infof("%s: residual ‖A·V−B‖∞ = %.3g", stageSolve, residual)

	cur, r, err := Derive(topo, terms, taps, v)
	if err != nil {
		return nil, err
	}
	if gap := math.Abs(cur.Reference - cur.Source); gap > o.kclTol {
		klog.Warningf("%s: current mismatch at terminals %v: %g at reference, %g at source", stageDerive, terms, cur.Reference, cur.Source)
	}

	res := &Result{
		System:     sys,
		Potentials: v,
		Currents:   cur,
		Residual:   residual,
		Resistance: r,
	}
	if cur.Reference > 0 {
		res.Kirchhoff = Drive(v, terms) / cur.Reference
	}
	klog.V(2).Infof("%s: taps=%v I=%.12g R=%.12g kirchhoff=%.12g", stageDerive, cur.Taps, cur.Injected, r, res.Kirchhoff)

	return res, nil
}

// solve returns V with A·V = B, translating singularity into ErrSingularSystem
// with a connectivity diagnostic.
func solve(topo network.Topology, sys *System, tol float64) ([]float64, error) {
	terms := sys.Terminals
	if !topo.Connected(terms.Reference, terms.Source) {
		return nil, errors.Wrapf(ErrSingularSystem, "terminals %v lie in different components (%d total)",
			terms, len(topo.Components()))
	}

	v, err := matrix.Solve(sys.A, sys.B, tol)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, matrix.ErrSingular) {
		return nil, err
	}

	floating := floatingComponents(topo, terms)
	klog.V(2).Infof("%s: %d floating component(s): %v", stageSolve, len(floating), floating)

	return nil, errors.Wrapf(ErrSingularSystem, "%d component(s) hold no terminal %v (%v)", len(floating), floating, err)
}

// floatingComponents lists the components containing neither terminal.
func floatingComponents(topo network.Topology, terms Terminals) [][]int {
	var out [][]int
	for _, comp := range topo.Components() {
		held := false
		for _, id := range comp {
			if terms.IsTerminal(id) {
				held = true
				break
			}
		}
		if !held {
			out = append(out, comp)
		}
	}

	return out
}
