package resistance

import (
	"math"

	"github.com/katalvlaran/effres/matrix"
	"github.com/katalvlaran/effres/network"
	"github.com/pkg/errors"
)

// Currents holds the currents derived from a potential vector.
type Currents struct {
	// Taps are the nodes summed into Injected, one entry per contribution.
	Taps []int
	// Injected is Σ (V[tap] − V[ref]) over Taps: the test current R is
	// derived from.
	Injected float64
	// Reference is the total current flowing into the reference terminal
	// through all of its resistors.
	Reference float64
	// Source is the total current leaving the source terminal.
	Source float64
}

// Drive returns the potential difference between the terminals.
func Drive(v []float64, terms Terminals) float64 {
	return v[row(terms.Source)] - v[row(terms.Reference)]
}

// Derive computes the currents and the effective resistance from node
// potentials v.
//
// The injected current is Σ (V[tap] − V[ref]) over taps, each tap standing
// for a unit resistor's worth of current measured against the reference
// potential; R = ΔV / I where ΔV is the drive (1 V for an assembled system,
// so R = 1/I). Empty taps use the reference terminal's incident resistors.
//
// Errors: ErrOpenCircuit when I is not a positive finite number or the drive
// is not finite; matrix.ErrDimensionMismatch for a wrong-length v;
// ErrMalformedTopology for a terminal or tap that is not a node.
func Derive(topo network.Topology, terms Terminals, taps Taps, v []float64) (Currents, float64, error) {
	if err := matrix.ValidateVecLen(v, topo.Order()); err != nil {
		return Currents{}, 0, errors.Wrap(err, stageDerive)
	}
	if err := terms.Validate(topo); err != nil {
		return Currents{}, 0, errors.Wrap(err, stageDerive)
	}
	ids, err := taps.resolve(topo, terms)
	if err != nil {
		return Currents{}, 0, errors.Wrap(err, stageDerive)
	}

	cur := Currents{Taps: ids}
	ref := v[row(terms.Reference)]
	for _, tap := range ids {
		cur.Injected += v[row(tap)] - ref
	}
	for _, nb := range topo.Incident(terms.Reference) {
		cur.Reference += v[row(nb)] - ref
	}
	src := v[row(terms.Source)]
	for _, nb := range topo.Incident(terms.Source) {
		cur.Source += src - v[row(nb)]
	}

	drive := Drive(v, terms)
	if !finite(cur.Injected) || cur.Injected <= 0 || !finite(drive) {
		return cur, 0, errors.Wrapf(ErrOpenCircuit, "%s: current %g through taps %v of node %d",
			stageDerive, cur.Injected, ids, terms.Reference)
	}

	return cur, drive / cur.Injected, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
