// Package resistance computes the effective resistance between two terminals
// of a unit-resistor network.
//
// The pipeline has three stages, each reported in errors as a prefix:
//
//	assemble  network.Topology + Terminals → conductance system A·V = B
//	solve     dense LU with partial pivoting → node potentials V
//	derive    current read at the taps → R = ΔV / I
//
// Assembly holds the Reference terminal at 0 V and the Source terminal at
// 1 V through identity rows; every other row is Kirchhoff's current law.
// Derivation sums V[tap] − V[ref] over a set of taps, the nodes through
// which the unit test current is read; since the drive is one volt, R is the
// reciprocal of that sum. CanonicalTaps (nodes 3, 4, 9) is the reading used
// for the reference network; nil taps read every resistor incident to the
// reference terminal, which is the full Kirchhoff current and is reported
// alongside as Result.Kirchhoff.
//
// Compute is the pure entry point; Run returns the full Result used by the
// CLI to dump A, B and V.
package resistance
