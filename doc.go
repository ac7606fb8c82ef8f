// Package effres computes the effective resistance between two nodes of a
// network of unit (1 Ω) resistors.
//
// The work is split into small packages:
//
//	network/    — Topology (node id → neighbor list), validation, components,
//	              and the canonical 15-node reference network
//	matrix/     — dense row-major storage and an LU solver with partial pivoting
//	resistance/ — assembly of A·V = B, the solve, and R derivation
//	builder/    — deterministic constructors for test networks (path, grid,
//	              wheel, Platonic solids, random sparse …)
//	cmd/effres  — CLI printing A, B, V and the resistance line
//
// Quick example:
//
//	r, err := resistance.Compute(network.Reference(), resistance.Canonical(), resistance.CanonicalTaps())
//	// r ≈ 0.7273; nil taps give the full Kirchhoff figure, ≈ 0.8565
//
// Every resistor is a neighbor-list entry; listing a pair on both sides, or
// twice on one side, means two resistors in parallel.
package effres
