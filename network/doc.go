// Package network defines the unit-resistor topology that the resistance
// pipeline turns into a conductance system.
//
// A Topology maps each node id (1..N) to the ids it is wired to. Every entry
// of a neighbor list is one unit resistor:
//
//	network.Topology{
//	    1: {2, 3},
//	    2: {3},
//	    3: {},
//	}
//
// describes a triangle. N is the largest id that appears anywhere, as a key
// or as a neighbor, so Topology{1: {2}} is a single resistor between nodes 1
// and 2. An id below N that never appears is a node with no resistors.
//
// An edge is normally declared from one side only;
// declaring it again (from either side) adds a parallel resistor. That makes
// multigraphs expressible without a separate edge type.
//
// Structural rules checked by Validate:
//
//   - at least one node is declared
//   - every key and neighbor id is ≥ 1, and N ≤ MaxOrder
//   - no node lists itself (a self-loop resistor carries no current)
//
// Violations are reported as ErrMalformedTopology wrapping the specific
// cause (ErrEmptyTopology, ErrNodeOutOfRange, ErrSelfLoop).
//
// Besides validation the package offers read-only views used by assembly and
// diagnostics: NodeIDs, Edges, Incident, Components, Connected, CheckNode.
// Reference returns the canonical 15-node network.
package network
