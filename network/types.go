// Package network: topology types and sentinel errors.
package network

import "errors"

// Sentinel errors for topology validation.
var (
	// ErrMalformedTopology is the umbrella error for every structural violation.
	// Callers branch on it with errors.Is; the specific cause is wrapped too.
	ErrMalformedTopology = errors.New("network: malformed topology")

	// ErrEmptyTopology indicates a topology without nodes.
	ErrEmptyTopology = errors.New("network: topology has no nodes")

	// ErrNodeOutOfRange indicates a node or neighbor id below 1, or a lookup
	// of an id that is not a node.
	ErrNodeOutOfRange = errors.New("network: node id out of range")

	// ErrSelfLoop indicates a node listed among its own neighbors.
	ErrSelfLoop = errors.New("network: self-loop")
)

// MaxOrder bounds N. Assembly allocates a dense N×N system, so a stray large
// neighbor id is rejected rather than allocated.
const MaxOrder = 4096

// Topology maps a node id to the ids of the nodes it is wired to through unit
// resistors. Treat it as immutable once built; use Clone to derive variants.
type Topology map[int][]int

// Edge is one unit resistor between nodes U and V, as declared in the
// topology (U is the declaring node).
type Edge struct {
	U, V int
}

// Other returns the endpoint opposite id, and false if id is not an endpoint.
func (e Edge) Other(id int) (int, bool) {
	switch id {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	}

	return 0, false
}
