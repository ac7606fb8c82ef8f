package network

import (
	"fmt"
	"maps"
	"slices"
)

// malformed wraps cause under ErrMalformedTopology with context, so both the
// umbrella and the specific sentinel match errors.Is.
func malformed(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedTopology, fmt.Sprintf(format, args...), cause)
}

// Order returns N, the largest node id declared as a key or listed as a
// neighbor. Ids below N that appear nowhere are nodes without resistors.
// Complexity: O(N + E).
func (t Topology) Order() int {
	var n int
	for id, nbs := range t {
		n = max(n, id)
		for _, nb := range nbs {
			n = max(n, nb)
		}
	}

	return n
}

// Has reports whether id is a node of the topology, i.e. 1 ≤ id ≤ Order().
func (t Topology) Has(id int) bool {
	return id >= 1 && id <= t.Order()
}

// CheckNode returns ErrMalformedTopology wrapping ErrNodeOutOfRange when id
// is not a node of t.
func (t Topology) CheckNode(id int) error {
	if !t.Has(id) {
		return malformed(ErrNodeOutOfRange, "node %d not in 1..%d", id, t.Order())
	}

	return nil
}

// Validate checks the structural rules documented on the package.
// Complexity: O(N + E).
func (t Topology) Validate() error {
	if len(t) == 0 {
		return malformed(ErrEmptyTopology, "no nodes declared")
	}
	for _, id := range slices.Sorted(maps.Keys(t)) {
		if id < 1 {
			return malformed(ErrNodeOutOfRange, "node id %d below 1", id)
		}
		for _, nb := range t[id] {
			if nb < 1 {
				return malformed(ErrNodeOutOfRange, "node %d lists neighbor %d below 1", id, nb)
			}
			if nb == id {
				return malformed(ErrSelfLoop, "node %d lists itself", id)
			}
		}
	}

	if n := t.Order(); n > MaxOrder {
		return malformed(ErrNodeOutOfRange, "N=%d exceeds %d", n, MaxOrder)
	}

	return nil
}

// NodeIDs returns 1..Order() in ascending order, including ids that only
// appear as neighbors.
func (t Topology) NodeIDs() []int {
	n := t.Order()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}

	return ids
}

// Edges returns every resistor once, in declaration order: nodes ascending,
// neighbors as listed.
func (t Topology) Edges() []Edge {
	var out []Edge
	for _, id := range t.NodeIDs() {
		for _, nb := range t[id] {
			out = append(out, Edge{U: id, V: nb})
		}
	}

	return out
}

// EdgeCount returns the number of resistors.
func (t Topology) EdgeCount() int {
	var c int
	for _, nbs := range t {
		c += len(nbs)
	}

	return c
}

// Incident returns, for every resistor touching id, the node at its other
// end. Parallel resistors appear once each. Order: declaration order of
// Edges().
func (t Topology) Incident(id int) []int {
	var out []int
	for _, e := range t.Edges() {
		if other, ok := e.Other(id); ok {
			out = append(out, other)
		}
	}

	return out
}

// Clone returns a deep copy.
func (t Topology) Clone() Topology {
	out := make(Topology, len(t))
	for id, nbs := range t {
		out[id] = slices.Clone(nbs)
	}

	return out
}

// FromEdges builds an n-node topology declaring each edge from its U side.
// Edge endpoints are validated like any other topology.
func FromEdges(n int, edges []Edge) (Topology, error) {
	t := make(Topology, n)
	for id := 1; id <= n; id++ {
		t[id] = []int{}
	}
	for _, e := range edges {
		for _, id := range []int{e.U, e.V} {
			if id < 1 || id > n {
				return nil, malformed(ErrNodeOutOfRange, "edge %d-%d: node %d not in 1..%d", e.U, e.V, id, n)
			}
		}
		t[e.U] = append(t[e.U], e.V)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}
