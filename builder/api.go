// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the Draft under construction and the Build orchestrator.
//
// Design contract:
//   - One orchestrator: Build(cons...). Creates the draft, runs cons in order.
//   - Determinism: same constructors in the same order ⇒ identical topologies.
//   - Safety: never panic; return sentinel errors wrapped with method context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/effres/network"
)

// Draft accumulates nodes and resistors before they are frozen into a
// network.Topology. Node ids are allocated consecutively from 1.
type Draft struct {
	n     int
	edges []network.Edge
}

// Order returns the number of nodes allocated so far.
func (d *Draft) Order() int { return d.n }

// AddNodes allocates k new nodes and returns the id of the first one.
func (d *Draft) AddNodes(k int) int {
	base := d.n + 1
	d.n += k

	return base
}

// AddEdge declares one unit resistor between two allocated nodes. The edge is
// stored from its lower id so the resulting topology declares it once.
func (d *Draft) AddEdge(u, v int) error {
	if u < 1 || u > d.n || v < 1 || v > d.n {
		return fmt.Errorf("AddEdge(%d,%d): order %d: %w", u, v, d.n, ErrUnknownNode)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): self-loop: %w", u, v, ErrConstructFailed)
	}
	if u > v {
		u, v = v, u
	}
	d.edges = append(d.edges, network.Edge{U: u, V: v})

	return nil
}

// Constructor applies a deterministic mutation to the draft. Constructors
// validate their parameters first and return sentinel errors, never panic.
type Constructor func(d *Draft) error

// Build runs every constructor in order on a fresh Draft and returns the
// resulting topology. Constructor errors are wrapped with "Build: %w".
//
// Complexity: Σ cost of each constructor plus O(N + E) for validation.
func Build(cons ...Constructor) (network.Topology, error) {
	d := &Draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	t, err := network.FromEdges(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return t, nil
}
