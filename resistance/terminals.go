package resistance

import (
	"fmt"

	"github.com/katalvlaran/effres/network"
	"github.com/pkg/errors"
)

// Terminals designates the two nodes the resistance is measured between.
// Reference is held at 0 V; Source carries the unit excitation (1 V).
type Terminals struct {
	Reference int
	Source    int
}

// Canonical returns the terminals of the reference network: nodes 1 and 5.
func Canonical() Terminals { return Terminals{Reference: 1, Source: 5} }

// Swap exchanges the roles of the two terminals.
func (t Terminals) Swap() Terminals {
	return Terminals{Reference: t.Source, Source: t.Reference}
}

// IsTerminal reports whether id is either terminal.
func (t Terminals) IsTerminal(id int) bool { return id == t.Reference || id == t.Source }

// String renders "ref→src".
func (t Terminals) String() string { return fmt.Sprintf("%d→%d", t.Reference, t.Source) }

// Validate checks the terminals against topo. A terminal that is not a node
// matches ErrMalformedTopology; identical terminals match ErrBadTerminals.
func (t Terminals) Validate(topo network.Topology) error {
	for _, id := range []int{t.Reference, t.Source} {
		if err := topo.CheckNode(id); err != nil {
			return errors.Wrapf(err, "terminal %d", id)
		}
	}
	if t.Reference == t.Source {
		return errors.Wrapf(ErrBadTerminals, "reference and source are both node %d", t.Reference)
	}

	return nil
}

// Taps names the nodes whose potentials are summed into the injected test
// current when deriving R. They describe where the unit current enters the
// network relative to the reference terminal.
//
// A nil or empty Taps selects every resistor incident to the reference
// terminal (Incident), which is the full Kirchhoff current and is symmetric
// under Swap. CanonicalTaps is the pick used by the reference program.
type Taps []int

// CanonicalTaps returns the taps of the reference network: nodes 3, 4 and 9.
func CanonicalTaps() Taps { return Taps{3, 4, 9} }

// resolve returns the explicit taps, or the reference terminal's incident
// nodes when none are given.
func (tp Taps) resolve(topo network.Topology, terms Terminals) ([]int, error) {
	if len(tp) == 0 {
		return topo.Incident(terms.Reference), nil
	}
	for _, id := range tp {
		if err := topo.CheckNode(id); err != nil {
			return nil, errors.Wrapf(err, "tap %d", id)
		}
	}

	return append([]int(nil), tp...), nil
}
