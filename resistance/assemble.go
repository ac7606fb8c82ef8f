package resistance

import (
	"github.com/katalvlaran/effres/matrix"
	"github.com/katalvlaran/effres/network"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// System is the assembled conductance system A·V = B. Node id k maps to
// row and column k-1.
type System struct {
	N         int
	A         *matrix.Dense
	B         []float64
	Terminals Terminals
}

// row maps a node id to its matrix index.
func row(id int) int { return id - 1 }

// Assemble builds the conductance system for topo with the given terminals.
//
// Nodes are visited in ascending id order and every entry of a neighbor list
// is one unit resistor:
//   - a non-terminal row gets its degree on the diagonal and -1 per neighbor;
//     the symmetric contribution is mirrored into the neighbor's row when
//     the neighbor is not a terminal;
//   - a terminal row is the identity row (V_t = B_t); its resistors to
//     non-terminals are still stamped into the non-terminal rows.
//
// Entries accumulate, so repeated resistors between one pair act in parallel.
// B is zero except B[Source] = 1, which also pins V[Reference] = 0.
//
// Errors: ErrMalformedTopology, ErrBadTerminals.
// Complexity: O(N² + E) time and space for the dense A.
func Assemble(topo network.Topology, terms Terminals) (*System, error) {
	if err := topo.Validate(); err != nil {
		return nil, errors.Wrap(err, stageAssemble)
	}
	if err := terms.Validate(topo); err != nil {
		return nil, errors.Wrap(err, stageAssemble)
	}

	n := topo.Order()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, errors.Wrap(err, stageAssemble)
	}

	for _, id := range topo.NodeIDs() {
		if err = stampNode(a, topo[id], id, terms); err != nil {
			return nil, errors.Wrapf(err, "%s: node %d", stageAssemble, id)
		}
	}

	b := make([]float64, n)
	b[row(terms.Source)] = 1

	klog.V(2).Infof("%s: N=%d resistors=%d terminals=%v", stageAssemble, n, topo.EdgeCount(), terms)

	return &System{N: n, A: a, B: b, Terminals: terms}, nil
}

// stampNode applies the contributions of node id's declared resistors.
func stampNode(a *matrix.Dense, nbs []int, id int, terms Terminals) error {
	r := row(id)
	if terms.IsTerminal(id) {
		if err := a.Set(r, r, 1); err != nil {
			return err
		}
	} else if err := a.Inc(r, r, float64(len(nbs))); err != nil {
		return err
	}

	for _, nb := range nbs {
		c := row(nb)
		if !terms.IsTerminal(id) {
			if err := a.Inc(r, c, -1); err != nil {
				return err
			}
		}
		if terms.IsTerminal(nb) {
			continue
		}
		if err := a.Inc(c, c, 1); err != nil {
			return err
		}
		if err := a.Inc(c, r, -1); err != nil {
			return err
		}
	}

	return nil
}
