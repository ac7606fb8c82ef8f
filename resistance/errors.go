package resistance

import (
	"github.com/katalvlaran/effres/network"
	"github.com/pkg/errors"
)

// Sentinel errors, one per failure class. Stage context ("assemble: …",
// "solve: …", "derive: …") is attached on top; branch with errors.Is.
var (
	// ErrMalformedTopology is network.ErrMalformedTopology, re-exported so
	// callers of this package need a single import. Terminals or taps that
	// are not nodes of the topology report it too.
	ErrMalformedTopology = network.ErrMalformedTopology

	// ErrBadTerminals indicates a reference and source that are the same node.
	ErrBadTerminals = errors.New("resistance: invalid terminals")

	// ErrSingularSystem indicates the conductance system has no unique
	// solution: a floating sub-network or terminals in different components.
	ErrSingularSystem = errors.New("resistance: singular conductance system")

	// ErrOpenCircuit indicates no current flows through the taps, so the
	// resistance would be infinite or undefined.
	ErrOpenCircuit = errors.New("resistance: open circuit between terminals")
)

// Stage tags used as error prefixes and log keys.
const (
	stageAssemble = "assemble"
	stageSolve    = "solve"
	stageDerive   = "derive"
)
