package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
)

type ReticleState int

const (
	ReticleHidden ReticleState = iota
	// ReticleHighlighted: the grip exists and its button is held.
	ReticleHighlighted
	// ReticleSelected: the grip exists, button up.
	ReticleSelected
	// ReticleGreyed: no grip, button up.
	ReticleGreyed
	// ReticleErrored: no grip, button held.
	ReticleErrored
)

var reticleStateNames = [...]string{"hidden", "highlighted", "selected", "greyed", "errored"}

func (s ReticleState) String() string {
	if s < 0 || int(s) >= len(reticleStateNames) {
		return "unknown"
	}
	return reticleStateNames[s]
}

type Reticle struct {
	State    ReticleState
	Position cp.Vector
	Jump     bool
}

// Reticles marks the two grips the climber could reach for in the lean
// direction, indexed by climb.Side.
type Reticles struct {
	Direction climb.Direction
	Sides     [2]Reticle
}

var ReticlesComponent = NewComponent[Reticles]()
