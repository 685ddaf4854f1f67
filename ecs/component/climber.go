package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
)

// Climber is a body that can hang on the grip grid. Controller is built by
// the climbing system once a level is loaded and rebuilt when the level
// changes.
type Climber struct {
	Config     climb.ControllerConfig
	Controller *climb.Controller

	Spawn    cp.Vector
	Velocity cp.Vector
	// Gravity and MaxFallSpeed apply only while detached.
	Gravity      float64
	MaxFallSpeed float64
	// HandOffset places the hands up-left and up-right of the body center.
	HandOffset float64
}

// HandPoint returns where the given hand reaches from the body at pos.
func (c *Climber) HandPoint(pos cp.Vector, hand climb.Side) cp.Vector {
	dx := -c.HandOffset
	if hand == climb.SideRight {
		dx = c.HandOffset
	}
	return cp.Vector{X: pos.X + dx, Y: pos.Y + c.HandOffset}
}

func (c *Climber) State() climb.State {
	if c.Controller == nil {
		return climb.Detached
	}
	return c.Controller.State()
}

var ClimberComponent = NewComponent[Climber]()
