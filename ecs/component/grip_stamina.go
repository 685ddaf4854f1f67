package component

import "github.com/milk9111/gripclimb/stamina"

type GripStamina struct {
	Drainer *stamina.Drainer
	// Exhausted is set when the level hit zero and cleared on respawn.
	Exhausted bool
}

func (g *GripStamina) Level() *stamina.Level {
	if g.Drainer == nil {
		return nil
	}
	return g.Drainer.Level()
}

var GripStaminaComponent = NewComponent[GripStamina]()
