package system

import (
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

// StaminaSystem charges grip stamina for hanging on and for every committed
// move, and pulls the climber off the wall when it runs out.
type StaminaSystem struct{}

func NewStaminaSystem() *StaminaSystem {
	return &StaminaSystem{}
}

func (s *StaminaSystem) Update(w *ecs.World) {
	dt := frameDelta()
	ecs.ForEach2(w, component.GripStaminaComponent.Kind(), component.ClimberComponent.Kind(),
		func(e ecs.Entity, gs *component.GripStamina, c *component.Climber) {
			d := gs.Drainer
			if d == nil {
				return
			}

			if hasEntityEvent(w, EventRespawned, e) {
				d.Released()
				d.Level().Reset()
				gs.Exhausted = false
			} else if hasEntityEvent(w, EventDetached, e) {
				d.Released()
			}

			for _, m := range movesFor(w, EventMoveCommitted, e) {
				cost, err := d.MoveCommitted(m)
				if err != nil {
					logger.Error("price move", "dir", m.Direction, "err", err)
					continue
				}
				logger.Debug("move priced", "dir", m.Direction, "jump", m.JumpRequired, "cost", cost)
			}
			if len(movesFor(w, EventMoveCompleted, e)) > 0 {
				d.MoveCompleted()
			}

			climbing := c.State() != climb.Detached
			d.Tick(dt, climbing)

			if climbing && d.Level().Empty() && !gs.Exhausted {
				gs.Exhausted = true
				d.Released()
				c.Controller.Detach()
				c.Velocity.X, c.Velocity.Y = 0, 0
				pushEntityEvent(w, EventExhausted, e)
				pushEntityEvent(w, EventDetached, e)
				logger.Info("out of grip", "entity", e)
			}
		})
}
