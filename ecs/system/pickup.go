package system

import (
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

// PickupSystem restores stamina to climbers touching pickups.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World) {
	dt := frameDelta()
	var consumed []ecs.Entity

	ecs.ForEach3(w, component.ClimberComponent.Kind(), component.GripStaminaComponent.Kind(), component.TransformComponent.Kind(),
		func(climber ecs.Entity, c *component.Climber, gs *component.GripStamina, ct *component.Transform) {
			if c.State() == climb.Detached || gs.Drainer == nil {
				return
			}
			pos := ct.Vector()
			ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(),
				func(e ecs.Entity, p *component.Pickup, t *component.Transform) {
					if pos.Distance(t.Vector()) > p.Radius {
						return
					}
					if !p.Edible {
						gs.Level().Immediate(p.Amount * dt)
						return
					}
					for _, done := range consumed {
						if done == e {
							return
						}
					}
					gs.Drainer.Pickup(p.Amount)
					consumed = append(consumed, e)
					w.Events().Push(ecs.Event{Type: EventPickup, Data: PickupEvent{Entity: climber, Amount: p.Amount}})
					logger.Debug("pickup eaten", "amount", p.Amount)
				})
		})

	for _, e := range consumed {
		ecs.DestroyEntity(w, e)
	}
}
