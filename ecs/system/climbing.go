package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

// ClimbingSystem moves climbers: across the grid through their controller
// while attached, under gravity while detached.
type ClimbingSystem struct{}

func NewClimbingSystem() *ClimbingSystem {
	return &ClimbingSystem{}
}

func (s *ClimbingSystem) Update(w *ecs.World) {
	rt := levelRuntime(w)
	if rt == nil || rt.Pathfinder == nil {
		return
	}
	rt.Frames++
	dt := frameDelta()

	ecs.ForEach3(w, component.ClimberComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, c *component.Climber, in *component.Input, t *component.Transform) {
			if c.Controller == nil || c.Controller.Pathfinder() != rt.Pathfinder {
				c.Controller = climb.NewController(rt.Pathfinder, c.Config, eventObserver{queue: w.Events(), entity: e})
				s.respawn(w, e, c, t)
				return
			}
			if in.Restart {
				s.respawn(w, e, c, t)
				return
			}

			ctrl := c.Controller
			if ctrl.State() == climb.Detached {
				s.fall(w, e, c, in, t, rt, dt)
				return
			}

			ctrl.Update(in.Intent)
			if ctrl.State() == climb.Detached {
				c.Velocity = cp.Vector{}
				pushEntityEvent(w, EventDetached, e)
				logger.Debug("dismounted", "entity", e)
			}
			t.Set(ctrl.Position())
			s.checkGoal(w, e, c, rt)
		})
}

func (s *ClimbingSystem) fall(w *ecs.World, e ecs.Entity, c *component.Climber, in *component.Input, t *component.Transform, rt *component.LevelRuntime, dt float64) {
	ctrl := c.Controller
	pos := t.Vector()

	if !exhausted(w, e) {
		for _, hand := range [2]climb.Side{climb.SideLeft, climb.SideRight} {
			if !c.Config.SideButton(in.Intent, climb.Up, hand).Pressed {
				continue
			}
			if s.attach(w, e, c, t, pos, hand) {
				return
			}
		}
	}

	c.Velocity.Y -= c.Gravity * dt
	if c.MaxFallSpeed > 0 && c.Velocity.Y < -c.MaxFallSpeed {
		c.Velocity.Y = -c.MaxFallSpeed
	}
	pos = pos.Add(c.Velocity.Mult(dt))
	ctrl.SetPosition(pos)
	t.Set(pos)

	if rt.Level != nil && pos.Y < rt.Level.KillY() {
		logger.Info("fell off the wall", "entity", e, "y", pos.Y)
		s.respawn(w, e, c, t)
	}
}

func (s *ClimbingSystem) attach(w *ecs.World, e ecs.Entity, c *component.Climber, t *component.Transform, pos cp.Vector, hand climb.Side) bool {
	if !c.Controller.Attach(c.HandPoint(pos, hand), hand) {
		return false
	}
	c.Velocity = cp.Vector{}
	t.Set(c.Controller.Position())
	pushEntityEvent(w, EventAttached, e)
	logger.Debug("attached", "entity", e, "hand", hand, "square", c.Controller.Current())
	return true
}

// respawn puts the climber back on the spawn point and grabs the wall with
// the left hand if a grip is in reach.
func (s *ClimbingSystem) respawn(w *ecs.World, e ecs.Entity, c *component.Climber, t *component.Transform) {
	c.Controller.Detach()
	c.Velocity = cp.Vector{}
	c.Controller.SetPosition(c.Spawn)
	t.Set(c.Spawn)
	pushEntityEvent(w, EventRespawned, e)
	if !s.attach(w, e, c, t, c.Spawn, climb.SideLeft) {
		logger.Warn("no grip in reach of spawn", "spawn", c.Spawn)
	}
}

func (s *ClimbingSystem) checkGoal(w *ecs.World, e ecs.Entity, c *component.Climber, rt *component.LevelRuntime) {
	lvl := rt.Level
	if rt.Completed || lvl == nil || !lvl.HasGoal || c.State() != climb.Stationary {
		return
	}
	center, ok := c.Controller.Current().Center(lvl.Geometry)
	if !ok || center.Distance(lvl.Goal) >= lvl.Geometry.HalfWidth {
		return
	}
	rt.Completed = true
	pushEntityEvent(w, EventGoalReached, e)
	logger.Info("goal reached", "level", lvl.Name, "frames", rt.Frames)
}

func exhausted(w *ecs.World, e ecs.Entity) bool {
	gs, ok := ecs.Get(w, e, component.GripStaminaComponent.Kind())
	return ok && gs.Exhausted
}
