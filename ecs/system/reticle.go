package system

import (
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

type ReticleSystem struct{}

func NewReticleSystem() *ReticleSystem {
	return &ReticleSystem{}
}

func (s *ReticleSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.ReticlesComponent.Kind(), component.ClimberComponent.Kind(), component.InputComponent.Kind(),
		func(_ ecs.Entity, r *component.Reticles, c *component.Climber, in *component.Input) {
			*r = component.Reticles{}
			if c.State() != climb.Stationary {
				return
			}
			lean := climb.SnapCardinal(in.Intent.Lean, c.Config.LeanDeadzone)
			if lean == climb.None {
				return
			}
			ctrl := c.Controller
			geom := ctrl.Pathfinder().Geometry
			m := ctrl.Candidates().For(lean)
			r.Direction = lean
			for _, side := range [2]climb.Side{climb.SideLeft, climb.SideRight} {
				held := c.Config.SideButton(in.Intent, lean, side).Held
				r.Sides[side] = ReticleFor(geom, ctrl.Current(), lean, m, side, held)
			}
		})
}

// ReticleFor places the reticle for one hand. It sits on the grip that hand
// would take, or where that grip would be if it is missing.
func ReticleFor(geom climb.Geometry, current climb.Square, d climb.Direction, m climb.Move, side climb.Side, held bool) component.Reticle {
	r := component.Reticle{Jump: m.JumpRequired}

	exists := false
	if m.Valid() {
		mv := m.WithSide(side)
		if g := mv.ConnectingGrip(); g != nil {
			r.Position = g.Position()
			exists = true
		} else {
			r.Position, _ = mv.Target.CornerPosition(mv.ConnectingCorner(), geom)
		}
	} else {
		p, ok := current.CornerPosition(climb.LeadingCorner(d, side), geom)
		if !ok {
			return component.Reticle{}
		}
		r.Position = p.Add(d.Vector().Mult(geom.Spacing))
	}

	switch {
	case exists && held:
		r.State = component.ReticleHighlighted
	case exists:
		r.State = component.ReticleSelected
	case held:
		r.State = component.ReticleErrored
	default:
		r.State = component.ReticleGreyed
	}
	return r
}
