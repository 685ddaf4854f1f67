package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/common"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

// snapDistance is how far the target may jump, in world units, before the
// camera cuts instead of easing.
const snapDistance = 3.0

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera transform toward its target, leading slightly in
// the direction the target leans.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		cs.camEntity = 0
		if camEntity, ok := w.First(component.CameraComponent.Kind().ID()); ok {
			cs.camEntity = camEntity
		}
	}
	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, camComp.TargetName)
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	desired := targetTransform.Vector()
	if in, ok := ecs.Get(w, cs.targetEntity, component.InputComponent.Kind()); ok && camComp.LookAhead != 0 {
		if lean := climb.SnapCardinal(in.Intent.Lean, 0.5); lean != climb.None {
			desired = desired.Add(lean.Vector().Mult(camComp.LookAhead))
		}
	}

	current := camTransform.Vector()
	if current.Distance(desired) > snapDistance || camComp.Smoothness <= 0 {
		camTransform.Set(desired)
		return
	}
	camTransform.Set(common.LerpVector(current, desired, common.Clamp(camComp.Smoothness, 0, 1)))
}

// WorldToScreen maps a world point to screen pixels for a camera centred at
// cam on a screen of the given size. World y points up.
func WorldToScreen(p, cam cp.Vector, zoom float64, width, height int) (float64, float64) {
	x := (p.X-cam.X)*zoom + float64(width)/2
	y := float64(height)/2 - (p.Y-cam.Y)*zoom
	return x, y
}
