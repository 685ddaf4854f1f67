package system

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

var logger = log.WithPrefix("climb")

// frameDelta is the fixed step of one Update in seconds.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}

func levelRuntime(w *ecs.World) *component.LevelRuntime {
	e, ok := w.First(component.LevelRuntimeComponent.Kind().ID())
	if !ok {
		return nil
	}
	rt, _ := ecs.Get(w, e, component.LevelRuntimeComponent.Kind())
	return rt
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	switch name {
	case "player", "climber":
		if e, ok := w.First(component.PlayerTagComponent.Kind().ID()); ok {
			return e
		}
	}
	return 0
}
