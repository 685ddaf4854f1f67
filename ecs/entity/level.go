package entity

import (
	"fmt"

	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
	"github.com/milk9111/gripclimb/levels"
)

// IndexKind selects the grip registry backing a level's pathfinder.
type IndexKind int

const (
	GridIndex IndexKind = iota
	SpaceIndex
)

func ParseIndexKind(s string) (IndexKind, error) {
	switch s {
	case "", "grid":
		return GridIndex, nil
	case "space":
		return SpaceIndex, nil
	}
	return GridIndex, fmt.Errorf("entity: unknown index %q", s)
}

// NewPathfinder builds a pathfinder over lvl's grips with the chosen index.
func NewPathfinder(lvl *levels.Level, kind IndexKind) (*climb.Pathfinder, error) {
	var reg climb.Registry = lvl.Index()
	if kind == SpaceIndex {
		space, err := lvl.SpaceIndex()
		if err != nil {
			return nil, fmt.Errorf("level %s: space index: %w", lvl.Name, err)
		}
		reg = space
	}
	return climb.NewPathfinder(lvl.Geometry, reg), nil
}

// LoadLevelToWorld creates the level runtime, the pickups, the climber at
// spawn and the camera. It returns the climber.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, kind IndexKind) (ecs.Entity, error) {
	pf, err := NewPathfinder(lvl, kind)
	if err != nil {
		return 0, err
	}
	runtime := ecs.CreateEntity(w)
	if err := ecs.Add(w, runtime, component.LevelRuntimeComponent.Kind(), &component.LevelRuntime{
		Level:      lvl,
		Pathfinder: pf,
	}); err != nil {
		return 0, fmt.Errorf("level %s: add runtime: %w", lvl.Name, err)
	}

	if err := spawnPickups(w, lvl); err != nil {
		return 0, err
	}

	player, err := NewClimberAt(w, lvl.Spawn)
	if err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	if _, err := NewCameraAt(w, lvl.Spawn); err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	return player, nil
}

// ReloadLevel swaps the loaded level in place. Pickups are recreated and
// climbers get the new spawn; the climbing system respawns them once it sees
// the new pathfinder.
func ReloadLevel(w *ecs.World, lvl *levels.Level, kind IndexKind) error {
	e, ok := w.First(component.LevelRuntimeComponent.Kind().ID())
	if !ok {
		_, err := LoadLevelToWorld(w, lvl, kind)
		return err
	}
	rt, _ := ecs.Get(w, e, component.LevelRuntimeComponent.Kind())

	pf, err := NewPathfinder(lvl, kind)
	if err != nil {
		return err
	}
	*rt = component.LevelRuntime{Level: lvl, Pathfinder: pf}

	var stale []ecs.Entity
	ecs.ForEach(w, component.PickupComponent.Kind(), func(p ecs.Entity, _ *component.Pickup) {
		stale = append(stale, p)
	})
	for _, p := range stale {
		ecs.DestroyEntity(w, p)
	}
	if err := spawnPickups(w, lvl); err != nil {
		return err
	}

	ecs.ForEach(w, component.ClimberComponent.Kind(), func(_ ecs.Entity, c *component.Climber) {
		c.Spawn = lvl.Spawn
	})
	return nil
}

func spawnPickups(w *ecs.World, lvl *levels.Level) error {
	for i, spec := range lvl.Pickups {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}); err != nil {
			return fmt.Errorf("level %s: pickup %d: %w", lvl.Name, i, err)
		}
		if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
			Amount:   spec.Amount,
			Edible:   spec.Edible,
			Radius:   spec.Radius,
			BobPhase: float64(i) * 0.7,
		}); err != nil {
			return fmt.Errorf("level %s: pickup %d: %w", lvl.Name, i, err)
		}
	}
	return nil
}
