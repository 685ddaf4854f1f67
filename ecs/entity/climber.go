package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
	"github.com/milk9111/gripclimb/prefabs"
	"github.com/milk9111/gripclimb/stamina"
)

const ClimberPrefab = "climber.yaml"

func NewClimber(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, ClimberPrefab)
}

// NewClimberAt builds the climber prefab with its spawn point at p.
func NewClimberAt(w *ecs.World, p cp.Vector) (ecs.Entity, error) {
	e, err := NewClimber(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, e, p); err != nil {
		return 0, fmt.Errorf("climber: override transform: %w", err)
	}
	if c, ok := ecs.Get(w, e, component.ClimberComponent.Kind()); ok {
		c.Spawn = p
	}
	return e, nil
}

func addClimber(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ClimberComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode climber spec: %w", err)
	}

	cfg := climb.DefaultControllerConfig()
	if spec.LeanDeadzone > 0 {
		cfg.LeanDeadzone = spec.LeanDeadzone
	}
	if spec.TransitionFrames > 0 {
		cfg.TransitionFrames = spec.TransitionFrames
	}
	if spec.AttachRadius > 0 {
		cfg.AttachRadius = spec.AttachRadius
	}
	if cfg.CommitOn, err = climb.ParseCommitEdge(spec.CommitOn); err != nil {
		return err
	}
	if cfg.Scheme, err = climb.ParseScheme(spec.Scheme); err != nil {
		return err
	}

	c := &component.Climber{
		Config:       cfg,
		Gravity:      spec.Gravity,
		MaxFallSpeed: spec.MaxFallSpeed,
		HandOffset:   spec.HandOffset,
	}
	if c.HandOffset <= 0 {
		c.HandOffset = climb.DefaultGeometry.Spacing / 2
	}
	if c.Gravity == 0 {
		c.Gravity = 9.8
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		c.Spawn = t.Vector()
	}
	return ecs.Add(w, e, component.ClimberComponent.Kind(), c)
}

func addGripStamina(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.GripStaminaComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode grip stamina spec: %w", err)
	}

	levelCfg := stamina.DefaultConfig()
	if spec.Max > 0 {
		levelCfg.Max = spec.Max
		levelCfg.Starting = spec.Max
	}
	if spec.Starting > 0 {
		levelCfg.Starting = spec.Starting
	}
	if spec.RapidSpeed > 0 {
		levelCfg.RapidSpeed = spec.RapidSpeed
	}
	if spec.SlowSpeed > 0 {
		levelCfg.SlowSpeed = spec.SlowSpeed
	}

	drainCfg := stamina.DefaultDrainConfig()
	if spec.StaticPerSecond > 0 {
		drainCfg.StaticPerSecond = spec.StaticPerSecond
	}
	if spec.MoveModifier > 0 {
		drainCfg.MoveModifier = spec.MoveModifier
	}
	if spec.JumpModifier > 0 {
		drainCfg.JumpModifier = spec.JumpModifier
	}
	if spec.DelayFrames > 0 {
		drainCfg.DelayFrames = spec.DelayFrames
	}

	var policy stamina.Policy
	if spec.Script != "" {
		src, err := prefabs.LoadScript(spec.Script)
		if err != nil {
			return fmt.Errorf("load drain script %q: %w", spec.Script, err)
		}
		if policy, err = stamina.NewScriptPolicy(src); err != nil {
			return err
		}
	}

	return ecs.Add(w, e, component.GripStaminaComponent.Kind(), &component.GripStamina{
		Drainer: stamina.NewDrainer(stamina.NewLevel(levelCfg), drainCfg, policy),
	})
}
