package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target_name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	LookAhead  float64 `yaml:"look_ahead"`
}

// ClimberComponentSpec tunes the climbing controller and the falling body.
type ClimberComponentSpec struct {
	LeanDeadzone     float64 `yaml:"lean_deadzone"`
	TransitionFrames int     `yaml:"transition_frames"`
	CommitOn         string  `yaml:"commit_on"`
	Scheme           string  `yaml:"scheme"`
	AttachRadius     float64 `yaml:"attach_radius"`
	HandOffset       float64 `yaml:"hand_offset"`
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
}

// GripStaminaComponentSpec covers the stamina level, the drain rates and an
// optional tengo drain script.
type GripStaminaComponentSpec struct {
	Starting        float64 `yaml:"starting"`
	Max             float64 `yaml:"max"`
	RapidSpeed      float64 `yaml:"rapid_speed"`
	SlowSpeed       float64 `yaml:"slow_speed"`
	StaticPerSecond float64 `yaml:"static_per_second"`
	MoveModifier    float64 `yaml:"move_modifier"`
	JumpModifier    float64 `yaml:"jump_modifier"`
	DelayFrames     int     `yaml:"delay_frames"`
	Script          string  `yaml:"script"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	Clip   string  `yaml:"clip"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}
