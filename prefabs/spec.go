package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds window and level-order settings for the game host.
type GameSpec struct {
	Title        string   `yaml:"title"`
	ScreenWidth  int      `yaml:"screen_width"`
	ScreenHeight int      `yaml:"screen_height"`
	Levels       []string `yaml:"levels"`
}

func LoadGameSpec() (GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return spec, err
	}
	if spec.Title == "" {
		spec.Title = "gripclimb"
	}
	if spec.ScreenWidth <= 0 {
		spec.ScreenWidth = 960
	}
	if spec.ScreenHeight <= 0 {
		spec.ScreenHeight = 640
	}
	return spec, nil
}
