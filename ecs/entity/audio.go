package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/gripclimb/assets"
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
	"github.com/milk9111/gripclimb/prefabs"
)

// AudioEnabled controls whether audio players are created. Headless tools
// and tests turn it off; the clip slots are still built.
var AudioEnabled = true

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AudioComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponent(spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

func buildAudioComponent(clips []prefabs.AudioClipSpec) (*component.Audio, error) {
	n := len(clips)
	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, spec := range clips {
		name := spec.Clip
		if name == "" {
			name = spec.Name
		}
		clip, err := assets.LookupClip(name)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, spec.Name, err)
		}
		var player *audio.Player
		if AudioEnabled {
			player = clip.Player()
		}
		vol := spec.Volume
		if vol == 0 {
			vol = 1
		}
		names = append(names, spec.Name)
		players = append(players, player)
		volume = append(volume, vol)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
	}, nil
}
