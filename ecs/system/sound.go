package system

import (
	"github.com/milk9111/gripclimb/ecs"
	"github.com/milk9111/gripclimb/ecs/component"
)

// Cue is the sound played when a hand lands on a grip.
type Cue int

const (
	CueNone Cue = iota
	CueSmall
	CueMedium
	CueLarge
)

// Grip quality thresholds for each cue, inclusive.
const (
	SmallGripQuality  = 2
	MediumGripQuality = 5
	LargeGripQuality  = 8
)

var cueNames = [...]string{"", "grip_small", "grip_medium", "grip_large"}

// String is the clip name the cue plays.
func (c Cue) String() string {
	if c < CueNone || c > CueLarge {
		return ""
	}
	return cueNames[c]
}

// GripCue picks the cue for a grip of the given quality. The best grips are
// silent.
func GripCue(quality int) Cue {
	switch {
	case quality <= SmallGripQuality:
		return CueSmall
	case quality <= MediumGripQuality:
		return CueMedium
	case quality <= LargeGripQuality:
		return CueLarge
	}
	return CueNone
}

// SoundSystem queues a grip cue for each completed move and plays queued
// clips.
type SoundSystem struct{}

func NewSoundSystem() *SoundSystem {
	return &SoundSystem{}
}

func (s *SoundSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, a *component.Audio) {
		for _, m := range movesFor(w, EventMoveCompleted, e) {
			g := m.ConnectingGrip()
			if g == nil {
				continue
			}
			cue := GripCue(g.Quality())
			if cue == CueNone {
				continue
			}
			if i := a.Index(cue.String()); i >= 0 && i < len(a.Play) {
				a.Play[i] = true
			}
		}

		count := min(len(a.Play), len(a.Players))
		for i := 0; i < count; i++ {
			if !a.Play[i] {
				continue
			}
			if player := a.Players[i]; player != nil {
				if i < len(a.Volume) {
					player.SetVolume(a.Volume[i])
				}
				player.Pause()
				if err := player.Rewind(); err != nil {
					logger.Warn("rewind clip", "clip", a.Names[i], "err", err)
				}
				player.Play()
			}
			a.Play[i] = false
		}
	})
}
