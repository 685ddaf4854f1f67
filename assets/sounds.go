// Package assets synthesises the game's sound clips.
package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Clip describes a short decaying tone.
type Clip struct {
	Freq     float64
	Duration time.Duration
	Gain     float64
}

// Grip cue clips, from the thinnest grip to the biggest jug.
var (
	SmallGripClip  = Clip{Freq: 1320, Duration: 40 * time.Millisecond, Gain: 0.35}
	MediumGripClip = Clip{Freq: 880, Duration: 60 * time.Millisecond, Gain: 0.45}
	LargeGripClip  = Clip{Freq: 440, Duration: 90 * time.Millisecond, Gain: 0.55}
)

var clips = map[string]Clip{
	"grip_small":  SmallGripClip,
	"grip_medium": MediumGripClip,
	"grip_large":  LargeGripClip,
}

// LookupClip returns a named clip.
func LookupClip(name string) (Clip, error) {
	c, ok := clips[name]
	if !ok {
		return Clip{}, fmt.Errorf("assets: unknown clip %q", name)
	}
	return c, nil
}

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// PCM renders the clip as 16-bit little-endian stereo, Ebiten's native
// format.
func (c Clip) PCM() []byte {
	n := int(c.Duration.Seconds() * SampleRate)
	if n <= 0 {
		return nil
	}
	gain := math.Max(0, math.Min(1, c.Gain))
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-5 * float64(i) / float64(n))
		v := int16(math.Sin(2*math.Pi*c.Freq*t) * env * gain * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}

// Player wraps the clip in a player on the shared audio context.
func (c Clip) Player() *audio.Player {
	return context().NewPlayerFromBytes(c.PCM())
}
