package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named clips. Systems set Play[i] and the sound system starts
// the clip on its next update.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
}

// Index returns the clip slot for name, or -1.
func (a *Audio) Index(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
