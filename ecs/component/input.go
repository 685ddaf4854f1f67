package component

import "github.com/milk9111/gripclimb/climb"

// Input stores per-frame input state for an entity.
type Input struct {
	Intent  climb.Intent
	Pause   bool
	Restart bool
}

var InputComponent = NewComponent[Input]()
