package component

import (
	"github.com/milk9111/gripclimb/climb"
	"github.com/milk9111/gripclimb/levels"
)

// LevelRuntime is the singleton describing the loaded level.
type LevelRuntime struct {
	Level      *levels.Level
	Pathfinder *climb.Pathfinder
	SessionID  string
	Completed  bool
	// Frames counts updates since the level was loaded.
	Frames int
}

var LevelRuntimeComponent = NewComponent[LevelRuntime]()
