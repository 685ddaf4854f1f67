package component

// Camera follows a named target. Zoom is screen pixels per world unit.
type Camera struct {
	TargetName string
	Zoom       float64
	Smoothness float64
	LookAhead  float64
}

var CameraComponent = NewComponent[Camera]()
