package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/gripclimb/ecs"
)

const CameraPrefab = "camera.yaml"

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, CameraPrefab)
}

func NewCameraAt(w *ecs.World, p cp.Vector) (ecs.Entity, error) {
	camera, err := NewCamera(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, camera, p); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
