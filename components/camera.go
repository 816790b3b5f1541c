package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point shown at the center of the screen.
type CameraData struct {
	Position math.Vec2
	// World is the index the camera last followed; a change snaps the
	// camera instead of gliding across worlds.
	World int
}

var Camera = donburi.NewComponentType[CameraData]()
