package systems

import (
	"github.com/automoto/superbros/components"
	"github.com/automoto/superbros/config"
	"github.com/automoto/superbros/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera towards the player, keeping the view
// inside the current world. Changing worlds snaps the camera.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	level := GetLevel(e)
	if level == nil {
		return
	}
	world := level.Current()
	box := components.Object.Get(entry).Rect()

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// A world smaller than the screen pins to its top-left corner.
	targetX := gamemath.Clamp(box.X+box.W/2, screenWidth/2, world.Width()-screenWidth/2)
	targetY := gamemath.Clamp(box.Y+box.H/2, screenHeight/2, world.Height()-screenHeight/2)

	if camera.World != level.CurrentIndex {
		camera.World = level.CurrentIndex
		camera.Position.X = targetX
		camera.Position.Y = targetY
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.Smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.Smoothing
}
