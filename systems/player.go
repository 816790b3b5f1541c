package systems

import (
	"github.com/automoto/superbros/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies input, gravity and tile collision to the player.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	stepPlayer(
		GetInput(ecs),
		level.Current(),
		components.Player.Get(entry),
		components.Physics.Get(entry),
		components.Object.Get(entry),
	)
}

func stepPlayer(input components.InputState, world *components.WorldData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	// Left is checked first; right overrides when both are held.
	physics.SpeedX = 0
	if input.Left {
		physics.SpeedX = -player.Speed
	}
	if input.Right {
		physics.SpeedX = player.Speed
	}

	if input.Up && physics.OnGround {
		physics.SpeedY = player.JumpStrength
		physics.OnGround = false
	}

	physics.SpeedY += player.Gravity

	box, hitX := ResolveX(world, obj.Rect(), physics.SpeedX)
	if hitX {
		physics.SpeedX = 0
	}

	dy := physics.SpeedY
	box, hitY := ResolveY(world, box, dy)
	if hitY {
		physics.SpeedY = 0
	}
	physics.OnGround = hitY && dy > 0

	if box.X < 0 {
		box.X = 0
	}
	obj.MoveTo(box.X, box.Y)

	switch {
	case box.X > world.Width()-box.W:
		player.AdvanceRequested = true
	case box.Y > world.Height():
		respawnPlayer(world, obj, physics)
	}
}
