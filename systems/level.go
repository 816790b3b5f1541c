package systems

import (
	"github.com/automoto/superbros/components"
	"github.com/automoto/superbros/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the world manager singleton, or nil before the level
// has been created.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// inCurrentWorld reports whether a rostered entity belongs to the active world.
func inCurrentWorld(level *components.LevelData, entry *donburi.Entry) bool {
	return components.Roster.Get(entry).World == level.CurrentIndex
}

func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// respawnPlayer puts the player back at the world's restart point at rest.
func respawnPlayer(world *components.WorldData, obj *components.ObjectData, physics *components.PhysicsData) {
	obj.MoveTo(world.SpawnX, world.SpawnY)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = false
}

// removeFromSpace takes an inert entity out of its world's space.
func removeFromSpace(obj *components.ObjectData) {
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
