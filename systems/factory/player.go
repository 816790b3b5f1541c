package factory

import (
	"github.com/automoto/superbros/archetypes"
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, world *components.WorldData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(world.SpawnX, world.SpawnY, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	world.Space.Add(obj)

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Speed:        cfg.Player.Speed,
		JumpStrength: cfg.Player.JumpStrength,
		Gravity:      cfg.Player.Gravity,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	return player
}

// ResizeObject changes an object's size and keeps its shape in step.
func ResizeObject(obj *resolv.Object, w, h float64) {
	obj.W = w
	obj.H = h
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	if obj.Space != nil {
		obj.Update()
	}
}
