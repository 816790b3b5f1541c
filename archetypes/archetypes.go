package archetypes

import (
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Foe,
		components.Object,
		components.Physics,
		components.Roster,
	)
	MiniBoss = newArchetype(
		tags.MiniBoss,
		components.Foe,
		components.Health,
		components.Object,
		components.Physics,
		components.Roster,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Foe,
		components.Health,
		components.Object,
		components.Physics,
		components.Roster,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
		components.Roster,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
