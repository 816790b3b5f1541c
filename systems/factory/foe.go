package factory

import (
	"fmt"

	"github.com/automoto/superbros/archetypes"
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/automoto/superbros/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var foeVariants = map[string]components.FoeVariant{
	cfg.FoeGoomba:   components.VariantEnemy,
	cfg.FoeTurtle:   components.VariantEnemy,
	cfg.FoeMiniBoss: components.VariantMiniBoss,
	cfg.FoeBoss:     components.VariantBoss,
}

// CreateFoe spawns an enemy, mini-boss or boss owned by world index
// worldIndex. Foes start patrolling to the right.
func CreateFoe(ecs *ecs.ECS, worldIndex int, world *components.WorldData, spawn leveldata.Spawn) (*donburi.Entry, error) {
	foeType, ok := cfg.Foes[spawn.Kind]
	if !ok {
		return nil, fmt.Errorf("foe %q: %w", spawn.Kind, leveldata.ErrUnknownKind)
	}
	variant := foeVariants[spawn.Kind]

	var foe *donburi.Entry
	switch variant {
	case components.VariantMiniBoss:
		foe = archetypes.MiniBoss.Spawn(ecs)
	case components.VariantBoss:
		foe = archetypes.Boss.Spawn(ecs)
	default:
		foe = archetypes.Enemy.Spawn(ecs)
	}

	obj := resolv.NewObject(spawn.X, spawn.Y, foeType.Width, foeType.Height, tags.ResolvFoe, spawn.Kind)
	obj.SetShape(resolv.NewRectangle(0, 0, foeType.Width, foeType.Height))
	obj.Data = foe
	world.Space.Add(obj)

	components.Object.SetValue(foe, components.ObjectData{Object: obj})
	components.Foe.SetValue(foe, components.FoeData{
		Variant: variant,
		Kind:    spawn.Kind,
		Alive:   true,
	})
	components.Physics.SetValue(foe, components.PhysicsData{SpeedX: foeType.Speed})
	components.Roster.SetValue(foe, components.RosterData{World: worldIndex})
	if foe.HasComponent(components.Health) {
		components.Health.SetValue(foe, components.HealthData{
			Current: foeType.Health,
			Max:     foeType.Health,
		})
	}

	return foe, nil
}
