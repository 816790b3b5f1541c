package systems

import (
	"log"

	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type patrolRule func(world *components.WorldData, obj *components.ObjectData, physics *components.PhysicsData)

type stompRule func(ecs *ecs.ECS, foe *donburi.Entry)

var patrolRules = map[components.FoeVariant]patrolRule{
	components.VariantEnemy:    patrolTiles,
	components.VariantMiniBoss: patrolTiles,
	components.VariantBoss:     patrolBounds,
}

var stompRules = map[components.FoeVariant]stompRule{
	components.VariantEnemy:    stompEnemy,
	components.VariantMiniBoss: stompArmored,
	components.VariantBoss:     stompArmored,
}

var foeQueries = map[components.FoeVariant]*donburi.Query{
	components.VariantEnemy:    newFoeQuery(components.VariantEnemy),
	components.VariantMiniBoss: newFoeQuery(components.VariantMiniBoss),
	components.VariantBoss:     newFoeQuery(components.VariantBoss),
}

func newFoeQuery(variant components.FoeVariant) *donburi.Query {
	var tag donburi.IComponentType
	switch variant {
	case components.VariantMiniBoss:
		tag = tags.MiniBoss
	case components.VariantBoss:
		tag = tags.Boss
	default:
		tag = tags.Enemy
	}
	return donburi.NewQuery(filter.Contains(tag, components.Foe, components.Object, components.Physics, components.Roster))
}

func UpdateEnemies(ecs *ecs.ECS)    { updateFoes(ecs, components.VariantEnemy) }
func UpdateMiniBosses(ecs *ecs.ECS) { updateFoes(ecs, components.VariantMiniBoss) }
func UpdateBoss(ecs *ecs.ECS)       { updateFoes(ecs, components.VariantBoss) }

func updateFoes(ecs *ecs.ECS, variant components.FoeVariant) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}
	world := level.Current()

	foeQueries[variant].Each(ecs.World, func(e *donburi.Entry) {
		if !inCurrentWorld(level, e) {
			return
		}
		foe := components.Foe.Get(e)
		if !foe.Alive {
			return
		}

		obj := components.Object.Get(e)
		patrolRules[foe.Variant](world, obj, components.Physics.Get(e))

		for _, player := range touching(world.Space, obj.Rect(), tags.ResolvPlayer) {
			touchPlayer(ecs, world, e, player)
		}
	})
}

// patrolTiles walks horizontally and turns around on hitting a solid tile.
// Snapping out of the tile keeps the foe from sticking inside it.
func patrolTiles(world *components.WorldData, obj *components.ObjectData, physics *components.PhysicsData) {
	box, hit := ResolveX(world, obj.Rect(), physics.SpeedX)
	if hit {
		physics.SpeedX = -physics.SpeedX
	}
	obj.MoveTo(box.X, box.Y)
}

// patrolBounds ignores tiles and bounces off the world's left and right edges.
func patrolBounds(world *components.WorldData, obj *components.ObjectData, physics *components.PhysicsData) {
	x := obj.X + physics.SpeedX
	if x < 0 || x+obj.W > world.Width() {
		physics.SpeedX = -physics.SpeedX
	}
	obj.MoveTo(x, obj.Y)
}

// touchPlayer applies the contact rule to a player overlapping foe. Any
// downward player velocity counts as a stomp, even when the player is
// beside the foe rather than above it.
func touchPlayer(ecs *ecs.ECS, world *components.WorldData, foe, player *donburi.Entry) {
	if !player.HasComponent(components.Player) || !components.Foe.Get(foe).Alive {
		return
	}
	playerData := components.Player.Get(player)
	physics := components.Physics.Get(player)

	if physics.SpeedY > 0 {
		stompRules[components.Foe.Get(foe).Variant](ecs, foe)
		physics.SpeedY = playerData.JumpStrength / 2
		return
	}

	if !playerData.Invincible {
		respawnPlayer(world, components.Object.Get(player), physics)
	}
}

func stompEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	components.Foe.Get(e).Alive = false
	removeFromSpace(components.Object.Get(e))
	AddScore(ecs, cfg.Score.EnemyStomp)
}

func stompArmored(ecs *ecs.ECS, e *donburi.Entry) {
	foe := components.Foe.Get(e)
	health := components.Health.Get(e)

	health.Current--
	AddScore(ecs, cfg.Score.BossHit)
	if health.Current > 0 {
		return
	}

	foe.Alive = false
	removeFromSpace(components.Object.Get(e))
	if foe.Variant == components.VariantBoss {
		AddScore(ecs, cfg.Score.BossDefeat)
	} else {
		AddScore(ecs, cfg.Score.MiniBossDefeat)
	}
	log.Printf("%s defeated", cfg.Foes[foe.Kind].Name)
}
