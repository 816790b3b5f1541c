package systems

import (
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Clock))
		components.Clock.SetValue(ent, components.ClockData{TPS: cfg.C.TPS})
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}

// UpdateClock advances simulation time by one step and expires the
// player's invincibility. It runs first so timed state only changes at
// step boundaries.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Frame++

	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Invincible && clock.Elapsed() >= player.InvincibleUntil {
		player.Invincible = false
	}
}
