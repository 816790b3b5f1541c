package systems

import (
	"time"

	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/systems/factory"
	"github.com/automoto/superbros/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps collects every power-up of the current world the player
// overlaps and applies its effect once. Collected power-ups leave the
// world's space.
func UpdatePowerUps(ecs *ecs.ECS) {
	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	now := GetOrCreateClock(ecs).Elapsed()

	for _, e := range touching(level.Current().Space, obj.Rect(), tags.ResolvPowerUp) {
		if !e.HasComponent(components.PowerUp) {
			continue
		}
		powerUp := components.PowerUp.Get(e)
		if powerUp.Collected {
			continue
		}

		powerUp.Collected = true
		removeFromSpace(components.Object.Get(e))
		applyPowerUp(powerUp.Kind, player, obj, now)
		AddScore(ecs, cfg.Score.PowerUp)
	}
}

func applyPowerUp(kind components.PowerUpKind, player *components.PlayerData, obj *components.ObjectData, now time.Duration) {
	switch kind {
	case components.PowerUpMushroom:
		// Grow upwards so the feet stay where they were.
		growth := cfg.Player.GrownHeight - obj.H
		obj.Y -= growth
		factory.ResizeObject(obj.Object, obj.W, cfg.Player.GrownHeight)
		player.Grown = true
	case components.PowerUpStar:
		player.Invincible = true
		player.InvincibleUntil = now + cfg.PowerUps.StarDuration
	}
}
