package systems

import (
	"github.com/automoto/superbros/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateScore returns the singleton Score component, creating if needed.
func GetOrCreateScore(ecs *ecs.ECS) *components.ScoreData {
	if _, ok := components.Score.First(ecs.World); !ok {
		ecs.World.Create(components.Score)
	}

	ent, _ := components.Score.First(ecs.World)
	return components.Score.Get(ent)
}

// AddScore awards points. Points are never taken away.
func AddScore(ecs *ecs.ECS, points int) {
	if points <= 0 {
		return
	}
	GetOrCreateScore(ecs).Points += points
}
