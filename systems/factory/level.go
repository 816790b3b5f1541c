package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/superbros/archetypes"
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoWorlds = errors.New("no worlds to play")

// CreateLevel builds every world and spawns each world's roster. The
// first world is current.
func CreateLevel(ecs *ecs.ECS, levels []*leveldata.Level) (*donburi.Entry, error) {
	if len(levels) == 0 {
		return nil, ErrNoWorlds
	}

	data := components.LevelData{Worlds: make([]*components.WorldData, 0, len(levels))}
	for i, level := range levels {
		if level == nil || level.Grid == nil {
			return nil, fmt.Errorf("world %d has no grid: %w", i, leveldata.ErrEmptyGrid)
		}

		world := CreateWorld(level, cfg.Player.SpawnX, cfg.Player.SpawnY)
		data.Worlds = append(data.Worlds, world)

		if err := spawnRoster(ecs, i, world, level); err != nil {
			return nil, fmt.Errorf("world %s: %w", level.Name, err)
		}
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, data)
	return entry, nil
}

func spawnRoster(ecs *ecs.ECS, index int, world *components.WorldData, level *leveldata.Level) error {
	for _, group := range [][]leveldata.Spawn{level.Enemies, level.MiniBosses, level.Bosses} {
		for _, spawn := range group {
			if _, err := CreateFoe(ecs, index, world, spawn); err != nil {
				return err
			}
		}
	}

	for _, spawn := range level.PowerUps {
		kind, err := ParsePowerUpKind(spawn.Kind)
		if err != nil {
			return err
		}
		CreatePowerUp(ecs, index, world, spawn.X, spawn.Y, kind)
	}
	return nil
}
