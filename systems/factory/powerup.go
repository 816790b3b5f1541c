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

// ParsePowerUpKind maps a level file kind to a power-up kind.
func ParsePowerUpKind(kind string) (components.PowerUpKind, error) {
	switch kind {
	case leveldata.KindMushroom:
		return components.PowerUpMushroom, nil
	case leveldata.KindStar:
		return components.PowerUpStar, nil
	}
	return 0, fmt.Errorf("power-up %q: %w", kind, leveldata.ErrUnknownKind)
}

func CreatePowerUp(ecs *ecs.ECS, worldIndex int, world *components.WorldData, x, y float64, kind components.PowerUpKind) *donburi.Entry {
	powerUp := archetypes.PowerUp.Spawn(ecs)

	size := cfg.PowerUps.Size
	obj := resolv.NewObject(x, y, size, size, tags.ResolvPowerUp, kind.String())
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = powerUp
	world.Space.Add(obj)

	components.Object.SetValue(powerUp, components.ObjectData{Object: obj})
	components.PowerUp.SetValue(powerUp, components.PowerUpData{Kind: kind})
	components.Roster.SetValue(powerUp, components.RosterData{World: worldIndex})

	return powerUp
}
