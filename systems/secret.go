package systems

import (
	"sort"

	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/shared/gamemath"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/automoto/superbros/systems/factory"
	"github.com/automoto/superbros/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSecrets reveals every secret cell the player overlaps, in
// row-major order. Each revealed cell empties and drops a mushroom
// centered above it. A cell can only be revealed once.
func UpdateSecrets(ecs *ecs.ECS) {
	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	world := level.Current()
	grid := world.Grid
	box := components.Object.Get(entry).Rect()

	var cells [][2]int
	for _, obj := range nearby(world.Space, box, tags.ResolvSecret) {
		rc, ok := obj.Data.([2]int)
		if !ok || grid.At(rc[0], rc[1]) != leveldata.CellSecret {
			continue
		}
		if gamemath.Overlaps(box, grid.CellRect(rc[0], rc[1])) {
			cells = append(cells, rc)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return rowMajorBefore(cells[i], cells[j]) })

	for _, rc := range cells {
		if !grid.Consume(rc[0], rc[1]) {
			continue
		}
		tile := grid.CellRect(rc[0], rc[1])
		factory.RemoveTile(world, rc[0], rc[1])

		size := cfg.PowerUps.Size
		factory.CreatePowerUp(ecs, level.CurrentIndex, world,
			tile.X+(tile.W-size)/2, tile.Y-size, components.PowerUpMushroom)
		AddScore(ecs, cfg.Score.Secret)
	}
}
