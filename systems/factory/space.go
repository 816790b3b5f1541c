package factory

import (
	"github.com/automoto/superbros/components"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/automoto/superbros/tags"
	"github.com/solarlune/resolv"
)

var cellTags = map[leveldata.CellKind]string{
	leveldata.CellSolid:         tags.ResolvSolid,
	leveldata.CellSpecialGround: tags.ResolvSpecial,
	leveldata.CellSecret:        tags.ResolvSecret,
}

// CreateWorld builds a world from level data. Every non-empty cell
// becomes a tile object in the world's space, one cell per tile.
func CreateWorld(level *leveldata.Level, spawnX, spawnY float64) *components.WorldData {
	grid := level.Grid
	tile := int(grid.TileSize())
	space := resolv.NewSpace(int(grid.Width()), int(grid.Height()), tile, tile)

	world := &components.WorldData{
		Name:   level.Name,
		Grid:   grid,
		Space:  space,
		SpawnX: spawnX,
		SpawnY: spawnY,
		Tiles:  make(map[int]*resolv.Object),
	}
	if level.PlayerSpawn != nil {
		world.SpawnX = level.PlayerSpawn.X
		world.SpawnY = level.PlayerSpawn.Y
	}

	grid.Each(func(row, col int, kind leveldata.CellKind) {
		tag, ok := cellTags[kind]
		if !ok {
			return
		}
		r := grid.CellRect(row, col)
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		obj.Data = [2]int{row, col}
		space.Add(obj)
		world.Tiles[row*grid.Cols()+col] = obj
	})

	return world
}

// RemoveTile drops a tile object from its world's space.
func RemoveTile(world *components.WorldData, row, col int) {
	key := row*world.Grid.Cols() + col
	if obj, ok := world.Tiles[key]; ok {
		world.Space.Remove(obj)
		delete(world.Tiles, key)
	}
}
