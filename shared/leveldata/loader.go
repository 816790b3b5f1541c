package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TileLayer is the name of the TMX layer holding the cell grid.
const TileLayer = "tiles"

// Object group names read from TMX files.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupEnemies     = "Enemies"
	GroupPowerUps    = "PowerUps"
	GroupMiniBosses  = "MiniBosses"
	GroupBoss        = "Boss"
)

var tileKinds = map[string]CellKind{
	"":        CellSolid,
	"solid":   CellSolid,
	"special": CellSpecialGround,
	"secret":  CellSecret,
}

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%s: tiles are %dx%d: %w", tmxPath, levelMap.TileWidth, levelMap.TileHeight, ErrBadTileSize)
	}

	rows, err := readTileLayer(levelMap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	grid, err := NewTileGrid(rows, float64(levelMap.TileWidth))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	level := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid: grid,
	}

	if err := readObjectGroups(levelMap, level); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	return level, nil
}

func readTileLayer(levelMap *tiled.Map) ([][]int, error) {
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}

		rows := make([][]int, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			rows[y] = make([]int, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var kindName string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					kindName = tilesetTile.Properties.GetString("kind")
				}
				kind, ok := tileKinds[kindName]
				if !ok {
					return nil, fmt.Errorf("tile (%d,%d) kind %q: %w", y, x, kindName, ErrUnknownCell)
				}
				rows[y][x] = int(kind)
			}
		}
		return rows, nil
	}
	return nil, fmt.Errorf("%q: %w", TileLayer, ErrNoTileLayer)
}

func readObjectGroups(levelMap *tiled.Map, level *Level) error {
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			spawn := Spawn{X: o.X, Y: o.Y, Kind: objectKind(o)}

			switch og.Name {
			case GroupPlayerSpawn:
				s := spawn
				level.PlayerSpawn = &s
			case GroupEnemies:
				if spawn.Kind != KindGoomba && spawn.Kind != KindTurtle {
					return fmt.Errorf("enemy %q: %w", spawn.Kind, ErrUnknownKind)
				}
				level.Enemies = append(level.Enemies, spawn)
			case GroupPowerUps:
				if spawn.Kind != KindMushroom && spawn.Kind != KindStar {
					return fmt.Errorf("power-up %q: %w", spawn.Kind, ErrUnknownKind)
				}
				level.PowerUps = append(level.PowerUps, spawn)
			case GroupMiniBosses:
				spawn.Kind = KindMiniBoss
				level.MiniBosses = append(level.MiniBosses, spawn)
			case GroupBoss:
				spawn.Kind = KindBoss
				level.Bosses = append(level.Bosses, spawn)
			}
		}
	}

	// Left-to-right keeps update order stable across loads
	for _, spawns := range [][]Spawn{level.Enemies, level.PowerUps, level.MiniBosses, level.Bosses} {
		sort.SliceStable(spawns, func(i, j int) bool {
			return spawns[i].X < spawns[j].X
		})
	}
	return nil
}

func objectKind(o *tiled.Object) string {
	if kind := o.Properties.GetString("kind"); kind != "" {
		return kind
	}
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // older TMX files use type=
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and
// returns them ordered by file name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevelFiles)
	}

	sort.Strings(matches)
	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}
