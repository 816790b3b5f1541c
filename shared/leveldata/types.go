// Package leveldata provides TMX world parsing and the static tile grid.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import "errors"

var (
	ErrEmptyGrid    = errors.New("tile grid has no cells")
	ErrRaggedGrid   = errors.New("tile grid rows differ in length")
	ErrUnknownCell  = errors.New("unknown cell code")
	ErrBadTileSize  = errors.New("tile size must be positive and square")
	ErrNoTileLayer  = errors.New("tile layer not found")
	ErrUnknownKind  = errors.New("unknown entity kind")
	ErrNoLevelFiles = errors.New("no .tmx files found")
)

// CellKind is the content of one grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellSolid
	CellSpecialGround
	CellSecret
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellSolid:
		return "solid"
	case CellSpecialGround:
		return "special"
	case CellSecret:
		return "secret"
	}
	return "unknown"
}

// Entity kinds accepted in level object groups.
const (
	KindGoomba   = "goomba"
	KindTurtle   = "turtle"
	KindMiniBoss = "miniboss"
	KindBoss     = "boss"
	KindMushroom = "mushroom"
	KindStar     = "star"
)

// Spawn is an entity placement read from a level file.
type Spawn struct {
	X, Y float64
	Kind string
}

// Level holds everything needed to build one world.
type Level struct {
	Name string
	Grid *TileGrid

	// PlayerSpawn is nil when the level does not define one.
	PlayerSpawn *Spawn

	Enemies    []Spawn
	PowerUps   []Spawn
	MiniBosses []Spawn
	Bosses     []Spawn
}
