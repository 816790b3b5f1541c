package components

import (
	"errors"
	"fmt"

	"github.com/automoto/superbros/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var ErrWorldIndex = errors.New("world index out of range")

// WorldData is one playable world: its grid, the resolv space holding its
// tile and entity objects, and where the player restarts.
type WorldData struct {
	Name   string
	Grid   *leveldata.TileGrid
	Space  *resolv.Space
	SpawnX float64
	SpawnY float64

	// Tiles indexes tile objects by row*cols+col so a consumed secret can
	// be removed from the space.
	Tiles map[int]*resolv.Object
}

func (w *WorldData) Width() float64  { return w.Grid.Width() }
func (w *WorldData) Height() float64 { return w.Grid.Height() }

// LevelData is the ordered world list and the current selection.
type LevelData struct {
	Worlds       []*WorldData
	CurrentIndex int
}

// Current returns the active world.
func (l *LevelData) Current() *WorldData {
	return l.Worlds[l.CurrentIndex]
}

// World returns the world at index i.
func (l *LevelData) World(i int) (*WorldData, error) {
	if i < 0 || i >= len(l.Worlds) {
		return nil, fmt.Errorf("world %d of %d: %w", i, len(l.Worlds), ErrWorldIndex)
	}
	return l.Worlds[i], nil
}

// Advance selects the next world, wrapping to the first after the last,
// and returns the new index.
func (l *LevelData) Advance() int {
	l.CurrentIndex++
	if l.CurrentIndex >= len(l.Worlds) {
		l.CurrentIndex = 0
	}
	return l.CurrentIndex
}

var Level = donburi.NewComponentType[LevelData]()
