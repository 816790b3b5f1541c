package systems

import (
	"github.com/automoto/superbros/components"
	"github.com/automoto/superbros/shared/gamemath"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/automoto/superbros/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ResolveX moves box horizontally by dx and snaps it against the first
// solid tile of world it overlaps in row-major order. hit reports an
// overlap.
//
// Axes are resolved one at a time by the callers, so a fast mover can
// tunnel through a thin wall or clip a corner on a diagonal approach.
func ResolveX(world *components.WorldData, box gamemath.Rect, dx float64) (gamemath.Rect, bool) {
	moved := box.Translate(dx, 0)
	tile, ok := firstSolid(world, moved)
	if !ok {
		return moved, false
	}
	switch {
	case dx > 0:
		moved.X = tile.Left() - moved.W
	case dx < 0:
		moved.X = tile.Right()
	}
	return moved, true
}

// ResolveY moves box vertically by dy and snaps it on top of or below the
// first solid tile it overlaps in row-major order.
func ResolveY(world *components.WorldData, box gamemath.Rect, dy float64) (gamemath.Rect, bool) {
	moved := box.Translate(0, dy)
	tile, ok := firstSolid(world, moved)
	if !ok {
		return moved, false
	}
	switch {
	case dy > 0:
		moved.Y = tile.Top() - moved.H
	case dy < 0:
		moved.Y = tile.Bottom()
	}
	return moved, true
}

// firstSolid takes its candidates from the world's space and keeps the
// lowest row, then column, among the tiles box strictly overlaps.
func firstSolid(world *components.WorldData, box gamemath.Rect) (gamemath.Rect, bool) {
	var (
		best  gamemath.Rect
		cell  [2]int
		found bool
	)
	for _, obj := range nearby(world.Space, box, tags.ResolvSolid) {
		rc, ok := obj.Data.([2]int)
		if !ok || world.Grid.At(rc[0], rc[1]) != leveldata.CellSolid {
			continue
		}
		tile := world.Grid.CellRect(rc[0], rc[1])
		if !gamemath.Overlaps(box, tile) {
			continue
		}
		if found && !rowMajorBefore(rc, cell) {
			continue
		}
		best, cell, found = tile, rc, true
	}
	return best, found
}

func rowMajorBefore(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

// nearby returns the objects tagged tag whose space cells lie within one
// cell of box. Objects register by their x+w-1 and y+h-1 cells, so the
// query is padded to keep sub-pixel overlaps across a cell border.
func nearby(space *resolv.Space, box gamemath.Rect, tag string) []*resolv.Object {
	if space == nil {
		return nil
	}
	cw := float64(space.CellWidth)
	ch := float64(space.CellHeight)

	query := resolv.NewObject(box.X-cw, box.Y-ch, box.W+2*cw, box.H+2*ch)
	query.Space = space

	check := query.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tag)
}

// touching maps the objects tagged tag that strictly overlap box back to
// their entities.
func touching(space *resolv.Space, box gamemath.Rect, tag string) []*donburi.Entry {
	var entries []*donburi.Entry
	for _, obj := range nearby(space, box, tag) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if gamemath.Overlaps(box, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			entries = append(entries, entry)
		}
	}
	return entries
}
