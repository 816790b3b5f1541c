package leveldata

import (
	"fmt"

	"github.com/automoto/superbros/shared/gamemath"
)

// TileGrid is the static cell layout of a world. Only Secret cells ever
// change, and only once, to Empty.
type TileGrid struct {
	cells    [][]CellKind
	cols     int
	tileSize float64
}

// NewTileGrid validates rows of cell codes and builds a grid.
func NewTileGrid(rows [][]int, tileSize float64) (*TileGrid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size %v: %w", tileSize, ErrBadTileSize)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(rows[0])
	cells := make([][]CellKind, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrRaggedGrid)
		}
		cells[r] = make([]CellKind, cols)
		for c, code := range row {
			kind := CellKind(code)
			if kind < CellEmpty || kind > CellSecret {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, code, ErrUnknownCell)
			}
			cells[r][c] = kind
		}
	}

	return &TileGrid{cells: cells, cols: cols, tileSize: tileSize}, nil
}

func (g *TileGrid) Rows() int         { return len(g.cells) }
func (g *TileGrid) Cols() int         { return g.cols }
func (g *TileGrid) TileSize() float64 { return g.tileSize }

// Width is the grid width in pixels.
func (g *TileGrid) Width() float64 { return float64(g.cols) * g.tileSize }

// Height is the grid height in pixels.
func (g *TileGrid) Height() float64 { return float64(len(g.cells)) * g.tileSize }

// At returns the cell kind, or CellEmpty outside the grid.
func (g *TileGrid) At(row, col int) CellKind {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return CellEmpty
	}
	return g.cells[row][col]
}

// Consume turns a Secret cell into Empty. It reports true only for the
// call that performed the change.
func (g *TileGrid) Consume(row, col int) bool {
	if g.At(row, col) != CellSecret {
		return false
	}
	g.cells[row][col] = CellEmpty
	return true
}

// CellRect returns the pixel bounds of a cell.
func (g *TileGrid) CellRect(row, col int) gamemath.Rect {
	return gamemath.Rect{
		X: float64(col) * g.tileSize,
		Y: float64(row) * g.tileSize,
		W: g.tileSize,
		H: g.tileSize,
	}
}

// Each calls fn for every cell in row-major order.
func (g *TileGrid) Each(fn func(row, col int, kind CellKind)) {
	for r, row := range g.cells {
		for c, kind := range row {
			fn(r, c, kind)
		}
	}
}
