package maze

import (
	"errors"
	"fmt"

	"github.com/shinji-kodama/mazegen/internal/model"
)

// MinDimension is the smallest normalized width or height accepted.
// A 3x3 grid holds a single interior cell at (1,1) surrounded by walls.
const MinDimension = 3

// ErrDimensionTooSmall is returned when a normalized dimension is below
// MinDimension. Smaller grids have no interior to carve and no boundary
// cell that touches one.
var ErrDimensionTooSmall = errors.New("dimension is not big enough")

// MaxDimension is the largest normalized width or height accepted. It keeps
// a grid (one byte per cell) and the backtrack stack within tens of MiB.
const MaxDimension = 4001

// ErrDimensionTooLarge is returned when a normalized dimension exceeds
// MaxDimension.
var ErrDimensionTooLarge = errors.New("dimension is too large")

// Grid is a rectangular, row-major array of cells. Every row has exactly
// Width() cells and both dimensions are odd, at least MinDimension and at
// most MaxDimension.
type Grid struct {
	width  int
	height int
	cells  [][]model.Cell
}

// NormalizeDimension bumps an even dimension to the next odd value.
// Odd values are returned unchanged.
func NormalizeDimension(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// NewGrid allocates an all-wall grid. Each requested dimension is first
// normalized to odd; a normalized dimension below MinDimension or above
// MaxDimension is rejected with an error wrapping ErrDimensionTooSmall or
// ErrDimensionTooLarge.
func NewGrid(requestedWidth, requestedHeight int) (*Grid, error) {
	width, height, err := normalizedSize(requestedWidth, requestedHeight)
	if err != nil {
		return nil, err
	}

	cells := make([][]model.Cell, height)
	for y := range cells {
		row := make([]model.Cell, width)
		for x := range row {
			row[x] = model.Wall
		}
		cells[y] = row
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// normalizedSize applies odd normalization to both dimensions and checks
// the size limits.
func normalizedSize(requestedWidth, requestedHeight int) (int, int, error) {
	width := NormalizeDimension(requestedWidth)
	height := NormalizeDimension(requestedHeight)

	if width < MinDimension {
		return 0, 0, fmt.Errorf("width %d (requested %d) below minimum %d: %w",
			width, requestedWidth, MinDimension, ErrDimensionTooSmall)
	}
	if height < MinDimension {
		return 0, 0, fmt.Errorf("height %d (requested %d) below minimum %d: %w",
			height, requestedHeight, MinDimension, ErrDimensionTooSmall)
	}
	if width > MaxDimension {
		return 0, 0, fmt.Errorf("width %d (requested %d) above maximum %d: %w",
			width, requestedWidth, MaxDimension, ErrDimensionTooLarge)
	}
	if height > MaxDimension {
		return 0, 0, fmt.Errorf("height %d (requested %d) above maximum %d: %w",
			height, requestedHeight, MaxDimension, ErrDimensionTooLarge)
	}
	return width, height, nil
}

// Width returns the normalized number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the normalized number of rows.
func (g *Grid) Height() int { return g.height }

// IsInterior reports whether (x, y) lies strictly inside the outer ring.
func (g *Grid) IsInterior(x, y int) bool {
	return x > 0 && x < g.width-1 && y > 0 && y < g.height-1
}

// At returns the cell at (x, y). It panics if the position is out of bounds,
// like a slice index would.
func (g *Grid) At(x, y int) model.Cell {
	return g.cells[y][x]
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c model.Cell) {
	g.cells[y][x] = c
}

// AtPoint is At for a Point.
func (g *Grid) AtPoint(p model.Point) model.Cell {
	return g.cells[p.Y][p.X]
}

// Count returns how many cells hold c.
func (g *Grid) Count(c model.Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Rows returns a deep copy of the cells, row by row. Callers may mutate the
// copy (e.g., apply Marked annotations) without affecting the grid.
func (g *Grid) Rows() [][]model.Cell {
	rows := make([][]model.Cell, g.height)
	for y, row := range g.cells {
		rows[y] = append([]model.Cell(nil), row...)
	}
	return rows
}
