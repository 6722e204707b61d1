package maze

import (
	"github.com/shinji-kodama/mazegen/internal/model"
)

// scriptedRand replays fixed values and records every bound it was asked
// for. Once the script runs out it returns 0.
type scriptedRand struct {
	values []int
	bounds []int
}

func (r *scriptedRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// parseGrid builds a grid from '#' (wall), ' ' (path) and '.' (marked) rows.
func parseGrid(rows ...string) *Grid {
	g := &Grid{width: len(rows[0]), height: len(rows)}
	g.cells = make([][]model.Cell, len(rows))
	for y, row := range rows {
		g.cells[y] = make([]model.Cell, len(row))
		for x, ch := range row {
			switch ch {
			case ' ':
				g.cells[y][x] = model.Path
			case '.':
				g.cells[y][x] = model.Marked
			default:
				g.cells[y][x] = model.Wall
			}
		}
	}
	return g
}

// reachablePaths flood-fills Path cells from the first Path cell found in
// row-major order and returns how many were reached.
func reachablePaths(g *Grid) int {
	var start *model.Point
	for y := 0; y < g.Height() && start == nil; y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == model.Path {
				start = &model.Point{X: x, Y: y}
				break
			}
		}
	}
	if start == nil {
		return 0
	}

	seen := map[model.Point]bool{*start: true}
	queue := []model.Point{*start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range model.AllDirections {
			n := p.Add(d.Delta())
			if !inBounds(g, n) || seen[n] || g.AtPoint(n) != model.Path {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

// pathAdjacencies counts orthogonally adjacent Path-Path pairs, each pair
// once. For a connected set of cells this equals cells-1 iff it is a tree.
func pathAdjacencies(g *Grid) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) != model.Path {
				continue
			}
			if x+1 < g.Width() && g.At(x+1, y) == model.Path {
				n++
			}
			if y+1 < g.Height() && g.At(x, y+1) == model.Path {
				n++
			}
		}
	}
	return n
}

// borderPaths returns the Path cells on the outer ring.
func borderPaths(g *Grid) []model.Point {
	var points []model.Point
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.IsInterior(x, y) && g.At(x, y) == model.Path {
				points = append(points, model.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// latticeSize is the number of odd-coordinate interior cells.
func latticeSize(g *Grid) int {
	return ((g.Width() - 1) / 2) * ((g.Height() - 1) / 2)
}

func inBounds(g *Grid, p model.Point) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}
