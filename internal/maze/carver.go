package maze

import (
	"fmt"

	"github.com/shinji-kodama/mazegen/internal/model"
)

// Rand is the randomness the carver and the entrance placer consume.
// Intn must return a uniformly distributed value in [0, n).
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// carveStep is the lattice stride: two cells per move leaves exactly one
// wall cell between neighbouring lattice cells.
const carveStep = 2

// carveStart is the fixed first cell of every carve.
var carveStart = model.Point{X: 1, Y: 1}

// CarveStats describes one carving run.
type CarveStats struct {
	// CellsCarved counts Wall-to-Path writes, including the start cell.
	CellsCarved int `json:"cellsCarved"`

	// BranchPoints counts positions pushed on the backtrack stack.
	BranchPoints int `json:"branchPoints"`

	// Backtracks counts positions popped from the backtrack stack.
	Backtracks int `json:"backtracks"`

	// MaxStackDepth is the deepest the backtrack stack grew.
	MaxStackDepth int `json:"maxStackDepth"`
}

// cursor is the carver's transient position and facing.
type cursor struct {
	pos    model.Point
	facing model.Direction
}

// step moves the cursor one unit in its facing direction.
func (c *cursor) step() {
	c.pos = c.pos.Add(c.facing.Delta())
}

// ValidDirections returns the directions in which a two-cell move from p
// lands strictly inside the border on a cell that is still Wall.
// Directions are returned in model.AllDirections order.
func ValidDirections(g *Grid, p model.Point) []model.Direction {
	valid := make([]model.Direction, 0, len(model.AllDirections))
	for _, d := range model.AllDirections {
		dest := p.Add(d.Delta().Scale(carveStep))
		if g.IsInterior(dest.X, dest.Y) && g.AtPoint(dest) == model.Wall {
			valid = append(valid, d)
		}
	}
	return valid
}

// Carve turns g into a perfect maze in place using randomized depth-first
// search with an explicit backtrack stack.
//
// Algorithm:
//  1. Start at (1,1) facing right and mark it Path.
//  2. Collect the valid directions (see ValidDirections).
//  3. If there are any: push the cursor when more than one is valid, pick one
//     with rng.Intn, and advance two half-steps, marking both cells Path.
//  4. Otherwise pop the most recent branch point and resume from it, or stop
//     when the stack is empty.
//
// Carving never opens a cell between two already-carved regions, so the
// result is a spanning tree over the odd lattice. The only error is an
// out-of-range value from rng.
func Carve(g *Grid, rng Rand) (CarveStats, error) {
	var stats CarveStats

	cur := cursor{pos: carveStart, facing: model.Right}
	g.Set(cur.pos.X, cur.pos.Y, model.Path)
	stats.CellsCarved++

	var stack []model.Point

	for {
		valid := ValidDirections(g, cur.pos)

		if len(valid) == 0 {
			if len(stack) == 0 {
				return stats, nil
			}
			// Dead end: resume from the nearest unresolved branch point.
			cur.pos = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stats.Backtracks++
			continue
		}

		if len(valid) > 1 {
			stack = append(stack, cur.pos)
			stats.BranchPoints++
			if len(stack) > stats.MaxStackDepth {
				stats.MaxStackDepth = len(stack)
			}
		}

		i := rng.Intn(len(valid))
		if i < 0 || i >= len(valid) {
			return stats, fmt.Errorf("random source returned %d for Intn(%d)", i, len(valid))
		}
		cur.facing = valid[i]

		// The first half-step lands on the wall between lattice cells.
		cur.step()
		g.Set(cur.pos.X, cur.pos.Y, model.Path)
		cur.step()
		g.Set(cur.pos.X, cur.pos.Y, model.Path)
		stats.CellsCarved += 2
	}
}
