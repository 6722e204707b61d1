package maze

import (
	"errors"
	"fmt"

	"github.com/shinji-kodama/mazegen/internal/model"
)

// EntranceCount is the number of boundary openings every maze receives.
const EntranceCount = 2

// ErrNoAdmissibleOpening means an edge had no wall cell touching a carved
// interior cell. A grid carved by Carve always has one on every edge, so
// this signals a broken carve invariant rather than bad input.
var ErrNoAdmissibleOpening = errors.New("no admissible opening on edge")

// Entrance is one boundary opening.
type Entrance struct {
	Edge  model.Edge
	Point model.Point
}

// PickEdges draws two distinct edges uniformly at random. It repeats
// uniform draws over the four edges and discards duplicates until two
// distinct labels are collected.
func PickEdges(rng Rand) ([EntranceCount]model.Edge, error) {
	var picked [EntranceCount]model.Edge
	n := 0
	for n < EntranceCount {
		i := rng.Intn(len(model.AllEdges))
		if i < 0 || i >= len(model.AllEdges) {
			return picked, fmt.Errorf("random source returned %d for Intn(%d)", i, len(model.AllEdges))
		}
		edge := model.AllEdges[i]
		if n > 0 && picked[0] == edge {
			continue
		}
		picked[n] = edge
		n++
	}
	return picked, nil
}

// edgeLine describes how to walk one edge: the boundary cell and its
// inward neighbour for a coordinate c along the edge.
type edgeLine struct {
	length   int
	boundary func(c int) model.Point
	inward   func(c int) model.Point
}

// lineFor returns the walk for edge e on g.
func lineFor(g *Grid, e model.Edge) (edgeLine, error) {
	w, h := g.Width(), g.Height()
	switch e {
	case model.EdgeTop:
		return edgeLine{
			length:   w,
			boundary: func(c int) model.Point { return model.Point{X: c, Y: 0} },
			inward:   func(c int) model.Point { return model.Point{X: c, Y: 1} },
		}, nil
	case model.EdgeBottom:
		return edgeLine{
			length:   w,
			boundary: func(c int) model.Point { return model.Point{X: c, Y: h - 1} },
			inward:   func(c int) model.Point { return model.Point{X: c, Y: h - 2} },
		}, nil
	case model.EdgeLeft:
		return edgeLine{
			length:   h,
			boundary: func(c int) model.Point { return model.Point{X: 0, Y: c} },
			inward:   func(c int) model.Point { return model.Point{X: 1, Y: c} },
		}, nil
	case model.EdgeRight:
		return edgeLine{
			length:   h,
			boundary: func(c int) model.Point { return model.Point{X: w - 1, Y: c} },
			inward:   func(c int) model.Point { return model.Point{X: w - 2, Y: c} },
		}, nil
	default:
		return edgeLine{}, fmt.Errorf("unknown edge %d", int(e))
	}
}

// AdmissibleOpenings returns the coordinates along edge e (columns for
// top/bottom, rows for left/right) whose boundary cell is not yet Path and
// whose inward neighbour is Path. Corners are never admissible.
func AdmissibleOpenings(g *Grid, e model.Edge) ([]int, error) {
	line, err := lineFor(g, e)
	if err != nil {
		return nil, err
	}

	var coords []int
	for c := 1; c < line.length-1; c++ {
		if g.AtPoint(line.inward(c)) == model.Path && g.AtPoint(line.boundary(c)) != model.Path {
			coords = append(coords, c)
		}
	}
	return coords, nil
}

// PlaceEntrances opens one boundary cell on each of two distinct random
// edges. Each opening is chosen uniformly among the admissible positions
// of its edge (see AdmissibleOpenings).
//
// An edge without admissible positions yields an error wrapping
// ErrNoAdmissibleOpening; the grid may then hold one opening already.
func PlaceEntrances(g *Grid, rng Rand) ([EntranceCount]Entrance, error) {
	var entrances [EntranceCount]Entrance

	edges, err := PickEdges(rng)
	if err != nil {
		return entrances, err
	}

	for i, edge := range edges {
		coords, err := AdmissibleOpenings(g, edge)
		if err != nil {
			return entrances, err
		}
		if len(coords) == 0 {
			return entrances, fmt.Errorf("%s edge of %dx%d grid: %w", edge, g.Width(), g.Height(), ErrNoAdmissibleOpening)
		}

		j := rng.Intn(len(coords))
		if j < 0 || j >= len(coords) {
			return entrances, fmt.Errorf("random source returned %d for Intn(%d)", j, len(coords))
		}

		line, _ := lineFor(g, edge)
		p := line.boundary(coords[j])
		g.Set(p.X, p.Y, model.Path)
		entrances[i] = Entrance{Edge: edge, Point: p}
	}

	return entrances, nil
}
