package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator produces perfect mazes of a fixed size.
// It owns its random source; do not share a Generator between goroutines.
type Generator struct {
	width  int
	height int
	seed   int64
	rng    Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator's math/rand source. Zero picks a
// time-based seed, which Seed() then reports.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithRand replaces the random source entirely. The seed is then only
// informational.
func WithRand(rng Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// Result is a finished maze.
type Result struct {
	Grid      *Grid
	Entrances [EntranceCount]Entrance
	Stats     CarveStats
	Seed      int64
}

// New creates a Generator for a width x height maze. Both dimensions are
// normalized to odd; the constructor fails fast if either is then below
// MinDimension.
func New(width, height int, opts ...Option) (*Generator, error) {
	w, h, err := normalizedSize(width, height)
	if err != nil {
		return nil, err
	}

	g := &Generator{width: w, height: h}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		if g.seed == 0 {
			g.seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(g.seed))
	}
	return g, nil
}

// Width returns the normalized maze width.
func (g *Generator) Width() int { return g.width }

// Height returns the normalized maze height.
func (g *Generator) Height() int { return g.height }

// Seed returns the seed of the random source.
func (g *Generator) Seed() int64 { return g.seed }

// GenerateMaze allocates a fresh grid, carves it and places the two
// entrances, in that order. Successive calls continue the same random
// sequence and therefore yield different mazes.
func (g *Generator) GenerateMaze() (*Result, error) {
	grid, err := NewGrid(g.width, g.height)
	if err != nil {
		return nil, err
	}

	stats, err := Carve(grid, g.rng)
	if err != nil {
		return nil, fmt.Errorf("carving maze: %w", err)
	}

	entrances, err := PlaceEntrances(grid, g.rng)
	if err != nil {
		return nil, fmt.Errorf("placing entrances: %w", err)
	}

	return &Result{
		Grid:      grid,
		Entrances: entrances,
		Stats:     stats,
		Seed:      g.seed,
	}, nil
}
