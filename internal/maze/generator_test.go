package maze

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/mazegen/internal/model"
)

// TestNew_NormalizesDimensions checks that even requests grow by one and
// odd requests are kept.
func TestNew_NormalizesDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{10, 6, 11, 7},
		{11, 7, 11, 7},
		{2, 2, 3, 3},
		{4, 9, 5, 9},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.w, tt.h), func(t *testing.T) {
			gen, err := New(tt.w, tt.h, WithSeed(1))
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, gen.Width())
			assert.Equal(t, tt.wantH, gen.Height())

			res, err := gen.GenerateMaze()
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, res.Grid.Width())
			assert.Equal(t, tt.wantH, res.Grid.Height())
		})
	}
}

// TestNew_RejectsTinyMazes verifies the constructor fails fast.
func TestNew_RejectsTinyMazes(t *testing.T) {
	gen, err := New(1, 1)
	assert.Nil(t, gen)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionTooSmall))
}

// TestNew_RejectsHugeMazes verifies that a size make cannot allocate is
// refused by the constructor rather than panicking in GenerateMaze.
func TestNew_RejectsHugeMazes(t *testing.T) {
	gen, err := New(math.MaxInt, 3, WithSeed(1))
	assert.Nil(t, gen)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionTooLarge))
}

// TestNew_TimeSeed verifies that a zero seed is replaced and reported.
func TestNew_TimeSeed(t *testing.T) {
	gen, err := New(5, 5, WithSeed(0))
	require.NoError(t, err)
	assert.NotZero(t, gen.Seed())
}

// TestGenerateMaze_Deterministic verifies that a fixed seed reproduces the
// same maze, entrances included.
func TestGenerateMaze_Deterministic(t *testing.T) {
	a, err := New(21, 13, WithSeed(42))
	require.NoError(t, err)
	b, err := New(21, 13, WithSeed(42))
	require.NoError(t, err)

	ra, err := a.GenerateMaze()
	require.NoError(t, err)
	rb, err := b.GenerateMaze()
	require.NoError(t, err)

	if diff := cmp.Diff(ra.Grid.Rows(), rb.Grid.Rows()); diff != "" {
		t.Errorf("same seed produced different mazes (-a +b):\n%s", diff)
	}
	assert.Equal(t, ra.Entrances, rb.Entrances)
	assert.Equal(t, int64(42), ra.Seed)
}

// TestGenerateMaze_FreshGridPerCall checks that each call owns a new grid.
func TestGenerateMaze_FreshGridPerCall(t *testing.T) {
	gen, err := New(9, 9, WithSeed(7))
	require.NoError(t, err)

	first, err := gen.GenerateMaze()
	require.NoError(t, err)
	snapshot := first.Grid.Rows()

	second, err := gen.GenerateMaze()
	require.NoError(t, err)

	assert.NotSame(t, first.Grid, second.Grid)
	assert.Equal(t, snapshot, first.Grid.Rows(), "earlier result must not be mutated")
}

// TestGenerateMaze_MinimumGrid covers the 3x3 scenario end to end: the only
// interior cell is (1,1) and both entrances touch it.
func TestGenerateMaze_MinimumGrid(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		gen, err := New(3, 3, WithSeed(seed))
		require.NoError(t, err)

		res, err := gen.GenerateMaze()
		require.NoError(t, err)

		assert.Equal(t, model.Path, res.Grid.At(1, 1))
		assert.Equal(t, 3, res.Grid.Count(model.Path))
		for _, e := range res.Entrances {
			assert.Contains(t, []model.Point{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}, e.Point)
		}
	}
}

// TestGenerateMaze_StraightRunWithEntrances is the single-row scenario: a
// 5x3 maze carves (1,1),(2,1),(3,1) and opens two cells next to that row.
func TestGenerateMaze_StraightRunWithEntrances(t *testing.T) {
	// Carve draws Intn(1); then edges top, right; then top column index 2.
	rng := &scriptedRand{values: []int{0, 0, 1, 2, 0}}
	gen, err := New(5, 3, WithRand(rng))
	require.NoError(t, err)

	res, err := gen.GenerateMaze()
	require.NoError(t, err)

	want := parseGrid(
		"### #",
		"#    ",
		"#####",
	)
	if diff := cmp.Diff(want.Rows(), res.Grid.Rows()); diff != "" {
		t.Errorf("maze mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerateMaze_Invariants checks the finished-maze guarantees across
// sizes and seeds: two border openings on distinct edges, each touching
// an interior path, and a single connected tree of path cells.
func TestGenerateMaze_Invariants(t *testing.T) {
	sizes := [][2]int{{5, 5}, {6, 8}, {9, 5}, {15, 15}, {25, 11}}

	for _, size := range sizes {
		for seed := int64(1); seed <= 8; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed%d", size[0], size[1], seed), func(t *testing.T) {
				gen, err := New(size[0], size[1], WithSeed(seed))
				require.NoError(t, err)

				res, err := gen.GenerateMaze()
				require.NoError(t, err)
				g := res.Grid

				openings := borderPaths(g)
				require.Len(t, openings, EntranceCount)
				assert.NotEqual(t, res.Entrances[0].Edge, res.Entrances[1].Edge)

				for _, e := range res.Entrances {
					assert.Contains(t, openings, e.Point)
					inner := 0
					for _, d := range model.AllDirections {
						n := e.Point.Add(d.Delta())
						if g.IsInterior(n.X, n.Y) && g.AtPoint(n) == model.Path {
							inner++
						}
					}
					assert.GreaterOrEqual(t, inner, 1, "entrance %s must touch the maze", e.Point)
				}

				paths := g.Count(model.Path)
				assert.Equal(t, 2*latticeSize(g)-1+EntranceCount, paths)
				assert.Equal(t, paths, reachablePaths(g))
				assert.Equal(t, paths-1, pathAdjacencies(g))
				assert.Zero(t, g.Count(model.Marked), "the generator never writes Marked")
				assert.LessOrEqual(t, res.Stats.CellsCarved, g.Width()*g.Height())
			})
		}
	}
}
