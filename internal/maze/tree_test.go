package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spanmaze/internal/core"
	"spanmaze/internal/maze"
)

func TestExtentIsIndexBased(t *testing.T) {
	cases := []struct {
		name string
		tree maze.Tree
		want int
	}{
		{"empty", maze.Tree{}, -1},
		{"single edge", maze.Tree{edge(0, 0, 1, 0)}, 0},
		{"three edges", maze.Tree{edge(0, 0, 1, 0), edge(0, 0, 0, 1), edge(1, 0, 1, 1)}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tree.Extent())
		})
	}
}

func TestExtentIgnoresTreeShape(t *testing.T) {
	// A star and a path of the same size have the same extent even though
	// their depths differ.
	star := maze.Tree{edge(1, 1, 0, 1), edge(1, 1, 2, 1), edge(1, 1, 1, 0), edge(1, 1, 1, 2)}
	path := maze.Tree{edge(0, 0, 1, 0), edge(1, 0, 2, 0), edge(2, 0, 2, 1), edge(2, 1, 2, 2)}
	assert.Equal(t, star.Extent(), path.Extent())
}

func TestASCIITwoByTwo(t *testing.T) {
	grid := mustGrid(t, 2, 2)
	tree, err := maze.Build(core.Cell{}, grid, identityShuffler{})
	require.NoError(t, err)

	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, tree.ASCII(grid))
}

func TestASCIIOpensOneWallPerEdge(t *testing.T) {
	grid := mustGrid(t, 6, 9)
	tree, err := maze.BuildSeeded(grid, 5)
	require.NoError(t, err)

	full := maze.Tree{}.ASCII(grid)
	open := tree.ASCII(grid)
	require.Equal(t, len(full), len(open))

	diff := 0
	for i := range full {
		if full[i] != open[i] {
			diff++
		}
	}
	// A vertical wall is one '|' replaced by a space, a horizontal wall is
	// "---" replaced by three spaces.
	links := tree.Links(grid)
	east, south := 0, 0
	for _, l := range links {
		if l.Has(maze.East) {
			east++
		}
		if l.Has(maze.South) {
			south++
		}
	}
	assert.Equal(t, len(tree), east+south)
	assert.Equal(t, east+3*south, diff)
}

func TestLinksAreSymmetric(t *testing.T) {
	grid := mustGrid(t, 5, 5)
	tree, err := maze.BuildSeeded(grid, 77)
	require.NoError(t, err)
	links := tree.Links(grid)
	for _, e := range tree {
		side := maze.Side(e.Parent, e.Child)
		back := maze.Side(e.Child, e.Parent)
		assert.True(t, links[grid.Index(e.Parent)].Has(side))
		assert.True(t, links[grid.Index(e.Child)].Has(back))
	}
}

func TestSummarize(t *testing.T) {
	grid := mustGrid(t, 2, 2)
	tree, err := maze.Build(core.Cell{}, grid, identityShuffler{})
	require.NoError(t, err)

	s := maze.Summarize(tree, grid)
	assert.Equal(t, maze.Stats{Cells: 4, Edges: 3, DeadEnds: 2, Corridors: 2}, s)
	assert.InDelta(t, 0.5, s.DeadEndRatio(), 1e-9)

	var total maze.Stats
	total.Add(s)
	total.Add(s)
	assert.Equal(t, 8, total.Cells)
	assert.Equal(t, 4, total.DeadEnds)
}

func TestSummarizeDegreesSumToTwiceEdges(t *testing.T) {
	grid := mustGrid(t, 12, 12)
	tree, err := maze.BuildSeeded(grid, 99)
	require.NoError(t, err)

	sum := 0
	for _, d := range tree.Degrees(grid) {
		require.GreaterOrEqual(t, d, 1)
		sum += d
	}
	assert.Equal(t, 2*len(tree), sum)

	s := maze.Summarize(tree, grid)
	assert.Equal(t, s.Cells, s.DeadEnds+s.Corridors+s.Junctions)
}
