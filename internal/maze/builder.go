// Package maze builds random spanning trees over rectangular grids and
// derives the bookkeeping needed to reveal them edge by edge.
package maze

import (
	"errors"
	"fmt"

	"spanmaze/internal/core"
)

// ErrStartOutOfBounds reports a start cell that lies outside the grid.
var ErrStartOutOfBounds = errors.New("maze: start cell outside grid")

// Shuffler permutes n elements through swap. *rand.Rand and *core.RNG
// satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// frame is one pending cell on the explicit DFS stack.
type frame struct {
	cell  core.Cell
	nbrs  [4]core.Cell
	count int
	next  int
}

// Build grows a spanning tree of grid from start with a randomized
// depth-first search. Each cell's neighbours are shuffled once, when the cell
// is first entered, and tried in that order; an unvisited neighbour is linked
// and explored before the remaining neighbours of the current cell.
//
// The search runs on an explicit stack, so edge order and the sequence of
// Shuffle calls match the recursive formulation while Go stack usage stays
// constant for any grid size.
func Build(start core.Cell, grid core.Grid, shuf Shuffler) (Tree, error) {
	if grid.Rows < 1 || grid.Cols < 1 {
		return nil, core.ErrEmptyGrid
	}
	if !grid.Contains(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, start, grid.Rows, grid.Cols)
	}

	visited := core.NewVisitedSet(grid)
	tree := make(Tree, 0, grid.Len()-1)
	stack := make([]frame, 0, 64)

	enter := func(c core.Cell) {
		visited.Visit(c)
		f := frame{cell: c}
		f.count = len(grid.AppendNeighbors(f.nbrs[:0], c))
		nbrs := f.nbrs[:f.count]
		shuf.Shuffle(len(nbrs), func(i, j int) { nbrs[i], nbrs[j] = nbrs[j], nbrs[i] })
		stack = append(stack, f)
	}

	enter(start)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == top.count {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.nbrs[top.next]
		top.next++
		if visited.Has(n) {
			continue
		}
		tree = append(tree, Edge{Parent: top.cell, Child: n})
		enter(n)
	}
	return tree, nil
}

// BuildSeeded builds a tree from the top-left cell using a seeded RNG.
func BuildSeeded(grid core.Grid, seed int64) (Tree, error) {
	return Build(core.Cell{}, grid, core.NewRNG(seed))
}
