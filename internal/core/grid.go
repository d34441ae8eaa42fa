package core

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid reports a grid with no rows or no columns.
var ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")

// Cell addresses a single grid cell by column (X) and row (Y).
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Grid describes an implicit rows×cols grid graph under 4-adjacency.
type Grid struct {
	Rows, Cols int
}

// NewGrid validates the dimensions and returns the grid.
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// GridFromGeometry derives the grid that fits a width×height pixel surface
// divided into square cells. Remainder pixels are left as margin.
func GridFromGeometry(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size %d", ErrEmptyGrid, cellSize)
	}
	return NewGrid(height/cellSize, width/cellSize)
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Index returns the row-major index of c.
func (g Grid) Index(c Cell) int { return c.Y*g.Cols + c.X }

// Neighbors lists the cells adjacent to c, in the order left, right, up, down.
func (g Grid) Neighbors(c Cell) []Cell { return Neighbors(c, g.Rows, g.Cols) }

// Neighbors returns the up to four in-bounds cells orthogonally adjacent to c
// on a rows×cols grid, ordered left, right, up, down.
func Neighbors(c Cell, rows, cols int) []Cell {
	out := make([]Cell, 0, 4)
	return appendNeighbors(out, c, rows, cols)
}

// appendNeighbors is Neighbors without the allocation.
func appendNeighbors(dst []Cell, c Cell, rows, cols int) []Cell {
	if c.X > 0 {
		dst = append(dst, Cell{c.X - 1, c.Y})
	}
	if c.X < cols-1 {
		dst = append(dst, Cell{c.X + 1, c.Y})
	}
	if c.Y > 0 {
		dst = append(dst, Cell{c.X, c.Y - 1})
	}
	if c.Y < rows-1 {
		dst = append(dst, Cell{c.X, c.Y + 1})
	}
	return dst
}

// AppendNeighbors appends the neighbours of c to dst and returns the result.
func (g Grid) AppendNeighbors(dst []Cell, c Cell) []Cell {
	return appendNeighbors(dst, c, g.Rows, g.Cols)
}
