package maze

import "spanmaze/internal/core"

// Edge links a cell to the neighbour it was first reached from. The
// connection it represents is undirected.
type Edge struct {
	Parent core.Cell
	Child  core.Cell
}

// Tree is a spanning tree as a list of edges in discovery order.
type Tree []Edge

// Extent returns the largest valid edge index, len(t)-1. It is the
// denominator used to normalise an edge's discovery index into reveal
// progress. It is not the depth of the tree; an empty tree reports -1.
func (t Tree) Extent() int { return len(t) - 1 }

// Degrees counts, for every cell of grid, how many tree edges touch it.
// The result is indexed row-major.
func (t Tree) Degrees(grid core.Grid) []int {
	deg := make([]int, grid.Len())
	for _, e := range t {
		deg[grid.Index(e.Parent)]++
		deg[grid.Index(e.Child)]++
	}
	return deg
}

// Links reports, for each cell, which of its four sides are open.
func (t Tree) Links(grid core.Grid) []Sides {
	out := make([]Sides, grid.Len())
	for _, e := range t {
		a, b := e.Parent, e.Child
		switch {
		case b.X == a.X+1:
			out[grid.Index(a)] |= East
			out[grid.Index(b)] |= West
		case b.X == a.X-1:
			out[grid.Index(a)] |= West
			out[grid.Index(b)] |= East
		case b.Y == a.Y+1:
			out[grid.Index(a)] |= South
			out[grid.Index(b)] |= North
		case b.Y == a.Y-1:
			out[grid.Index(a)] |= North
			out[grid.Index(b)] |= South
		}
	}
	return out
}

// Sides is a bitmask of open cell sides.
type Sides uint8

const (
	North Sides = 1 << iota
	East
	South
	West
)

// Has reports whether every side in s2 is open in s.
func (s Sides) Has(s2 Sides) bool { return s&s2 == s2 }

// Side returns the side of from that faces to. The cells must be 4-adjacent.
func Side(from, to core.Cell) Sides {
	switch {
	case to.X > from.X:
		return East
	case to.X < from.X:
		return West
	case to.Y > from.Y:
		return South
	default:
		return North
	}
}
