package maze

import (
	"strings"

	"spanmaze/internal/core"
)

// ASCII draws the tree as a walled maze: every grid edge that is not part of
// the tree is a wall.
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
func (t Tree) ASCII(grid core.Grid) string {
	links := t.Links(grid)
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", grid.Cols) + "\n")
	for y := 0; y < grid.Rows; y++ {
		b.WriteString("|")
		for x := 0; x < grid.Cols; x++ {
			if links[grid.Index(core.Cell{X: x, Y: y})].Has(East) {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n+")
		for x := 0; x < grid.Cols; x++ {
			if links[grid.Index(core.Cell{X: x, Y: y})].Has(South) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
