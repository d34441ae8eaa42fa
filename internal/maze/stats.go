package maze

import "spanmaze/internal/core"

// Stats summarises the shape of a tree by cell degree.
type Stats struct {
	Cells     int
	Edges     int
	DeadEnds  int // degree 1
	Corridors int // degree 2
	Junctions int // degree 3 or 4
}

// Summarize counts cells by their degree in t.
func Summarize(t Tree, grid core.Grid) Stats {
	s := Stats{Cells: grid.Len(), Edges: len(t)}
	for _, d := range t.Degrees(grid) {
		switch {
		case d == 1:
			s.DeadEnds++
		case d == 2:
			s.Corridors++
		case d >= 3:
			s.Junctions++
		}
	}
	return s
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Cells += o.Cells
	s.Edges += o.Edges
	s.DeadEnds += o.DeadEnds
	s.Corridors += o.Corridors
	s.Junctions += o.Junctions
}

// DeadEndRatio returns the fraction of cells that are dead ends.
func (s Stats) DeadEndRatio() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.DeadEnds) / float64(s.Cells)
}
