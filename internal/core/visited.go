package core

// VisitedSet stores one flag per grid cell in row-major order. Flags start
// false and are only ever set.
type VisitedSet struct {
	grid Grid
	data []bool
	n    int
}

// NewVisitedSet allocates a set covering every cell of g.
func NewVisitedSet(g Grid) *VisitedSet {
	return &VisitedSet{grid: g, data: make([]bool, g.Len())}
}

// Visit marks c and reports whether it was previously unvisited.
func (v *VisitedSet) Visit(c Cell) bool {
	i := v.grid.Index(c)
	if v.data[i] {
		return false
	}
	v.data[i] = true
	v.n++
	return true
}

// Has reports whether c has been visited.
func (v *VisitedSet) Has(c Cell) bool { return v.data[v.grid.Index(c)] }

// Count returns how many cells have been visited.
func (v *VisitedSet) Count() int { return v.n }
