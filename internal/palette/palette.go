// Package palette maps an edge's position in the reveal order to a colour.
//
// Every scheme is a pure function of (value, max, buckets) where value is
// the edge's discovery index and max the tree's extent. Callers must not pass
// max <= 0; a degenerate tree has to be special-cased before colouring.
package palette

import (
	"image/color"
	"sort"
)

// Scheme turns a position in [0, max] into a colour.
type Scheme func(value, max, buckets int) color.RGBA

var schemes = map[string]Scheme{}

// Register adds a scheme under the provided name.
func Register(name string, s Scheme) {
	if name == "" || s == nil {
		return
	}
	schemes[name] = s
}

// Lookup returns the scheme registered under name.
func Lookup(name string) (Scheme, bool) {
	s, ok := schemes[name]
	return s, ok
}

// Names lists the registered scheme names in sorted order.
func Names() []string {
	out := make([]string, 0, len(schemes))
	for name := range schemes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Mono ignores its inputs and returns opaque white.
func Mono(int, int, int) color.RGBA {
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func mustPositive(max int) {
	if max <= 0 {
		panic("palette: max must be positive")
	}
}

func init() {
	Register("mono", Mono)
	Register("segmented", Segmented)
	Register("cyclic", Cyclic)
}
