package palette

import (
	"image/color"
	"math"
)

// Hue maps value/max onto [0, 360).
func Hue(value, max int) float64 {
	mustPositive(max)
	h := math.Mod(360*float64(value)/float64(max), 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Cyclic sweeps the hue wheel once as value goes from 0 to max, at full
// saturation and value. buckets is accepted for symmetry with Segmented and
// ignored: the hue is continuous.
func Cyclic(value, max, _ int) color.RGBA {
	return HSV(Hue(value, max), 1, 1)
}

// HSV converts hue in degrees and saturation/value in [0, 1] to RGB using
// the six 60° sectors of the chroma construction.
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
		A: 255,
	}
}

// channel scales a [0, 1] component to a byte.
func channel(f float64) uint8 {
	v := math.Round(f * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
