package palette

import "image/color"

// Bucket partitions [0, max] into buckets equal-width segments and returns
// the segment holding value, clamped to [0, buckets).
func Bucket(value, max, buckets int) int {
	mustPositive(max)
	if buckets <= 0 {
		panic("palette: buckets must be positive")
	}
	b := value * buckets / max
	if b >= buckets {
		b = buckets - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

// Segmented is a stepped red/green ramp: red rises and green falls linearly
// with the bucket of value. Blue stays 0.
func Segmented(value, max, buckets int) color.RGBA {
	b := Bucket(value, max, buckets)
	red := uint8(0)
	if buckets > 1 {
		red = uint8(b * 255 / (buckets - 1))
	}
	return color.RGBA{R: red, G: 255 - red, B: 0, A: 255}
}
