package render

// DrawLine rasterizes the segment (x0,y0)–(x1,y1) into fb with integer
// Bresenham stepping, writing c at every visited pixel inside the buffer.
// Pixels outside the buffer are skipped, and a segment lying wholly on one
// outside side of the buffer is not walked at all.
//
// Endpoints are put in a canonical order first, so drawing A→B and B→A
// touches exactly the same pixels.
func DrawLine(fb *Framebuffer, x0, y0, x1, y1 int, c uint32) {
	if y0 > y1 || (y0 == y1 && x0 > x1) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if (x0 < 0 && x1 < 0) || (x0 >= fb.W && x1 >= fb.W) || (y0 < 0 && y1 < 0) || (y0 >= fb.H && y1 >= fb.H) {
		return
	}
	// Axis-aligned runs are clamped to the buffer up front.
	if y0 == y1 {
		for x := max(x0, 0); x <= min(x1, fb.W-1); x++ {
			fb.Set(x, y0, c)
		}
		return
	}
	if x0 == x1 {
		for y := max(y0, 0); y <= min(y1, fb.H-1); y++ {
			fb.Set(x0, y, c)
		}
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		fb.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
