// Package render owns the pixel framebuffer, the line rasterizer that
// draws into it, and the sinks that hand finished frames to a display or a
// file.
package render

// Framebuffer is a flat, row-major W×H buffer of packed 0xAARRGGBB pixels.
// Pixel (x, y) lives at Pix[x+y*W].
type Framebuffer struct {
	W, H int
	Pix  []uint32
}

// NewFramebuffer allocates a zeroed (transparent black) buffer.
func NewFramebuffer(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{W: w, H: h, Pix: make([]uint32, w*h)}
}

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c uint32) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// InBounds reports whether (x, y) is a pixel of the buffer.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.W && y >= 0 && y < fb.H
}

// Set writes c at (x, y). Coordinates outside the buffer are ignored.
func (fb *Framebuffer) Set(x, y int, c uint32) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Pix[x+y*fb.W] = c
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (fb *Framebuffer) At(x, y int) uint32 {
	if !fb.InBounds(x, y) {
		return 0
	}
	return fb.Pix[x+y*fb.W]
}
