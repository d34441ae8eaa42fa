package render

import (
	"image"
	"image/color"
)

// Pack converts a colour into the framebuffer's 0xAARRGGBB layout.
func Pack(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | b>>8
}

// Unpack converts a packed 0xAARRGGBB value back to color.RGBA.
func Unpack(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// fillRGBA expands packed pixels into RGBA byte quadruples in buf.
func fillRGBA(buf []byte, pix []uint32) {
	for i, p := range pix {
		base := i * 4
		buf[base+0] = uint8(p >> 16)
		buf[base+1] = uint8(p >> 8)
		buf[base+2] = uint8(p)
		buf[base+3] = uint8(p >> 24)
	}
}

// RGBA copies the framebuffer into a new image.RGBA.
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	fillRGBA(img.Pix, fb.Pix)
	return img
}

// Bytes writes the framebuffer into buf as RGBA bytes, growing it when it
// is too small, and returns it.
func (fb *Framebuffer) Bytes(buf []byte) []byte {
	n := 4 * len(fb.Pix)
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	fillRGBA(buf, fb.Pix)
	return buf
}
