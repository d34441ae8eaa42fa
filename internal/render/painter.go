//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a Framebuffer into a single ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for a w×h framebuffer.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit uploads fb into the painter image and draws it scaled onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, fb *Framebuffer, scale int) {
	if fb.W != fp.w || fb.H != fp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fp.buf = fb.Bytes(fp.buf)
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
