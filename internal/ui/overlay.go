//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 13
)

// Overlay draws the status line over the top-left corner of the window.
// H toggles it.
type Overlay struct {
	hidden bool
	panel  *ebiten.Image
	width  int
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders status on a translucent panel.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if o.hidden || status == "" {
		return
	}
	face := basicfont.Face7x13
	w := len(status)*face.Advance + 2*panelPadding
	h := lineHeight + 2*panelPadding
	if o.panel == nil || o.width != w {
		o.panel = ebiten.NewImage(w, h)
		o.width = w
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(o.panel, status, face, panelPadding, panelPadding+face.Ascent, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	screen.DrawImage(o.panel, op)
}
