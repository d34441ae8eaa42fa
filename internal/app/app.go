//go:build ebiten

package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spanmaze/internal/config"
	"spanmaze/internal/render"
	"spanmaze/internal/ui"
)

var keyActions = []struct {
	keys   []ebiten.Key
	action Action
}{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, ActionQuit},
	{[]ebiten.Key{ebiten.KeySpace}, ActionPause},
	{[]ebiten.Key{ebiten.KeyN}, ActionStep},
	{[]ebiten.Key{ebiten.KeyR}, ActionReplay},
	{[]ebiten.Key{ebiten.KeyS}, ActionReseed},
	{[]ebiten.Key{ebiten.KeyEnter}, ActionRevealAll},
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	session *Session
	painter *render.FramePainter
	overlay *ui.Overlay
	scale   int
}

// New constructs a Game presenting session.
func New(ctx context.Context, session *Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	fb := session.Framebuffer()
	return &Game{
		ctx:     ctx,
		session: session,
		painter: render.NewFramePainter(fb.W, fb.H),
		overlay: ui.NewOverlay(),
		scale:   scale,
	}
}

// Update handles input and advances the reveal.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if !inpututil.IsKeyJustPressed(k) {
				continue
			}
			quit, err := g.session.Apply(ka.action)
			if err != nil {
				return err
			}
			if quit {
				return ebiten.Termination
			}
		}
	}
	g.overlay.Update()
	g.session.Advance(g.session.Due())
	return nil
}

// Draw renders the framebuffer and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Framebuffer(), g.scale)
	g.overlay.Draw(screen, g.session.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

// Run opens a window revealing the tree for seed until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, seed int64, logger *log.Logger) error {
	session, err := NewSession(cfg, seed, logger)
	if err != nil {
		return err
	}
	game := New(ctx, session, cfg.Scale)

	ebiten.SetWindowTitle("spanmaze")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return ctx.Err()
}
