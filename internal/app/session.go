package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"spanmaze/internal/config"
	"spanmaze/internal/core"
	"spanmaze/internal/maze"
	"spanmaze/internal/render"
	"spanmaze/internal/reveal"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("app: window support requires building with -tags ebiten")

// maxBacklog caps how many reveal steps a single frame may catch up on.
const maxBacklog = 8

// Action is a user request decoded from the keyboard. ActionNone does
// nothing.
type Action int

const (
	ActionNone      Action = iota
	ActionQuit             // close the window
	ActionPause            // toggle automatic stepping
	ActionStep             // pause and reveal a single edge
	ActionReplay           // clear and reveal the same tree again
	ActionReseed           // build and reveal a tree for a fresh seed
	ActionRevealAll        // draw every remaining edge
)

// Session owns the reveal shown in a window and applies user actions to
// it. It holds no ebiten state.
type Session struct {
	cfg    *config.Config
	grid   core.Grid
	seed   int64
	rev    *reveal.Reveal
	clock  *core.FixedStep
	logger *log.Logger

	paused   bool
	stepOnce bool
	reseed   func() int64
}

// NewSession builds the tree for seed and prepares a framebuffer of the
// configured size.
func NewSession(cfg *config.Config, seed int64, logger *log.Logger) (*Session, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	tree, err := maze.BuildSeeded(grid, seed)
	if err != nil {
		return nil, err
	}
	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	return &Session{
		cfg:  cfg,
		grid: grid,
		seed: seed,
		rev: reveal.New(tree, fb, reveal.Options{
			CellSize:   cfg.CellSize,
			Scheme:     cfg.Palette(),
			Buckets:    cfg.Buckets,
			Background: cfg.BackgroundPixel(),
		}),
		clock:  core.NewFixedStep(cfg.StepsPerSecond),
		logger: logger,
		reseed: func() int64 { return core.ResolveSeed(0) },
	}, nil
}

// Framebuffer returns the buffer the reveal draws into.
func (s *Session) Framebuffer() *render.Framebuffer { return s.rev.Framebuffer() }

// Seed returns the seed of the tree on screen.
func (s *Session) Seed() int64 { return s.seed }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Apply performs a. It reports whether the window should close.
func (s *Session) Apply(a Action) (bool, error) {
	switch a {
	case ActionQuit:
		return true, nil
	case ActionPause:
		s.paused = !s.paused
	case ActionStep:
		s.paused = true
		s.stepOnce = true
	case ActionReplay:
		s.rev.Restart(nil)
		s.logger.Debug("replaying", "seed", s.seed)
	case ActionReseed:
		if err := s.rebuild(s.reseed()); err != nil {
			return false, err
		}
	case ActionRevealAll:
		s.rev.DrawAll()
	}
	return false, nil
}

func (s *Session) rebuild(seed int64) error {
	tree, err := maze.BuildSeeded(s.grid, seed)
	if err != nil {
		return err
	}
	s.seed = seed
	s.rev.Restart(tree)
	s.logger.Info("new seed", "seed", seed)
	return nil
}

// Due returns how many reveal steps the clock says are owed.
func (s *Session) Due() int { return s.clock.Pending(maxBacklog) }

// Advance runs the given number of reveal steps, or a single edge when a
// step was requested while paused. It returns the number of edges drawn.
func (s *Session) Advance(steps int) int {
	if s.stepOnce {
		s.stepOnce = false
		return s.rev.Step(1)
	}
	if s.paused || steps <= 0 {
		return 0
	}
	return s.rev.Step(steps * s.cfg.EdgesPerStep)
}

// Status is the one-line summary shown over the window.
func (s *Session) Status() string {
	drawn, total := s.rev.Progress()
	line := fmt.Sprintf("seed %d  %d/%d", s.seed, drawn, total)
	if s.paused {
		line += "  paused"
	}
	return line
}
