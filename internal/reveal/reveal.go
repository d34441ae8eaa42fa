// Package reveal draws a spanning tree into a framebuffer one edge at a
// time, in discovery order, colouring each edge by its position.
package reveal

import (
	"context"
	"errors"
	"image/color"

	"spanmaze/internal/maze"
	"spanmaze/internal/palette"
	"spanmaze/internal/render"
)

// ErrClosed is returned by Run when the presenter reports it was closed.
var ErrClosed = errors.New("reveal: presenter closed")

// Presenter shows a finished frame and reports whether the viewer has
// asked to stop.
type Presenter interface {
	Present(fb *render.Framebuffer) error
	Closed() bool
}

// Options controls how edges are mapped to pixels and colours.
type Options struct {
	CellSize   int
	Scheme     palette.Scheme
	Buckets    int
	Background uint32
}

// Reveal tracks how far a tree has been drawn into a framebuffer.
type Reveal struct {
	tree maze.Tree
	fb   *render.Framebuffer
	opts Options
	next int
}

// New prepares a reveal of tree into fb and clears fb to the background.
func New(tree maze.Tree, fb *render.Framebuffer, opts Options) *Reveal {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Scheme == nil {
		opts.Scheme = palette.Mono
	}
	if opts.Buckets <= 0 {
		opts.Buckets = 1
	}
	r := &Reveal{tree: tree, fb: fb, opts: opts}
	fb.Clear(opts.Background)
	return r
}

// Framebuffer returns the buffer being drawn into.
func (r *Reveal) Framebuffer() *render.Framebuffer { return r.fb }

// Tree returns the tree being revealed.
func (r *Reveal) Tree() maze.Tree { return r.tree }

// Done reports whether every edge has been drawn.
func (r *Reveal) Done() bool { return r.next >= len(r.tree) }

// Progress returns how many edges have been drawn out of the total.
func (r *Reveal) Progress() (drawn, total int) { return r.next, len(r.tree) }

// ColorOf returns the packed colour of edge i.
func (r *Reveal) ColorOf(i int) uint32 {
	return render.Pack(EdgeColor(r.opts.Scheme, i, r.tree.Extent(), r.opts.Buckets))
}

// EdgeColor colours the edge at index i of a tree with the given extent. An
// extent that is not positive has nothing to normalise against, so the edge
// takes the colour of position 0.
func EdgeColor(s palette.Scheme, i, extent, buckets int) color.RGBA {
	if extent <= 0 {
		i, extent = 0, 1
	}
	return s(i, extent, buckets)
}

// Step draws up to n further edges and returns how many were drawn.
func (r *Reveal) Step(n int) int {
	drawn := 0
	for drawn < n && !r.Done() {
		r.drawEdge(r.next)
		r.next++
		drawn++
	}
	return drawn
}

// DrawAll draws every remaining edge.
func (r *Reveal) DrawAll() int { return r.Step(len(r.tree) - r.next) }

// Restart clears the framebuffer and starts revealing tree from the first
// edge. A nil tree replays the current one.
func (r *Reveal) Restart(tree maze.Tree) {
	if tree != nil {
		r.tree = tree
	}
	r.next = 0
	r.fb.Clear(r.opts.Background)
}

func (r *Reveal) drawEdge(i int) {
	e := r.tree[i]
	cs := r.opts.CellSize
	render.DrawLine(r.fb,
		e.Parent.X*cs, e.Parent.Y*cs,
		e.Child.X*cs, e.Child.Y*cs,
		r.ColorOf(i))
}

// Run reveals the remaining edges perFrame at a time, presenting the
// framebuffer after each batch. Cancellation and Presenter.Closed are
// checked between batches; a batch always completes once started.
func Run(ctx context.Context, r *Reveal, p Presenter, perFrame int) error {
	if perFrame <= 0 {
		perFrame = 1
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.Closed() {
			return ErrClosed
		}
		r.Step(perFrame)
		if err := p.Present(r.fb); err != nil {
			return err
		}
		if r.Done() {
			return nil
		}
	}
}
