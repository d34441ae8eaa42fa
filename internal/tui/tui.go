// Package tui reveals a spanning tree in the terminal with bubbletea. Each
// cell is drawn as a box-drawing glyph of its open sides, tinted with the
// colour of the edge that discovered it.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spanmaze/internal/core"
	"spanmaze/internal/maze"
	"spanmaze/internal/palette"
	"spanmaze/internal/reveal"
)

// glyphs is indexed by maze.Sides.
var glyphs = [16]string{
	"·", "╵", "╶", "└", "╷", "│", "┌", "├",
	"╴", "┘", "─", "┴", "┐", "┤", "┬", "┼",
}

// Options controls pacing and colour.
type Options struct {
	Scheme   palette.Scheme
	Buckets  int
	PerTick  int
	Interval time.Duration
	Seed     int64
}

type tickMsg time.Time

// Model is the bubbletea model for one reveal.
type Model struct {
	tree  maze.Tree
	grid  core.Grid
	opts  Options
	links []maze.Sides
	owner []int // index of the edge that reached each cell, -1 if none yet
	next  int

	paused  bool
	ticking bool

	styles []lipgloss.Style
	dim    lipgloss.Style
}

// New prepares a model revealing tree over grid. r decides the colour
// profile the styles render with.
func New(tree maze.Tree, grid core.Grid, opts Options, r *lipgloss.Renderer) Model {
	if opts.Scheme == nil {
		opts.Scheme = palette.Mono
	}
	if opts.Buckets <= 0 {
		opts.Buckets = 1
	}
	if opts.PerTick <= 0 {
		opts.PerTick = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second / 30
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := Model{
		tree:   tree,
		grid:   grid,
		opts:   opts,
		styles: make([]lipgloss.Style, len(tree)),
		dim:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
	extent := tree.Extent()
	for i := range tree {
		c := reveal.EdgeColor(opts.Scheme, i, extent, opts.Buckets)
		m.styles[i] = r.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.links = make([]maze.Sides, m.grid.Len())
	m.owner = make([]int, m.grid.Len())
	for i := range m.owner {
		m.owner[i] = -1
	}
	m.next = 0
}

// Done reports whether every edge has been revealed.
func (m Model) Done() bool { return m.next >= len(m.tree) }

// Progress returns how many edges have been revealed out of the total.
func (m Model) Progress() (int, int) { return m.next, len(m.tree) }

// advance reveals up to n more edges.
func (m *Model) advance(n int) {
	for ; n > 0 && !m.Done(); n-- {
		e := m.tree[m.next]
		p, c := m.grid.Index(e.Parent), m.grid.Index(e.Child)
		m.links[p] |= maze.Side(e.Parent, e.Child)
		m.links[c] |= maze.Side(e.Child, e.Parent)
		if m.owner[p] < 0 {
			m.owner[p] = m.next
		}
		m.owner[c] = m.next
		m.next++
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m.advance(m.opts.PerTick)
		}
		if m.Done() {
			m.ticking = false
			return m, nil
		}
		m.ticking = true
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			m.paused = true
			m.advance(1)
		case "enter":
			m.advance(len(m.tree))
		case "r":
			m.reset()
			if !m.ticking {
				m.ticking = true
				return m, m.tick()
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	drawn, total := m.Progress()
	status := fmt.Sprintf("seed %d  edges %d/%d", m.opts.Seed, drawn, total)
	if m.paused {
		status += "  paused"
	}
	b.WriteString(m.dim.Render(status))
	b.WriteString("\n")
	b.WriteString(m.Grid())
	b.WriteString(m.dim.Render("q quit · space pause · n step · r replay · enter all"))
	b.WriteString("\n")
	return b.String()
}

// Grid renders the revealed part of the tree, two columns per cell.
func (m Model) Grid() string {
	var b strings.Builder
	for y := 0; y < m.grid.Rows; y++ {
		for x := 0; x < m.grid.Cols; x++ {
			i := m.grid.Index(core.Cell{X: x, Y: y})
			owner := m.owner[i]
			if owner < 0 {
				b.WriteString(m.dim.Render("· "))
				continue
			}
			s := m.links[i]
			cell := glyphs[s]
			if s.Has(maze.East) {
				cell += "─"
			} else {
				cell += " "
			}
			b.WriteString(m.styles[owner].Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run shows the model until the user quits or ctx is cancelled.
func Run(ctx context.Context, tree maze.Tree, grid core.Grid, opts Options, in io.Reader, out io.Writer) error {
	m := New(tree, grid, opts, lipgloss.NewRenderer(out))
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
