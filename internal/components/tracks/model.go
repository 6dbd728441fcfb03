package tracks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/avitaltamir/tilegrid/internal/components"
	"github.com/avitaltamir/tilegrid/internal/theme"
	"github.com/avitaltamir/tilegrid/internal/trackgrid"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"
)

// DefaultCellPixels is how many track pixels one terminal cell shows.
const DefaultCellPixels = 20

// footerHeight is the template line plus the warning line.
const footerHeight = 2

// KeyMap defines the key bindings for the track grid view.
type KeyMap struct {
	SplitRow key.Binding
	SplitCol key.Binding
	Next     key.Binding
	Prev     key.Binding
	Reset    key.Binding
	Copy     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SplitRow: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "split area row"),
		),
		SplitCol: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "split area column"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab", "next area"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("shift+tab", "prev area"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset grid"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy CSS"),
		),
	}
}

// ShortHelp returns the bindings shown in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitRow, k.SplitCol, k.Next}
}

// FullHelp returns the bindings shown in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitRow, k.SplitCol, k.Reset},
		{k.Next, k.Prev, k.Copy},
	}
}

// Model shows a track grid and splits its areas.
type Model struct {
	components.Base

	grid       trackgrid.Grid
	selected   string
	cellPixels int

	keys KeyMap
	log  *zap.Logger
	// clipboard writer, swapped out in tests
	copyText func(string) error
}

// New creates a track grid view holding a single area.
func New(cellPixels int, logger *zap.Logger) Model {
	if cellPixels < 1 {
		cellPixels = DefaultCellPixels
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	g := trackgrid.New()
	return Model{
		grid:       g,
		selected:   g.Names()[0],
		cellPixels: cellPixels,
		keys:       DefaultKeyMap(),
		log:        logger,
		copyText:   clipboard.WriteAll,
	}
}

// Init initializes the view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if name, ok := m.areaAt(msg.X, msg.Y); ok {
				m.selected = name
			}
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SplitRow):
		return m.split(trackgrid.SplitRow)

	case key.Matches(msg, m.keys.SplitCol):
		return m.split(trackgrid.SplitCol)

	case key.Matches(msg, m.keys.Next):
		m.cycle(1)

	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)

	case key.Matches(msg, m.keys.Reset):
		m.grid = trackgrid.New()
		m.selected = m.grid.Names()[0]

	case key.Matches(msg, m.keys.Copy):
		if err := m.copyText(m.grid.CSS("grid")); err != nil {
			m.log.Warn("failed to copy grid CSS", zap.Error(err))
			return m, components.ReportError(err)
		}
		return m, components.ReportStatus("copied grid CSS")
	}

	return m, nil
}

func (m Model) split(fn func(string, string, trackgrid.Grid) (trackgrid.Grid, error)) (Model, tea.Cmd) {
	name := m.nextName()
	g, err := fn(m.selected, name, m.grid)
	if err != nil {
		return m, components.ReportError(err)
	}
	m.grid = g
	m.selected = name

	if overlaps := g.Overlaps(); len(overlaps) > 0 {
		m.log.Warn("track grid areas overlap", zap.Any("pairs", overlaps))
	}
	return m, nil
}

// nextName returns the first unused name in the sequence a..z, a1..z1, ...
func (m Model) nextName() string {
	for i := 0; ; i++ {
		name := string(rune('a' + i%26))
		if i >= 26 {
			name += fmt.Sprint(i / 26)
		}
		if _, ok := m.grid.Areas[name]; !ok {
			return name
		}
	}
}

func (m *Model) cycle(delta int) {
	names := m.grid.Names()
	i := slices.Index(names, m.selected)
	i = (i + delta + len(names)) % len(names)
	m.selected = names[i]
}

// areaAt returns the area drawn on top at (x, y).
func (m Model) areaAt(x, y int) (string, bool) {
	rects := m.grid.Rects(m.cellPixels, 1)
	names := m.grid.Names()
	for i := len(names) - 1; i >= 0; i-- {
		r := rects[names[i]]
		if x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height {
			return names[i], true
		}
	}
	return "", false
}

// cell style markers
const (
	stylePlain   = -1
	styleOverlap = -2
)

type cell struct {
	ch    rune
	style int
}

// View renders the grid areas as boxes above a footer with the track
// templates and any overlap warning.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return ""
	}

	canvasHeight := max(h-footerHeight, 0)
	canvas := make([][]cell, canvasHeight)
	cover := make([][]int, canvasHeight)
	for y := range canvas {
		canvas[y] = make([]cell, w)
		cover[y] = make([]int, w)
		for x := range canvas[y] {
			canvas[y][x] = cell{ch: ' ', style: stylePlain}
		}
	}

	rects := m.grid.Rects(m.cellPixels, 1)
	for i, name := range m.grid.Names() {
		m.drawArea(canvas, cover, rects[name], name, i)
	}

	for y := range canvas {
		for x := range canvas[y] {
			if cover[y][x] > 1 && canvas[y][x].ch == ' ' {
				canvas[y][x] = cell{ch: '░', style: styleOverlap}
			}
		}
	}

	lines := make([]string, 0, h)
	for _, row := range canvas {
		lines = append(lines, m.renderRow(row))
	}
	lines = append(lines, m.renderFooter(w)...)
	return strings.Join(lines[:min(len(lines), h)], "\n")
}

func (m Model) drawArea(canvas [][]cell, cover [][]int, r trackgrid.Rect, name string, styleIdx int) {
	heavy := name == m.selected
	x1, y1 := r.X+r.Width-1, r.Y+r.Height-1

	for y := r.Y; y <= y1; y++ {
		if y < 0 || y >= len(canvas) {
			continue
		}
		for x := r.X; x <= x1; x++ {
			if x < 0 || x >= len(canvas[y]) {
				continue
			}
			cover[y][x]++
			if ch, ok := borderRune(x, y, r.X, r.Y, x1, y1, heavy); ok {
				canvas[y][x] = cell{ch: ch, style: styleIdx}
			}
		}
	}

	// label on the top edge
	for i, ch := range []rune(name) {
		x := r.X + 1 + i
		if x >= x1 || r.Y < 0 || r.Y >= len(canvas) || x >= len(canvas[r.Y]) {
			break
		}
		canvas[r.Y][x] = cell{ch: ch, style: styleIdx}
	}
}

func borderRune(x, y, x0, y0, x1, y1 int, heavy bool) (rune, bool) {
	glyphs := []rune("┌┐└┘─│")
	if heavy {
		glyphs = []rune("┏┓┗┛━┃")
	}
	switch {
	case x == x0 && y == y0:
		return glyphs[0], true
	case x == x1 && y == y0:
		return glyphs[1], true
	case x == x0 && y == y1:
		return glyphs[2], true
	case x == x1 && y == y1:
		return glyphs[3], true
	case y == y0 || y == y1:
		return glyphs[4], true
	case x == x0 || x == x1:
		return glyphs[5], true
	}
	return 0, false
}

// renderRow styles runs of cells sharing a style together.
func (m Model) renderRow(row []cell) string {
	var b strings.Builder
	for start := 0; start < len(row); {
		end := start
		var run strings.Builder
		for end < len(row) && row[end].style == row[start].style {
			run.WriteRune(row[end].ch)
			end++
		}
		b.WriteString(m.styleFor(row[start].style).Render(run.String()))
		start = end
	}
	return b.String()
}

func (m Model) styleFor(idx int) lipgloss.Style {
	switch idx {
	case stylePlain:
		return lipgloss.NewStyle()
	case styleOverlap:
		return theme.OverlapStyle
	}
	style := theme.AreaStyle(idx)
	if m.grid.Names()[idx] == m.selected {
		style = style.Bold(true)
	}
	return style
}

func (m Model) renderFooter(width int) []string {
	info := fmt.Sprintf("rows: %s │ cols: %s", m.grid.TemplateRows(), m.grid.TemplateColumns())
	if p, err := m.grid.Placement(m.selected); err == nil {
		info += fmt.Sprintf(" │ %s: %s", m.selected, p)
	}
	lines := []string{theme.TextMutedStyle.Render(truncate.StringWithTail(info, uint(width), "…"))}

	warning := ""
	if overlaps := m.grid.Overlaps(); len(overlaps) > 0 {
		pairs := make([]string, len(overlaps))
		for i, o := range overlaps {
			pairs[i] = o[0] + "/" + o[1]
		}
		warning = theme.OverlapStyle.Render(truncate.StringWithTail("overlap: "+strings.Join(pairs, ", "), uint(width), "…"))
	}
	return append(lines, warning)
}

// Focus gives focus to this component.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes focus from this component.
func (m Model) Blur() Model {
	m.Base.Blur()
	return m
}

// SetSize updates the component's dimensions.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	return m
}

// SetCellPixels changes the scale the grid is drawn at.
func (m Model) SetCellPixels(cellPixels int) Model {
	if cellPixels >= 1 {
		m.cellPixels = cellPixels
	}
	return m
}

// Grid returns the current grid.
func (m Model) Grid() trackgrid.Grid {
	return m.grid
}

// Selected returns the selected area's name.
func (m Model) Selected() string {
	return m.selected
}

// Keys returns the key bindings for help views.
func (m Model) Keys() KeyMap {
	return m.keys
}
