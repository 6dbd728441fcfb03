package tiles

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/avitaltamir/tilegrid/internal/components"
	"github.com/avitaltamir/tilegrid/internal/layout"
	"github.com/avitaltamir/tilegrid/internal/panel"
	"github.com/avitaltamir/tilegrid/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"
)

// ErrNoParent is returned when an action needs the focused pane's parent
// and the pane is the root.
var ErrNoParent = errors.New("pane has no parent")

// ResizeStep is how many cells the grow and shrink keys move a divider.
const ResizeStep = 2

// Options configures a tiles model.
type Options struct {
	Layout layout.Options
	// Resize floor in cells
	MinSize float64
	// Size of the children made when a pane becomes a split
	LeafSize float64
	// Defaults to random UUIDs
	IDs    panel.IDGenerator
	Logger *zap.Logger
}

// Model shows a panel tree and edits it with the mouse and keyboard.
type Model struct {
	components.Base

	tree    *panel.Tree
	layout  layout.Layout
	opts    layout.Options
	reducer panel.Reducer
	focus   string
	drag    *drag

	keys KeyMap
	log  *zap.Logger
}

// drag is a divider gesture in progress. Every motion is measured against
// the sizes captured when the button went down.
type drag struct {
	divider  layout.Divider
	snapshot []float64
	startX   int
	startY   int
}

func (d drag) command(x, y int) panel.ResizeCmd {
	pan := x - d.startX
	if d.divider.Axis == panel.Vertical {
		pan = y - d.startY
	}
	return panel.ResizeCmd{
		Snapshot: d.snapshot,
		ParentID: d.divider.ParentID,
		ResizeID: d.divider.ResizeID,
		Pan:      float64(pan),
	}
}

// New creates a tiles model showing tree.
func New(tree *panel.Tree, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ids := opts.IDs
	if ids == nil {
		ids = panel.UUIDs{}
	}

	m := Model{
		tree: tree,
		opts: opts.Layout,
		reducer: panel.Reducer{
			IDs:      ids,
			MinSize:  opts.MinSize,
			LeafSize: opts.LeafSize,
			Logger:   log,
		},
		keys: DefaultKeyMap(),
		log:  log,
	}
	m.relayout()
	if leaves := tree.Leaves(); len(leaves) > 0 {
		m.focus = leaves[0].ID
	}
	return m
}

// Init initializes the tiles view.
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
		// Always handle the mouse - app.go handles focus management
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SplitColumn):
		return m.Apply(panel.AddColumnCmd{TargetID: m.focus})

	case key.Matches(msg, m.keys.SplitColumnBefore):
		return m.Apply(panel.AddColumnCmd{TargetID: m.focus, Before: true})

	case key.Matches(msg, m.keys.SplitRow):
		return m.Apply(panel.AddRowCmd{TargetID: m.focus})

	case key.Matches(msg, m.keys.SplitRowBefore):
		return m.Apply(panel.AddRowCmd{TargetID: m.focus, Before: true})

	case key.Matches(msg, m.keys.Remove):
		return m.removeFocused()

	case key.Matches(msg, m.keys.NextPane):
		m.cycleFocus(1)

	case key.Matches(msg, m.keys.PrevPane):
		m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Grow):
		return m.nudge(ResizeStep)

	case key.Matches(msg, m.keys.Shrink):
		return m.nudge(-ResizeStep)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if d, ok := m.layout.DividerAt(msg.X, msg.Y); ok {
			snapshot, err := m.layout.Snapshot(d.ParentID)
			if err != nil {
				return m, components.ReportError(err)
			}
			m.drag = &drag{divider: d, snapshot: snapshot, startX: msg.X, startY: msg.Y}
			m.log.Debug("drag start",
				zap.String("parent", d.ParentID),
				zap.String("divider", d.ResizeID),
				zap.Float64s("snapshot", snapshot))
			return m, nil
		}
		if id, ok := m.layout.LeafAt(msg.X, msg.Y); ok {
			m.focus = id
		}

	case tea.MouseActionMotion:
		if m.drag == nil {
			return m, nil
		}
		return m.Apply(m.drag.command(msg.X, msg.Y))

	case tea.MouseActionRelease:
		if m.drag != nil {
			m.log.Debug("drag end", zap.String("divider", m.drag.divider.ResizeID))
			m.drag = nil
		}
	}

	return m, nil
}

// Apply runs cmd against the tree using the current layout as the
// measurer. Errors leave the tree untouched and are reported as
// components.ErrorMsg.
func (m Model) Apply(cmd panel.Command) (Model, tea.Cmd) {
	// typed resizes are measured against what is on screen
	if rc, ok := cmd.(panel.ResizeCmd); ok && rc.Snapshot == nil {
		snapshot, err := m.layout.Snapshot(rc.ParentID)
		if err != nil {
			return m, components.ReportError(err)
		}
		rc.Snapshot = snapshot
		cmd = rc
	}
	return m.apply(cmd, m.focus)
}

// apply runs cmd and then moves focus to the leaf nearest focusHint.
func (m Model) apply(cmd panel.Command, focusHint string) (Model, tea.Cmd) {
	m.reducer.Measurer = m.layout
	next, err := m.reducer.Apply(m.tree, cmd)
	if err != nil {
		return m, components.ReportError(err)
	}
	m.tree = next
	m.relayout()
	m.focus = m.resolveFocus(focusHint)
	return m, nil
}

func (m Model) removeFocused() (Model, tea.Cmd) {
	parentID, ok := m.tree.Parent(m.focus)
	if !ok {
		return m, components.ReportError(fmt.Errorf("remove %s: %w", m.focus, ErrNoParent))
	}
	parent, err := m.tree.SplitNode(parentID)
	if err != nil {
		return m, components.ReportError(err)
	}
	index := slices.Index(parent.Items, m.focus)
	return m.apply(panel.RemoveCmd{ParentID: parentID, Index: index}, parentID)
}

// nudge moves the focused pane's trailing divider by step cells. The last
// pane of a split has no trailing divider, so the one before it moves the
// other way instead.
func (m Model) nudge(step int) (Model, tea.Cmd) {
	parentID, ok := m.tree.Parent(m.focus)
	if !ok {
		return m, components.ReportError(fmt.Errorf("resize %s: %w", m.focus, ErrNoParent))
	}
	parent, err := m.tree.SplitNode(parentID)
	if err != nil {
		return m, components.ReportError(err)
	}
	if len(parent.Items) < 2 {
		return m, nil
	}
	snapshot, err := m.layout.Snapshot(parentID)
	if err != nil {
		return m, components.ReportError(err)
	}

	resizeID, pan := m.focus, float64(step)
	if index := slices.Index(parent.Items, m.focus); index == len(parent.Items)-1 {
		resizeID, pan = parent.Items[index-1], -pan
	}

	return m.Apply(panel.ResizeCmd{
		Snapshot: snapshot,
		ParentID: parentID,
		ResizeID: resizeID,
		Pan:      pan,
	})
}

func (m *Model) cycleFocus(delta int) {
	leaves := m.tree.Leaves()
	if len(leaves) == 0 {
		return
	}
	i := slices.IndexFunc(leaves, func(l panel.Leaf) bool { return l.ID == m.focus })
	i = (i + delta + len(leaves)) % len(leaves)
	m.focus = leaves[i].ID
}

// resolveFocus returns id when it is a leaf and the last leaf under it when
// it is a split. Ids no longer in the tree resolve to the first leaf.
func (m Model) resolveFocus(id string) string {
	n, ok := m.tree.Node(id)
	for ok {
		s, isSplit := n.(panel.Split)
		if !isSplit {
			return n.NodeID()
		}
		if len(s.Items) == 0 {
			break
		}
		n, ok = m.tree.Node(s.Items[len(s.Items)-1])
	}
	if leaves := m.tree.Leaves(); len(leaves) > 0 {
		return leaves[0].ID
	}
	return ""
}

func (m *Model) relayout() {
	w, h := m.Size()
	l, err := layout.Calculate(m.tree, w, h, m.opts)
	if err != nil {
		m.log.Error("layout failed", zap.Error(err))
		return
	}
	m.layout = l
}

// View renders the panes and dividers. The bottom row the layout reserves
// for the status bar is left to the caller.
func (m Model) View() string {
	area := m.layout.WorkspaceBounds()
	if area.Width == 0 || area.Height == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		MaxWidth(area.Width).
		MaxHeight(area.Height).
		Render(m.render(m.tree.Root()))
}

func (m Model) render(id string) string {
	r, _ := m.layout.Rect(id)
	switch n, _ := m.tree.Node(id); n := n.(type) {
	case panel.Leaf:
		return m.renderLeaf(n, r)
	case panel.Split:
		return m.renderSplit(n, r)
	}
	return theme.Blank(r.Width, r.Height)
}

func (m Model) renderLeaf(l panel.Leaf, r layout.Rect) string {
	body := theme.TextDimStyle.Render("empty")
	if l.Content != "" {
		body = theme.TextBody.Render(wordwrap.String(l.Content, max(r.Width-2, 1)))
	}
	opts := theme.PaneOptions{
		Title: l.ID,
		Hints: fmt.Sprintf("%d×%d", r.Width, r.Height),
	}
	return theme.RenderPane(body, opts, r.Width, r.Height, m.Focused() && l.ID == m.focus)
}

func (m Model) renderSplit(s panel.Split, r layout.Rect) string {
	parts := make([]string, 0, 2*len(s.Items))
	for i, child := range s.Items {
		if i > 0 {
			parts = append(parts, m.renderDivider(s, s.Items[i-1], r))
		}
		parts = append(parts, m.render(child))
	}
	if len(parts) == 0 {
		return theme.Blank(r.Width, r.Height)
	}
	if s.Direction == panel.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderDivider(s panel.Split, resizeID string, r layout.Rect) string {
	dragging := m.drag != nil && m.drag.divider.ParentID == s.ID && m.drag.divider.ResizeID == resizeID
	style := theme.GetDividerStyle(dragging)

	var row string
	rows := m.layout.Gap()
	if s.Direction == panel.Vertical {
		row = strings.Repeat(theme.DividerRow, r.Width)
	} else {
		row = strings.Repeat(theme.DividerColumn, m.layout.Gap())
		rows = r.Height
	}

	lines := make([]string, rows)
	for i := range lines {
		lines[i] = style.Render(row)
	}
	return strings.Join(lines, "\n")
}

// Focus gives focus to this component.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes focus from this component.
func (m Model) Blur() Model {
	m.Base.Blur()
	m.drag = nil
	return m
}

// SetSize updates the component's dimensions. height includes the status
// bar row at the bottom.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	m.relayout()
	return m
}

// SetTree replaces the tree, dropping any drag in progress.
func (m Model) SetTree(tree *panel.Tree) Model {
	m.tree = tree
	m.drag = nil
	m.relayout()
	m.focus = m.resolveFocus(m.focus)
	return m
}

// SetLayoutOptions changes unit and gap sizes.
func (m Model) SetLayoutOptions(opts layout.Options) Model {
	m.opts = opts
	m.relayout()
	return m
}

// SetMinSize changes the resize floor.
func (m Model) SetMinSize(minSize float64) Model {
	m.reducer.MinSize = minSize
	return m
}

// SetLeafSize changes the size given to panes made by a split.
func (m Model) SetLeafSize(leafSize float64) Model {
	m.reducer.LeafSize = leafSize
	return m
}

// Tree returns the current tree.
func (m Model) Tree() *panel.Tree {
	return m.tree
}

// Layout returns the current layout.
func (m Model) Layout() layout.Layout {
	return m.layout
}

// FocusedPane returns the id of the focused leaf.
func (m Model) FocusedPane() string {
	return m.focus
}

// Dragging reports whether a divider drag is in progress.
func (m Model) Dragging() bool {
	return m.drag != nil
}

// Keys returns the key bindings for help views.
func (m Model) Keys() KeyMap {
	return m.keys
}
