package layout

import (
	"fmt"
	"strconv"

	"github.com/avitaltamir/tilegrid/internal/panel"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// Layout constants
const (
	StatusBarHeight   = 1
	DefaultUnitWidth  = 8 // cells per minimum-size unit along X
	DefaultUnitHeight = 3 // cells per minimum-size unit along Y
	DefaultGap        = 1 // divider thickness
)

// Window names for boxlayout. Node ids never start with a NUL.
const (
	workspaceWindow = "\x00workspace"
	statusWindow    = "\x00status"
	gapWindow       = "\x00gap"
)

// Options controls how a tree is laid out.
type Options struct {
	UnitWidth  int
	UnitHeight int
	Gap        int
	// Scoped limits the min-size direction context to each node's ancestors.
	Scoped bool
}

// DefaultOptions returns the default unit and gap sizes.
func DefaultOptions() Options {
	return Options{
		UnitWidth:  DefaultUnitWidth,
		UnitHeight: DefaultUnitHeight,
		Gap:        DefaultGap,
	}
}

func (o Options) normalized() Options {
	if o.UnitWidth < 1 {
		o.UnitWidth = DefaultUnitWidth
	}
	if o.UnitHeight < 1 {
		o.UnitHeight = DefaultUnitHeight
	}
	if o.Gap < 1 {
		o.Gap = DefaultGap
	}
	return o
}

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Extent returns r's length along axis.
func (r Rect) Extent(axis panel.Direction) int {
	if axis == panel.Vertical {
		return r.Height
	}
	return r.Width
}

// Divider is the gap between two siblings. Dragging it resizes ResizeID
// (the sibling before the gap) against its neighbours.
type Divider struct {
	ParentID string
	ResizeID string
	Axis     panel.Direction
	Rect     Rect
}

// Layout holds calculated rectangles for every node of a tree.
type Layout struct {
	// Total terminal dimensions
	TotalWidth  int
	TotalHeight int

	// Status bar
	StatusHeight int

	opts     Options
	tree     *panel.Tree
	rects    map[string]Rect
	mins     map[string]Rect
	dividers []Divider
}

// Calculate lays tree out in a terminal of width×height cells, leaving the
// bottom row for the status bar.
func Calculate(tree *panel.Tree, width, height int, opts Options) (Layout, error) {
	l := Layout{
		TotalWidth:   width,
		TotalHeight:  height,
		StatusHeight: StatusBarHeight,
		opts:         opts.normalized(),
		tree:         tree,
		rects:        make(map[string]Rect, tree.Len()),
		mins:         make(map[string]Rect, tree.Len()),
	}

	if err := l.computeMinimums(); err != nil {
		return Layout{}, err
	}

	area := l.WorkspaceBounds()
	if err := l.place(tree.Root(), area); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// MinPixels converts a unit count to a length: units*unit plus one gap
// between each pair of units. Never negative.
func MinPixels(units, unit, gap int) int {
	return max(units*unit+(units-1)*gap, 0)
}

func (l *Layout) computeMinimums() error {
	minUnits := l.tree.MinUnits
	if l.opts.Scoped {
		minUnits = l.tree.MinUnitsScoped
	}
	for _, id := range l.tree.IDs() {
		rows, cols, err := minUnits(id)
		if err != nil {
			return fmt.Errorf("layout: %w", err)
		}
		l.mins[id] = Rect{
			Width:  MinPixels(cols, l.opts.UnitWidth, l.opts.Gap),
			Height: MinPixels(rows, l.opts.UnitHeight, l.opts.Gap),
		}
	}
	return nil
}

func (l *Layout) place(id string, r Rect) error {
	l.rects[id] = r

	n, ok := l.tree.Node(id)
	if !ok {
		return fmt.Errorf("layout: %w: %s", panel.ErrNodeNotFound, id)
	}
	s, ok := n.(panel.Split)
	if !ok {
		return nil
	}

	bases := make([]float64, len(s.Items))
	mins := make([]int, len(s.Items))
	for i, child := range s.Items {
		c, ok := l.tree.Node(child)
		if !ok {
			return fmt.Errorf("layout: %w: %s", panel.ErrNodeNotFound, child)
		}
		bases[i] = c.NodeSize()
		mins[i] = l.mins[child].Extent(s.Direction)
	}

	gaps := l.opts.Gap * (len(s.Items) - 1)
	lengths := Distribute(r.Extent(s.Direction)-gaps, bases, mins)

	// Sizes are fixed by now, boxlayout only stacks them along the axis.
	box := &boxlayout.Box{Direction: boxDirection(s.Direction)}
	for i, child := range s.Items {
		box.Children = append(box.Children, &boxlayout.Box{Window: child, Size: lengths[i]})
		if i < len(s.Items)-1 {
			box.Children = append(box.Children, &boxlayout.Box{Window: gapName(i), Size: l.opts.Gap})
		}
	}
	dims := boxlayout.ArrangeWindows(box, r.X, r.Y, r.Width, r.Height)

	for i, child := range s.Items {
		if err := l.place(child, windowRect(dims, child, r)); err != nil {
			return err
		}
		if i < len(s.Items)-1 {
			l.dividers = append(l.dividers, Divider{
				ParentID: s.ID,
				ResizeID: child,
				Axis:     s.Direction,
				Rect:     windowRect(dims, gapName(i), r),
			})
		}
	}
	return nil
}

func boxDirection(d panel.Direction) boxlayout.Direction {
	// boxlayout's ROW stacks children top to bottom
	if d == panel.Vertical {
		return boxlayout.ROW
	}
	return boxlayout.COLUMN
}

func gapName(i int) string {
	return gapWindow + strconv.Itoa(i)
}

// windowRect converts boxlayout's inclusive corners to a Rect. Windows that
// got no space come back empty at the parent's origin.
func windowRect(dims map[string]boxlayout.Dimensions, name string, parent Rect) Rect {
	d, ok := dims[name]
	if !ok {
		return Rect{X: parent.X, Y: parent.Y}
	}
	return Rect{
		X:      d.X0,
		Y:      d.Y0,
		Width:  max(d.X1-d.X0+1, 0),
		Height: max(d.Y1-d.Y0+1, 0),
	}
}

// Rect returns the rectangle of a node.
func (l Layout) Rect(id string) (Rect, bool) {
	r, ok := l.rects[id]
	return r, ok
}

// MinSize returns the minimum width and height of a node.
func (l Layout) MinSize(id string) (width, height int) {
	m := l.mins[id]
	return m.Width, m.Height
}

// Gap returns the divider thickness.
func (l Layout) Gap() int {
	return l.opts.Gap
}

// Tree returns the tree the layout was computed for.
func (l Layout) Tree() *panel.Tree {
	return l.tree
}

// Measure implements panel.Measurer.
func (l Layout) Measure(id string) (panel.Box, bool) {
	r, ok := l.rects[id]
	if !ok {
		return panel.Box{}, false
	}
	return panel.Box{Width: float64(r.Width), Height: float64(r.Height)}, true
}

// Snapshot returns the current extents of parentID's children along the
// parent's axis, for use as the reference frame of a drag.
func (l Layout) Snapshot(parentID string) ([]float64, error) {
	s, err := l.tree.SplitNode(parentID)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(s.Items))
	for i, child := range s.Items {
		r, ok := l.rects[child]
		if !ok {
			return nil, fmt.Errorf("%w: %s", panel.ErrMeasurementUnavailable, child)
		}
		out[i] = float64(r.Extent(s.Direction))
	}
	return out, nil
}

// Dividers returns every divider in render order.
func (l Layout) Dividers() []Divider {
	return l.dividers
}

// DividerAt returns the divider under the cell (x, y).
func (l Layout) DividerAt(x, y int) (Divider, bool) {
	for _, d := range l.dividers {
		if d.Rect.Contains(x, y) {
			return d, true
		}
	}
	return Divider{}, false
}

// LeafAt returns the id of the leaf under the cell (x, y).
func (l Layout) LeafAt(x, y int) (string, bool) {
	for _, leaf := range l.tree.Leaves() {
		if r, ok := l.rects[leaf.ID]; ok && r.Contains(x, y) {
			return leaf.ID, true
		}
	}
	return "", false
}

// screen splits the terminal into the workspace and the status bar below it.
func (l Layout) screen() map[string]boxlayout.Dimensions {
	root := &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: workspaceWindow, Weight: 1},
			{Window: statusWindow, Size: l.StatusHeight},
		},
	}
	return boxlayout.ArrangeWindows(root, 0, 0, max(l.TotalWidth, 0), max(l.TotalHeight, 0))
}

// WorkspaceBounds returns the area available to panels.
func (l Layout) WorkspaceBounds() Rect {
	return windowRect(l.screen(), workspaceWindow, Rect{})
}

// StatusBarBounds returns the position and size of the status bar.
func (l Layout) StatusBarBounds() (x, y, width, height int) {
	r := windowRect(l.screen(), statusWindow, Rect{Y: max(l.TotalHeight-l.StatusHeight, 0)})
	return r.X, r.Y, r.Width, r.Height
}

// ContentWidth returns the inner width for content (excluding borders).
func (l Layout) ContentWidth(panelWidth int, borderWidth int) int {
	return max(panelWidth-borderWidth*2, 0)
}

// ContentHeight returns the inner height for content (excluding borders).
func (l Layout) ContentHeight(panelHeight int, borderHeight int) int {
	return max(panelHeight-borderHeight*2, 0)
}
