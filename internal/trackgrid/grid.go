// Package trackgrid is a flat alternative to the panel tree: a list of row
// tracks, a list of column tracks and named rectangular areas spanning them.
package trackgrid

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultTrackSize is the pixel size of a newly inserted track.
const DefaultTrackSize = 100

var (
	ErrUnknownArea = errors.New("unknown area")
	ErrAreaExists  = errors.New("area already exists")
	ErrInvalidGrid = errors.New("invalid grid")
)

// Area is a rectangle of tracks. Indices are 1-based and inclusive.
type Area struct {
	ColStart int
	ColEnd   int
	RowStart int
	RowEnd   int
}

// Overlaps reports whether a and b share at least one cell.
func (a Area) Overlaps(b Area) bool {
	return a.ColStart <= b.ColEnd && b.ColStart <= a.ColEnd &&
		a.RowStart <= b.RowEnd && b.RowStart <= a.RowEnd
}

// Contains reports whether the cell at (col, row) lies inside a.
func (a Area) Contains(col, row int) bool {
	return col >= a.ColStart && col <= a.ColEnd && row >= a.RowStart && row <= a.RowEnd
}

// Grid is a set of row and column tracks with named areas.
type Grid struct {
	Rows  []int
	Cols  []int
	Areas map[string]Area
}

// New returns a one-cell grid holding area "a".
func New() Grid {
	return Grid{
		Rows:  []int{DefaultTrackSize},
		Cols:  []int{DefaultTrackSize},
		Areas: map[string]Area{"a": {ColStart: 1, ColEnd: 1, RowStart: 1, RowEnd: 1}},
	}
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := Grid{
		Rows:  append([]int(nil), g.Rows...),
		Cols:  append([]int(nil), g.Cols...),
		Areas: make(map[string]Area, len(g.Areas)),
	}
	for name, a := range g.Areas {
		out.Areas[name] = a
	}
	return out
}

// Names returns the area names, sorted.
func (g Grid) Names() []string {
	names := make([]string, 0, len(g.Areas))
	for name := range g.Areas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every area references existing tracks.
func (g Grid) Validate() error {
	for _, name := range g.Names() {
		a := g.Areas[name]
		if a.ColStart < 1 || a.ColEnd > len(g.Cols) || a.ColStart > a.ColEnd {
			return fmt.Errorf("%w: area %s spans columns %d-%d of %d", ErrInvalidGrid, name, a.ColStart, a.ColEnd, len(g.Cols))
		}
		if a.RowStart < 1 || a.RowEnd > len(g.Rows) || a.RowStart > a.RowEnd {
			return fmt.Errorf("%w: area %s spans rows %d-%d of %d", ErrInvalidGrid, name, a.RowStart, a.RowEnd, len(g.Rows))
		}
	}
	return nil
}

// Overlaps returns every pair of overlapping area names, each pair sorted.
func (g Grid) Overlaps() [][2]string {
	names := g.Names()
	var pairs [][2]string
	for i, a := range names {
		for _, b := range names[i+1:] {
			if g.Areas[a].Overlaps(g.Areas[b]) {
				pairs = append(pairs, [2]string{a, b})
			}
		}
	}
	return pairs
}

// TemplateRows renders the row tracks as a CSS grid-template-rows value.
func (g Grid) TemplateRows() string {
	return template(g.Rows)
}

// TemplateColumns renders the column tracks as a CSS
// grid-template-columns value.
func (g Grid) TemplateColumns() string {
	return template(g.Cols)
}

func template(tracks []int) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = strconv.Itoa(t) + "px"
	}
	return strings.Join(parts, " ")
}

// Placement is an area's CSS line-based placement. End lines are exclusive.
type Placement struct {
	ColumnStart int
	ColumnEnd   int
	RowStart    int
	RowEnd      int
}

// String renders grid-area shorthand: row-start / column-start / row-end /
// column-end.
func (p Placement) String() string {
	return fmt.Sprintf("%d / %d / %d / %d", p.RowStart, p.ColumnStart, p.RowEnd, p.ColumnEnd)
}

// Placement returns the CSS placement for the named area.
func (g Grid) Placement(name string) (Placement, error) {
	a, ok := g.Areas[name]
	if !ok {
		return Placement{}, fmt.Errorf("%w: %s", ErrUnknownArea, name)
	}
	return Placement{
		ColumnStart: a.ColStart,
		ColumnEnd:   a.ColEnd + 1,
		RowStart:    a.RowStart,
		RowEnd:      a.RowEnd + 1,
	}, nil
}

// CSS renders the grid as a stylesheet: a container rule with both track
// templates, then one grid-area rule per area in name order.
func (g Grid) CSS(container string) string {
	var b strings.Builder
	fmt.Fprintf(&b, ".%s {\n", container)
	b.WriteString("  display: grid;\n")
	fmt.Fprintf(&b, "  grid-template-rows: %s;\n", g.TemplateRows())
	fmt.Fprintf(&b, "  grid-template-columns: %s;\n", g.TemplateColumns())
	b.WriteString("}\n")
	for _, name := range g.Names() {
		p, _ := g.Placement(name)
		fmt.Fprintf(&b, ".%s { grid-area: %s; }\n", name, p)
	}
	return b.String()
}
