package trackgrid

import "fmt"

// SplitRow inserts a row track below area and places newArea in it,
// spanning area's columns.
func SplitRow(area, newArea string, g Grid) (Grid, error) {
	src, err := prepare(area, newArea, g)
	if err != nil {
		return g, err
	}

	boundary := src.RowEnd
	next := g.Clone()
	next.shiftExactBoundary(area, boundary, rowEnd)
	next.Rows = insertTrack(next.Rows, boundary)
	next.Areas[newArea] = Area{
		ColStart: src.ColStart,
		ColEnd:   src.ColEnd,
		RowStart: boundary + 1,
		RowEnd:   boundary + 1,
	}
	return next, nil
}

// SplitCol inserts a column track right of area and places newArea in it,
// spanning area's rows.
func SplitCol(area, newArea string, g Grid) (Grid, error) {
	src, err := prepare(area, newArea, g)
	if err != nil {
		return g, err
	}

	boundary := src.ColEnd
	next := g.Clone()
	next.shiftExactBoundary(area, boundary, colEnd)
	next.Cols = insertTrack(next.Cols, boundary)
	next.Areas[newArea] = Area{
		ColStart: boundary + 1,
		ColEnd:   boundary + 1,
		RowStart: src.RowStart,
		RowEnd:   src.RowEnd,
	}
	return next, nil
}

func prepare(area, newArea string, g Grid) (Area, error) {
	if err := g.Validate(); err != nil {
		return Area{}, err
	}
	src, ok := g.Areas[area]
	if !ok {
		return Area{}, fmt.Errorf("split %s: %w", area, ErrUnknownArea)
	}
	if _, ok := g.Areas[newArea]; ok {
		return Area{}, fmt.Errorf("split %s: %w: %s", area, ErrAreaExists, newArea)
	}
	if newArea == "" {
		return Area{}, fmt.Errorf("split %s: empty area name", area)
	}
	return src, nil
}

// boundaryEdge selects the end edge of an area along one axis.
type boundaryEdge func(a *Area) *int

func rowEnd(a *Area) *int { return &a.RowEnd }

func colEnd(a *Area) *int { return &a.ColEnd }

// shiftExactBoundary stretches every area other than skip whose end edge
// equals boundary by one track, so it also covers the inserted track.
//
// TODO: areas that start after boundary keep their indices and end up
// overlapping the inserted track; they should move down by one as well.
func (g Grid) shiftExactBoundary(skip string, boundary int, edge boundaryEdge) {
	for name, a := range g.Areas {
		if name == skip {
			continue
		}
		if end := edge(&a); *end == boundary {
			*end++
			g.Areas[name] = a
		}
	}
}

// insertTrack adds a DefaultTrackSize track after the 1-based index at.
func insertTrack(tracks []int, at int) []int {
	out := make([]int, 0, len(tracks)+1)
	out = append(out, tracks[:at]...)
	out = append(out, DefaultTrackSize)
	return append(out, tracks[at:]...)
}
