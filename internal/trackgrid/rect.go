package trackgrid

// Rect is an area's position in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Rects scales the grid down to terminal cells: every track is
// size/pixelsPerCell cells long (at least one) and tracks are separated by
// gap cells.
func (g Grid) Rects(pixelsPerCell, gap int) map[string]Rect {
	if pixelsPerCell < 1 {
		pixelsPerCell = 1
	}
	colStart, colLen := offsets(g.Cols, pixelsPerCell, gap)
	rowStart, rowLen := offsets(g.Rows, pixelsPerCell, gap)

	out := make(map[string]Rect, len(g.Areas))
	for name, a := range g.Areas {
		if a.ColStart < 1 || a.ColEnd > len(g.Cols) || a.RowStart < 1 || a.RowEnd > len(g.Rows) {
			continue
		}
		x := colStart[a.ColStart-1]
		y := rowStart[a.RowStart-1]
		out[name] = Rect{
			X:      x,
			Y:      y,
			Width:  colStart[a.ColEnd-1] + colLen[a.ColEnd-1] - x,
			Height: rowStart[a.RowEnd-1] + rowLen[a.RowEnd-1] - y,
		}
	}
	return out
}

// Extent returns the total size in cells of the grid scaled by Rects.
func (g Grid) Extent(pixelsPerCell, gap int) (width, height int) {
	if pixelsPerCell < 1 {
		pixelsPerCell = 1
	}
	return total(g.Cols, pixelsPerCell, gap), total(g.Rows, pixelsPerCell, gap)
}

func offsets(tracks []int, pixelsPerCell, gap int) (start, length []int) {
	start = make([]int, len(tracks))
	length = make([]int, len(tracks))
	pos := 0
	for i, t := range tracks {
		start[i] = pos
		length[i] = max(t/pixelsPerCell, 1)
		pos += length[i] + gap
	}
	return start, length
}

func total(tracks []int, pixelsPerCell, gap int) int {
	if len(tracks) == 0 {
		return 0
	}
	start, length := offsets(tracks, pixelsPerCell, gap)
	last := len(tracks) - 1
	return start[last] + length[last]
}
