package trackgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRowThenColThenRow(t *testing.T) {
	g := New()

	g, err := SplitRow("a", "b", g)
	require.NoError(t, err)
	g, err = SplitCol("a", "c", g)
	require.NoError(t, err)
	g, err = SplitRow("b", "d", g)
	require.NoError(t, err)

	assert.Len(t, g.Rows, 3)
	assert.Len(t, g.Cols, 2)
	assert.Empty(t, g.Overlaps())
	require.NoError(t, g.Validate())

	assert.Equal(t, Area{ColStart: 1, ColEnd: 1, RowStart: 1, RowEnd: 1}, g.Areas["a"])
	assert.Equal(t, Area{ColStart: 1, ColEnd: 2, RowStart: 2, RowEnd: 2}, g.Areas["b"], "b ended at the split column")
	assert.Equal(t, Area{ColStart: 2, ColEnd: 2, RowStart: 1, RowEnd: 1}, g.Areas["c"])
	assert.Equal(t, Area{ColStart: 1, ColEnd: 2, RowStart: 3, RowEnd: 3}, g.Areas["d"])
}

func TestSplitChain(t *testing.T) {
	g := New()
	steps := []struct {
		split func(string, string, Grid) (Grid, error)
		area  string
		add   string
	}{
		{SplitRow, "a", "b"},
		{SplitRow, "b", "c"},
		{SplitCol, "c", "d"},
		{SplitRow, "d", "e"},
	}
	for _, s := range steps {
		var err error
		g, err = s.split(s.area, s.add, g)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{100, 100, 100, 100}, g.Rows)
	assert.Equal(t, []int{100, 100}, g.Cols)
	assert.Equal(t, Area{ColStart: 1, ColEnd: 1, RowStart: 3, RowEnd: 4}, g.Areas["c"])
	assert.Equal(t, Area{ColStart: 2, ColEnd: 2, RowStart: 4, RowEnd: 4}, g.Areas["e"])
	assert.Empty(t, g.Overlaps())
}

// Only areas whose end sits exactly on the split boundary are shifted.
// Areas lying wholly past the boundary keep their indices and collide with
// the new area. This test pins that behaviour until the shift rule is
// widened.
func TestSplitLeavesDownstreamAreasInPlace(t *testing.T) {
	g, err := SplitRow("a", "b", New())
	require.NoError(t, err)

	g, err = SplitRow("a", "x", g)
	require.NoError(t, err)

	assert.Len(t, g.Rows, 3)
	assert.Equal(t, Area{ColStart: 1, ColEnd: 1, RowStart: 2, RowEnd: 2}, g.Areas["b"])
	assert.Equal(t, Area{ColStart: 1, ColEnd: 1, RowStart: 2, RowEnd: 2}, g.Areas["x"])
	assert.Equal(t, [][2]string{{"b", "x"}}, g.Overlaps())
}

func TestSplitDoesNotModifyInput(t *testing.T) {
	g := New()

	next, err := SplitCol("a", "b", g)
	require.NoError(t, err)

	assert.Len(t, g.Cols, 1)
	assert.Len(t, g.Areas, 1)
	assert.Len(t, next.Cols, 2)
	assert.Len(t, next.Areas, 2)
}

func TestSplitErrors(t *testing.T) {
	g := New()

	_, err := SplitRow("zz", "b", g)
	assert.ErrorIs(t, err, ErrUnknownArea)

	_, err = SplitCol("a", "a", g)
	assert.ErrorIs(t, err, ErrAreaExists)

	_, err = SplitCol("a", "", g)
	assert.Error(t, err)

	broken := New()
	broken.Areas["a"] = Area{ColStart: 1, ColEnd: 3, RowStart: 1, RowEnd: 1}
	_, err = SplitRow("a", "b", broken)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestTemplates(t *testing.T) {
	g, err := SplitCol("a", "b", New())
	require.NoError(t, err)

	assert.Equal(t, "100px", g.TemplateRows())
	assert.Equal(t, "100px 100px", g.TemplateColumns())

	p, err := g.Placement("b")
	require.NoError(t, err)
	assert.Equal(t, Placement{ColumnStart: 2, ColumnEnd: 3, RowStart: 1, RowEnd: 2}, p)
	assert.Equal(t, "1 / 2 / 2 / 3", p.String())

	_, err = g.Placement("nope")
	assert.ErrorIs(t, err, ErrUnknownArea)
}

func TestRects(t *testing.T) {
	g, err := SplitCol("a", "b", New())
	require.NoError(t, err)
	g, err = SplitRow("a", "c", g)
	require.NoError(t, err)

	rects := g.Rects(10, 1)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 10}, rects["a"])
	assert.Equal(t, Rect{X: 11, Y: 0, Width: 10, Height: 21}, rects["b"], "b was stretched over the new row")
	assert.Equal(t, Rect{X: 0, Y: 11, Width: 10, Height: 10}, rects["c"])

	w, h := g.Extent(10, 1)
	assert.Equal(t, 21, w)
	assert.Equal(t, 21, h)
}

func TestAreaContains(t *testing.T) {
	a := Area{ColStart: 2, ColEnd: 3, RowStart: 1, RowEnd: 1}

	assert.True(t, a.Contains(2, 1))
	assert.True(t, a.Contains(3, 1))
	assert.False(t, a.Contains(1, 1))
	assert.False(t, a.Contains(2, 2))
}

func TestCSS(t *testing.T) {
	g, err := SplitCol("a", "b", New())
	require.NoError(t, err)

	want := `.grid {
  display: grid;
  grid-template-rows: 100px;
  grid-template-columns: 100px 100px;
}
.a { grid-area: 1 / 1 / 2 / 2; }
.b { grid-area: 1 / 2 / 2 / 3; }
`
	assert.Equal(t, want, g.CSS("grid"))
}
