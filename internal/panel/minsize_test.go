package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sideBySide is two vertical splits next to each other.
func sideBySide(t *testing.T) *Tree {
	t.Helper()
	tree, err := New("root",
		Split{ID: "root", Direction: Horizontal, Items: []string{"left", "right"}},
		Split{ID: "left", Direction: Vertical, Items: []string{"l1", "l2"}},
		Split{ID: "right", Direction: Vertical, Items: []string{"r1", "r2"}},
		Leaf{ID: "l1"}, Leaf{ID: "l2"}, Leaf{ID: "r1"}, Leaf{ID: "r2"},
	)
	require.NoError(t, err)
	return tree
}

func TestMinUnits(t *testing.T) {
	tree := Default()

	tests := []struct {
		id       string
		wantRows int
		wantCols int
	}{
		{"root", 3, 3},
		{"a", 2, 3},
		{"d", 2, 0},
		{"b", 1, 1},
		{"e", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rows, cols, err := tree.MinUnits(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows, "rows")
			assert.Equal(t, tt.wantCols, cols, "cols")
		})
	}
}

func TestMinUnitsNestedSameDirection(t *testing.T) {
	// a vertical split inside a vertical split shares one row slot
	tree, err := New("root",
		Split{ID: "root", Direction: Vertical, Items: []string{"top", "inner"}},
		Leaf{ID: "top"},
		Split{ID: "inner", Direction: Vertical, Items: []string{"x", "y"}},
		Leaf{ID: "x"}, Leaf{ID: "y"},
	)
	require.NoError(t, err)

	rows, cols, err := tree.MinUnits("root")
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 0, cols)
}

func TestMinUnitsSiblingsShareContext(t *testing.T) {
	tree := sideBySide(t)

	rows, cols, err := tree.MinUnits("root")
	require.NoError(t, err)
	// the second vertical sibling sees the direction added by the first
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)

	rows, cols, err = tree.MinUnitsScoped("root")
	require.NoError(t, err)
	assert.Equal(t, 4, rows)
	assert.Equal(t, 2, cols)
}

func TestMinUnitsScopedMatchesOnPaths(t *testing.T) {
	tree := Default()
	for _, id := range tree.IDs() {
		rows, cols, err := tree.MinUnits(id)
		require.NoError(t, err)
		scopedRows, scopedCols, err := tree.MinUnitsScoped(id)
		require.NoError(t, err)

		assert.Equal(t, rows, scopedRows, id)
		assert.Equal(t, cols, scopedCols, id)
	}
}

func TestMinUnitsMissingNode(t *testing.T) {
	_, _, err := Default().MinUnits("ghost")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestMinUnitsMonotonic(t *testing.T) {
	tree := Default()
	boxes := measureAll(tree, 400, 300)
	ids := NewCounterIDs("n")

	cases := []struct {
		target string
		parent string
		axis   Direction
	}{
		{"c", "a", Horizontal},
		{"e", "d", Vertical},
		{"a", "root", Vertical},
	}

	for _, tc := range cases {
		t.Run(tc.parent, func(t *testing.T) {
			beforeRows, beforeCols, err := tree.MinUnits(tc.parent)
			require.NoError(t, err)

			next, err := tree.Split(tc.target, tc.axis, false, SplitEnv{Measurer: boxes, IDs: ids})
			require.NoError(t, err)

			afterRows, afterCols, err := next.MinUnits(tc.parent)
			require.NoError(t, err)

			if tc.axis == Vertical {
				assert.GreaterOrEqual(t, afterRows, beforeRows)
			} else {
				assert.GreaterOrEqual(t, afterCols, beforeCols)
			}
		})
	}
}
