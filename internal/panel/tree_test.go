package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tree := Default()

	assert.Equal(t, "root", tree.Root())
	assert.Equal(t, 8, tree.Len())
	require.NoError(t, tree.Validate())

	parent, ok := tree.Parent("e")
	assert.True(t, ok)
	assert.Equal(t, "d", parent)

	_, ok = tree.Parent("root")
	assert.False(t, ok, "root has no parent")

	var order []string
	for _, l := range tree.Leaves() {
		order = append(order, l.ID)
	}
	assert.Equal(t, []string{"c", "e", "f", "third", "b"}, order)
}

func TestNewRejectsBrokenTrees(t *testing.T) {
	tests := []struct {
		name  string
		root  string
		nodes []Node
	}{
		{
			name:  "missing root",
			root:  "root",
			nodes: []Node{Leaf{ID: "a"}},
		},
		{
			name: "missing child",
			root: "root",
			nodes: []Node{
				Split{ID: "root", Direction: Vertical, Items: []string{"a", "ghost"}},
				Leaf{ID: "a"},
			},
		},
		{
			name: "child with two parents",
			root: "root",
			nodes: []Node{
				Split{ID: "root", Direction: Vertical, Items: []string{"x", "y"}},
				Split{ID: "x", Direction: Horizontal, Items: []string{"leaf"}},
				Split{ID: "y", Direction: Horizontal, Items: []string{"leaf"}},
				Leaf{ID: "leaf"},
			},
		},
		{
			name: "empty split",
			root: "root",
			nodes: []Node{
				Split{ID: "root", Direction: Vertical},
			},
		},
		{
			name: "unknown direction",
			root: "root",
			nodes: []Node{
				Split{ID: "root", Direction: "diagonal", Items: []string{"a"}},
				Leaf{ID: "a"},
			},
		},
		{
			name: "unreachable node",
			root: "root",
			nodes: []Node{
				Split{ID: "root", Direction: Vertical, Items: []string{"a"}},
				Leaf{ID: "a"},
				Leaf{ID: "stray"},
			},
		},
		{
			name: "root listed as a child",
			root: "root",
			nodes: []Node{
				Split{ID: "root", Direction: Vertical, Items: []string{"a"}},
				Split{ID: "a", Direction: Vertical, Items: []string{"root"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := New(tt.root, tt.nodes...)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, ErrInvalidTree)
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := New("a", Leaf{ID: "a"}, Leaf{ID: "a"})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}

func TestSizes(t *testing.T) {
	tree := Default()

	sizes, err := tree.Sizes("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{500, 500, 500}, sizes)

	_, err = tree.Sizes("b")
	assert.ErrorIs(t, err, ErrNotSplit)

	_, err = tree.Sizes("nope")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestWalkDepth(t *testing.T) {
	depths := map[string]int{}
	Default().Walk(func(n Node, depth int) {
		depths[n.NodeID()] = depth
	})

	assert.Equal(t, 0, depths["root"])
	assert.Equal(t, 1, depths["a"])
	assert.Equal(t, 2, depths["d"])
	assert.Equal(t, 3, depths["f"])
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"vertical", "v", "row"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.Equal(t, Vertical, d)
	}
	for _, s := range []string{"horizontal", "h", "col", "column"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.Equal(t, Horizontal, d)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestCounterIDs(t *testing.T) {
	ids := NewCounterIDs("p")
	assert.Equal(t, "p1", ids.NextID())
	assert.Equal(t, "p2", ids.NextID())
}

func TestUUIDs(t *testing.T) {
	var ids UUIDs
	a, b := ids.NextID(), ids.NextID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
