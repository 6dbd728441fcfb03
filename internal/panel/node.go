package panel

import "fmt"

// Direction is the axis along which a split arranges its children.
type Direction string

const (
	// Vertical stacks children top to bottom (Y axis).
	Vertical Direction = "vertical"
	// Horizontal places children left to right (X axis).
	Horizontal Direction = "horizontal"
)

// String returns the direction name.
func (d Direction) String() string {
	return string(d)
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == Vertical || d == Horizontal
}

// ParseDirection accepts the direction names plus the short forms used by
// the command prompt ("row", "col").
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "vertical", "v", "row", "rows":
		return Vertical, nil
	case "horizontal", "h", "col", "cols", "column", "columns":
		return Horizontal, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Node is either a Leaf or a Split.
type Node interface {
	// NodeID returns the node's identifier, which is also its key in the tree.
	NodeID() string
	// NodeSize returns the flex size along the parent's axis.
	NodeSize() float64

	node()
}

// Leaf is a content panel.
type Leaf struct {
	ID   string
	Size float64
	// Content is the panel's label. Splitting a leaf moves it to the second
	// of the two new children.
	Content string
}

// Split arranges Items along Direction.
type Split struct {
	ID        string
	Size      float64
	Direction Direction
	Items     []string
}

func (l Leaf) NodeID() string { return l.ID }

func (l Leaf) NodeSize() float64 { return l.Size }

func (Leaf) node() {}

func (s Split) NodeID() string { return s.ID }

func (s Split) NodeSize() float64 { return s.Size }

func (Split) node() {}

// withSize returns a copy of n with its size replaced.
func withSize(n Node, size float64) Node {
	switch v := n.(type) {
	case Leaf:
		v.Size = size
		return v
	case Split:
		v.Size = size
		return v
	}
	panic(fmt.Sprintf("panel: unknown node type %T", n))
}

// Box is a measured rectangle.
type Box struct {
	Width  float64
	Height float64
}

// Extent returns the box's length along axis.
func (b Box) Extent(axis Direction) float64 {
	if axis == Vertical {
		return b.Height
	}
	return b.Width
}

// Measurer reports the rendered box of a node.
type Measurer interface {
	Measure(id string) (Box, bool)
}

// Boxes is a fixed set of measurements.
type Boxes map[string]Box

// Measure implements Measurer.
func (b Boxes) Measure(id string) (Box, bool) {
	box, ok := b[id]
	return box, ok
}
