package panel

import "fmt"

// directionContext records which split directions the min-size walk has
// already seen.
type directionContext interface {
	has(d Direction) bool
	with(d Direction) directionContext
}

// sharedContext is a single mutable set for the whole walk. Siblings see
// directions added while walking earlier siblings.
type sharedContext map[Direction]bool

func (c sharedContext) has(d Direction) bool { return c[d] }

func (c sharedContext) with(d Direction) directionContext {
	c[d] = true
	return c
}

// pathContext is an immutable set holding only the directions of the
// current node's ancestors.
type pathContext struct {
	vertical   bool
	horizontal bool
}

func (c pathContext) has(d Direction) bool {
	if d == Vertical {
		return c.vertical
	}
	return c.horizontal
}

func (c pathContext) with(d Direction) directionContext {
	if d == Vertical {
		c.vertical = true
	} else {
		c.horizontal = true
	}
	return c
}

// MinUnits returns the minimum number of grid units the subtree at id needs
// along Y (rows) and X (cols).
//
// A leaf needs one unit each way. A split adds one unit per child along its
// own axis and adds the minimums of every child that is itself a split; a
// nested split whose direction has already been seen costs one unit less on
// that axis because it shares the slot. The set of seen directions is shared
// by the whole walk, siblings included.
func (t *Tree) MinUnits(id string) (rows, cols int, err error) {
	return t.minUnits(id, sharedContext{})
}

// MinUnitsScoped is MinUnits with the seen set limited to the path from id
// down to the node being visited, so the order of siblings never matters.
func (t *Tree) MinUnitsScoped(id string) (rows, cols int, err error) {
	return t.minUnits(id, pathContext{})
}

func (t *Tree) minUnits(id string, seen directionContext) (rows, cols int, err error) {
	n, ok := t.nodes[id]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	var s Split
	switch v := n.(type) {
	case Leaf:
		return 1, 1, nil
	case Split:
		s = v
	}

	if s.Direction == Vertical {
		rows += len(s.Items)
	} else {
		cols += len(s.Items)
	}

	seen = seen.with(s.Direction)

	for _, item := range s.Items {
		child, ok := t.nodes[item]
		if !ok {
			return 0, 0, fmt.Errorf("%w: %s (child of %s)", ErrNodeNotFound, item, s.ID)
		}
		cs, ok := child.(Split)
		if !ok {
			continue
		}

		if seen.has(cs.Direction) {
			if cs.Direction == Vertical {
				rows--
			} else {
				cols--
			}
		}

		r, c, err := t.minUnits(item, seen)
		if err != nil {
			return 0, 0, err
		}
		rows += r
		cols += c
	}

	return rows, cols, nil
}
