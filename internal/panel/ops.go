package panel

import (
	"fmt"
	"slices"

	"github.com/avitaltamir/tilegrid/internal/geometry"
)

// DefaultLeafSize is the size given to both children when a panel is
// turned into a split.
const DefaultLeafSize = 500

// SplitEnv supplies what a split needs from the host.
type SplitEnv struct {
	Measurer Measurer
	IDs      IDGenerator
	// LeafSize is used when a panel is turned into a split. Zero means
	// DefaultLeafSize.
	LeafSize float64
}

// Split inserts a new panel next to targetID along axis.
//
// When the target's parent is already split along axis, one new leaf is
// placed before or after the target. It gets an equal share of the parent's
// measured extent and every existing sibling gives up its own share.
//
// Otherwise the target becomes a split along axis with two fresh children:
// a blank leaf followed by one carrying the target's content.
func (t *Tree) Split(targetID string, axis Direction, before bool, env SplitEnv) (*Tree, error) {
	if !axis.Valid() {
		return t, fmt.Errorf("split %s: unknown direction %q", targetID, axis)
	}
	target, ok := t.nodes[targetID]
	if !ok {
		return t, fmt.Errorf("split: %w: %s", ErrNodeNotFound, targetID)
	}

	if parentID, ok := t.parents[targetID]; ok {
		if parent, ok := t.nodes[parentID].(Split); ok && parent.Direction == axis {
			return t.insertSibling(parent, targetID, axis, before, env)
		}
	}
	return t.convert(target, axis, env)
}

func (t *Tree) insertSibling(parent Split, targetID string, axis Direction, before bool, env SplitEnv) (*Tree, error) {
	if env.Measurer == nil {
		return t, fmt.Errorf("split %s: %w: no measurer", targetID, ErrMeasurementUnavailable)
	}
	parentBox, ok := env.Measurer.Measure(parent.ID)
	if !ok {
		return t, fmt.Errorf("split %s: %w: %s", targetID, ErrMeasurementUnavailable, parent.ID)
	}

	newID, err := t.freshID(env.IDs)
	if err != nil {
		return t, fmt.Errorf("split %s: %w", targetID, err)
	}

	count := float64(len(parent.Items) + 1)
	next := t.clone()

	for _, id := range parent.Items {
		box, ok := env.Measurer.Measure(id)
		if !ok {
			return t, fmt.Errorf("split %s: %w: %s", targetID, ErrMeasurementUnavailable, id)
		}
		extent := box.Extent(axis)
		next.nodes[id] = withSize(t.nodes[id], extent-extent/count)
	}

	at := slices.Index(parent.Items, targetID)
	if !before {
		at++
	}
	parent.Items = slices.Insert(slices.Clone(parent.Items), at, newID)

	next.nodes[parent.ID] = parent
	next.nodes[newID] = Leaf{ID: newID, Size: parentBox.Extent(axis) / count}
	next.parents[newID] = parent.ID

	return t.commit(next)
}

func (t *Tree) convert(target Node, axis Direction, env SplitEnv) (*Tree, error) {
	first, err := t.freshID(env.IDs)
	if err != nil {
		return t, fmt.Errorf("split %s: %w", target.NodeID(), err)
	}
	second, err := t.freshID(env.IDs)
	if err != nil {
		return t, fmt.Errorf("split %s: %w", target.NodeID(), err)
	}
	if second == first {
		return t, fmt.Errorf("split %s: %w: %s", target.NodeID(), ErrDuplicateID, second)
	}

	size := env.LeafSize
	if size <= 0 {
		size = DefaultLeafSize
	}

	next := t.clone()
	next.nodes[first] = Leaf{ID: first, Size: size}
	next.parents[first] = target.NodeID()
	next.parents[second] = target.NodeID()

	switch v := target.(type) {
	case Leaf:
		next.nodes[second] = Leaf{ID: second, Size: size, Content: v.Content}
	case Split:
		// the old arrangement moves down one level under second
		next.nodes[second] = Split{ID: second, Size: size, Direction: v.Direction, Items: slices.Clone(v.Items)}
		for _, child := range v.Items {
			next.parents[child] = second
		}
	}

	next.nodes[target.NodeID()] = Split{
		ID:        target.NodeID(),
		Size:      target.NodeSize(),
		Direction: axis,
		Items:     []string{first, second},
	}

	return t.commit(next)
}

func (t *Tree) freshID(ids IDGenerator) (string, error) {
	if ids == nil {
		ids = UUIDs{}
	}
	id := ids.NextID()
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrDuplicateID)
	}
	if _, ok := t.nodes[id]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	return id, nil
}

// Remove deletes the child at index from parentID along with its subtree.
//
// A parent left with a single child takes that child's place: it keeps its
// own id and size but becomes the child (a leaf, or a split owning the
// grandchildren). A parent left with no children becomes an empty leaf.
func (t *Tree) Remove(parentID string, index int) (*Tree, error) {
	parent, err := t.SplitNode(parentID)
	if err != nil {
		return t, fmt.Errorf("remove: %w", err)
	}
	if index < 0 || index >= len(parent.Items) {
		return t, fmt.Errorf("remove: %w: %d of %d in %s", ErrIndexOutOfRange, index, len(parent.Items), parentID)
	}

	next := t.clone()
	next.deleteSubtree(parent.Items[index])
	items := slices.Delete(slices.Clone(parent.Items), index, index+1)

	switch len(items) {
	case 0:
		next.nodes[parentID] = Leaf{ID: parentID, Size: parent.Size}
	case 1:
		next.absorb(parent, items[0])
	default:
		parent.Items = items
		next.nodes[parentID] = parent
	}

	return t.commit(next)
}

func (t *Tree) deleteSubtree(id string) {
	if s, ok := t.nodes[id].(Split); ok {
		for _, child := range s.Items {
			t.deleteSubtree(child)
		}
	}
	delete(t.nodes, id)
	delete(t.parents, id)
}

// absorb replaces parent with its only remaining child.
func (t *Tree) absorb(parent Split, childID string) {
	child := t.nodes[childID]
	delete(t.nodes, childID)
	delete(t.parents, childID)

	switch c := child.(type) {
	case Leaf:
		t.nodes[parent.ID] = Leaf{ID: parent.ID, Size: parent.Size, Content: c.Content}
	case Split:
		t.nodes[parent.ID] = Split{ID: parent.ID, Size: parent.Size, Direction: c.Direction, Items: slices.Clone(c.Items)}
		for _, grandchild := range c.Items {
			t.parents[grandchild] = parent.ID
		}
	}
}

// Resize moves the divider after resizeID inside parentID by pan. snapshot
// holds the children's sizes captured when the drag started; it must not be
// re-measured between frames.
func (t *Tree) Resize(parentID, resizeID string, pan float64, snapshot []float64, minSize float64) (*Tree, geometry.Result, error) {
	parent, err := t.SplitNode(parentID)
	if err != nil {
		return t, geometry.Result{}, fmt.Errorf("resize: %w", err)
	}
	index := slices.Index(parent.Items, resizeID)
	if index < 0 {
		return t, geometry.Result{}, fmt.Errorf("resize: %w: %s in %s", ErrNodeNotFound, resizeID, parentID)
	}
	if len(snapshot) != len(parent.Items) {
		return t, geometry.Result{}, fmt.Errorf("resize: %w: %d sizes for %d children", ErrSnapshotMismatch, len(snapshot), len(parent.Items))
	}

	res, err := geometry.Redistribute(index, pan, snapshot, minSize)
	if err != nil {
		return t, geometry.Result{}, fmt.Errorf("resize %s: %w", resizeID, err)
	}

	next := t.clone()
	for i, size := range res.NextSizes {
		id := parent.Items[i]
		next.nodes[id] = withSize(next.nodes[id], size)
	}

	return next, res, nil
}
