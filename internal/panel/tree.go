package panel

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNodeNotFound           = errors.New("node not found")
	ErrNotSplit               = errors.New("node is not a split")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrSnapshotMismatch       = errors.New("snapshot does not match children")
	ErrMeasurementUnavailable = errors.New("measurement unavailable")
	ErrParentMismatch         = errors.New("parent does not match")
	ErrDuplicateID            = errors.New("duplicate node id")
	ErrInvalidTree            = errors.New("invalid tree")
)

// Tree is an immutable panel tree stored as a flat map of id to node.
// Children are referenced by id and every child records its single parent.
// Operations never modify the receiver; they return a new tree.
type Tree struct {
	root    string
	nodes   map[string]Node
	parents map[string]string
}

// New builds a tree rooted at root from nodes and validates it.
func New(root string, nodes ...Node) (*Tree, error) {
	t := &Tree{
		root:    root,
		nodes:   make(map[string]Node, len(nodes)),
		parents: make(map[string]string, len(nodes)),
	}

	for _, n := range nodes {
		if _, ok := t.nodes[n.NodeID()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, n.NodeID())
		}
		t.nodes[n.NodeID()] = n
	}

	for _, n := range nodes {
		s, ok := n.(Split)
		if !ok {
			continue
		}
		for _, child := range s.Items {
			if prev, ok := t.parents[child]; ok {
				return nil, fmt.Errorf("%w: %s is a child of both %s and %s", ErrInvalidTree, child, prev, s.ID)
			}
			t.parents[child] = s.ID
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Default returns the starting workspace: a row on top split into three
// columns, the middle one split again into two rows, above a single panel.
func Default() *Tree {
	t, err := New("root",
		Split{ID: "root", Size: 1000, Direction: Vertical, Items: []string{"a", "b"}},
		Split{ID: "a", Size: 500, Direction: Horizontal, Items: []string{"c", "d", "third"}},
		Leaf{ID: "b", Size: 500, Content: "b"},
		Leaf{ID: "c", Size: 500, Content: "c"},
		Split{ID: "d", Size: 500, Direction: Vertical, Items: []string{"e", "f"}},
		Leaf{ID: "e", Size: 500, Content: "e"},
		Leaf{ID: "f", Size: 500, Content: "f"},
		Leaf{ID: "third", Size: 500, Content: "third"},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Single returns a tree holding one leaf.
func Single(id, content string) *Tree {
	t, err := New(id, Leaf{ID: id, Size: DefaultLeafSize, Content: content})
	if err != nil {
		panic(err)
	}
	return t
}

// Root returns the root id.
func (t *Tree) Root() string {
	return t.root
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node stored under id.
func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Parent returns the id of the split holding id. The root has no parent.
func (t *Tree) Parent(id string) (string, bool) {
	p, ok := t.parents[id]
	return p, ok
}

// SplitNode returns the split stored under id.
func (t *Tree) SplitNode(id string) (Split, error) {
	n, ok := t.nodes[id]
	if !ok {
		return Split{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	s, ok := n.(Split)
	if !ok {
		return Split{}, fmt.Errorf("%w: %s", ErrNotSplit, id)
	}
	return s, nil
}

// Sizes returns the sizes of parentID's children in order.
func (t *Tree) Sizes(parentID string) ([]float64, error) {
	s, err := t.SplitNode(parentID)
	if err != nil {
		return nil, err
	}
	sizes := make([]float64, len(s.Items))
	for i, id := range s.Items {
		sizes[i] = t.nodes[id].NodeSize()
	}
	return sizes, nil
}

// Walk visits every node depth first in render order.
func (t *Tree) Walk(fn func(n Node, depth int)) {
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		n, ok := t.nodes[id]
		if !ok {
			return
		}
		fn(n, depth)
		if s, ok := n.(Split); ok {
			for _, child := range s.Items {
				walk(child, depth+1)
			}
		}
	}
	walk(t.root, 0)
}

// Leaves returns the leaves in render order.
func (t *Tree) Leaves() []Leaf {
	var leaves []Leaf
	t.Walk(func(n Node, _ int) {
		if l, ok := n.(Leaf); ok {
			leaves = append(leaves, l)
		}
	})
	return leaves
}

// IDs returns all node ids, sorted.
func (t *Tree) IDs() []string {
	ids := make([]string, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Validate checks the structural invariants: keys match ids, every
// referenced child exists, splits are non-empty and have a known direction,
// every node has at most one parent and the recorded back-references agree,
// and every node is reachable from the root exactly once.
func (t *Tree) Validate() error {
	if _, ok := t.nodes[t.root]; !ok {
		return fmt.Errorf("%w: root %s missing", ErrInvalidTree, t.root)
	}
	if p, ok := t.parents[t.root]; ok {
		return fmt.Errorf("%w: root %s has parent %s", ErrInvalidTree, t.root, p)
	}

	owners := make(map[string]string, len(t.nodes))
	for key, n := range t.nodes {
		if n.NodeID() != key {
			return fmt.Errorf("%w: key %s holds node %s", ErrInvalidTree, key, n.NodeID())
		}
		s, ok := n.(Split)
		if !ok {
			continue
		}
		if !s.Direction.Valid() {
			return fmt.Errorf("%w: split %s has direction %q", ErrInvalidTree, s.ID, s.Direction)
		}
		if len(s.Items) == 0 {
			return fmt.Errorf("%w: split %s has no items", ErrInvalidTree, s.ID)
		}
		for _, child := range s.Items {
			if _, ok := t.nodes[child]; !ok {
				return fmt.Errorf("%w: split %s references missing %s", ErrInvalidTree, s.ID, child)
			}
			if prev, ok := owners[child]; ok {
				return fmt.Errorf("%w: %s is a child of both %s and %s", ErrInvalidTree, child, prev, s.ID)
			}
			owners[child] = s.ID
		}
	}

	if len(owners) != len(t.parents) {
		return fmt.Errorf("%w: %d parent links recorded, %d found", ErrInvalidTree, len(t.parents), len(owners))
	}
	for child, owner := range owners {
		if t.parents[child] != owner {
			return fmt.Errorf("%w: %s recorded under %s, found under %s", ErrInvalidTree, child, t.parents[child], owner)
		}
	}

	seen := make(map[string]bool, len(t.nodes))
	stack := []string{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			return fmt.Errorf("%w: cycle through %s", ErrInvalidTree, id)
		}
		seen[id] = true
		if s, ok := t.nodes[id].(Split); ok {
			stack = append(stack, s.Items...)
		}
	}
	if len(seen) != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes unreachable", ErrInvalidTree, len(t.nodes)-len(seen), len(t.nodes))
	}

	return nil
}

// clone copies the maps. Nodes are values and their Items slices are never
// written in place, so sharing them is safe.
func (t *Tree) clone() *Tree {
	next := &Tree{
		root:    t.root,
		nodes:   make(map[string]Node, len(t.nodes)+2),
		parents: make(map[string]string, len(t.parents)+2),
	}
	for k, v := range t.nodes {
		next.nodes[k] = v
	}
	for k, v := range t.parents {
		next.parents[k] = v
	}
	return next
}

// commit validates next and falls back to t when it is broken.
func (t *Tree) commit(next *Tree) (*Tree, error) {
	if err := next.Validate(); err != nil {
		return t, err
	}
	return next, nil
}
