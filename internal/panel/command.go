package panel

import (
	"fmt"

	"github.com/avitaltamir/tilegrid/internal/geometry"
	"go.uber.org/zap"
)

// Command is a request to change the tree. It is one of ResizeCmd,
// AddColumnCmd, AddRowCmd or RemoveCmd.
type Command interface {
	command()
}

// ResizeCmd moves the divider after ResizeID inside ParentID.
type ResizeCmd struct {
	Snapshot []float64
	ParentID string
	ResizeID string
	Pan      float64
}

// AddColumnCmd splits TargetID along the horizontal axis.
type AddColumnCmd struct {
	// ParentID, when set, must name TargetID's parent.
	ParentID string
	TargetID string
	Before   bool
}

// AddRowCmd splits TargetID along the vertical axis.
type AddRowCmd struct {
	ParentID string
	TargetID string
	Before   bool
}

// RemoveCmd removes the child at Index from ParentID.
type RemoveCmd struct {
	ParentID string
	Index    int
}

func (ResizeCmd) command() {}

func (AddColumnCmd) command() {}

func (AddRowCmd) command() {}

func (RemoveCmd) command() {}

// Reducer applies commands to trees.
type Reducer struct {
	Measurer Measurer
	IDs      IDGenerator
	// MinSize is the resize floor. Zero means geometry.DefaultMinSize.
	MinSize float64
	// LeafSize is the size of children created by turning a panel into a
	// split. Zero means DefaultLeafSize.
	LeafSize float64
	Logger   *zap.Logger
}

// Apply returns the tree that results from cmd. On error the input tree is
// returned unchanged. Commands the reducer does not know leave the tree
// untouched.
func (r Reducer) Apply(t *Tree, cmd Command) (*Tree, error) {
	log := r.logger()

	var (
		next *Tree
		err  error
	)

	switch c := cmd.(type) {
	case ResizeCmd:
		var res geometry.Result
		next, res, err = t.Resize(c.ParentID, c.ResizeID, c.Pan, c.Snapshot, r.minSize())
		if err == nil && res.Remainder != 0 {
			log.Debug("resize hit floor",
				zap.String("parent", c.ParentID),
				zap.String("divider", c.ResizeID),
				zap.Float64("pan", c.Pan),
				zap.Float64("remainder", res.Remainder))
		}
	case AddColumnCmd:
		next, err = r.split(t, c.ParentID, c.TargetID, Horizontal, c.Before)
	case AddRowCmd:
		next, err = r.split(t, c.ParentID, c.TargetID, Vertical, c.Before)
	case RemoveCmd:
		next, err = t.Remove(c.ParentID, c.Index)
	default:
		log.Debug("ignoring command", zap.String("type", fmt.Sprintf("%T", cmd)))
		return t, nil
	}

	if err != nil {
		log.Warn("command failed", zap.String("type", fmt.Sprintf("%T", cmd)), zap.Error(err))
		return t, err
	}
	log.Debug("command applied", zap.String("type", fmt.Sprintf("%T", cmd)), zap.Int("nodes", next.Len()))
	return next, nil
}

func (r Reducer) split(t *Tree, parentID, targetID string, axis Direction, before bool) (*Tree, error) {
	if parentID != "" {
		actual, _ := t.Parent(targetID)
		if actual != parentID {
			return t, fmt.Errorf("split %s: %w: got %q, tree has %q", targetID, ErrParentMismatch, parentID, actual)
		}
	}
	return t.Split(targetID, axis, before, SplitEnv{
		Measurer: r.Measurer,
		IDs:      r.IDs,
		LeafSize: r.LeafSize,
	})
}

func (r Reducer) minSize() float64 {
	if r.MinSize > 0 {
		return r.MinSize
	}
	return geometry.DefaultMinSize
}

func (r Reducer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
