package panel

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers for new panels.
type IDGenerator interface {
	NextID() string
}

// CounterIDs generates prefix1, prefix2, ... in order.
type CounterIDs struct {
	prefix string
	n      int
}

// NewCounterIDs creates a counter starting at 1.
func NewCounterIDs(prefix string) *CounterIDs {
	return &CounterIDs{prefix: prefix}
}

// NextID implements IDGenerator.
func (c *CounterIDs) NextID() string {
	c.n++
	return c.prefix + strconv.Itoa(c.n)
}

// UUIDs generates random version 4 UUIDs.
type UUIDs struct{}

// NextID implements IDGenerator.
func (UUIDs) NextID() string {
	return uuid.NewString()
}
