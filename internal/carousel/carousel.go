package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a carousel is built over zero items
	ErrEmpty = errors.New("carousel needs at least one item")
	// ErrOutOfRange is returned when an index falls outside [0, Len())
	ErrOutOfRange = errors.New("index out of range")
)

// Controller owns the circular selection over a fixed number of items.
// It is not safe for concurrent use; the hosting view mutates it from its own goroutine.
type Controller struct {
	n      int
	active int
	paused bool
}

// New creates a controller over n items with the first item active
func New(n int) (*Controller, error) {
	if n < 1 {
		return nil, fmt.Errorf("new carousel with %d items: %w", n, ErrEmpty)
	}
	return &Controller{n: n}, nil
}

// Len returns the number of items
func (c *Controller) Len() int {
	return c.n
}

// ActiveIndex returns the currently centered item
func (c *Controller) ActiveIndex() int {
	return c.active
}

// IsActive reports whether index is the centered item
func (c *Controller) IsActive(index int) bool {
	return index == c.active
}

// Advance moves to the next item, wrapping at the end
func (c *Controller) Advance() {
	c.active = (c.active + 1) % c.n
}

// Retreat moves to the previous item, wrapping at the start
func (c *Controller) Retreat() {
	c.active = (c.active - 1 + c.n) % c.n
}

// JumpTo makes index the active item
func (c *Controller) JumpTo(index int) error {
	if index < 0 || index >= c.n {
		return fmt.Errorf("jump to %d of %d: %w", index, c.n, ErrOutOfRange)
	}
	c.active = index
	return nil
}

// SetPaused toggles autoplay suppression. It never moves the active item.
func (c *Controller) SetPaused(paused bool) {
	c.paused = paused
}

// IsPaused reports whether autoplay is currently suppressed
func (c *Controller) IsPaused() bool {
	return c.paused
}

// RelativePosition returns the signed circular distance from the active item to index.
// Positive values are to the right. When the distance is exactly half the ring
// (even item counts only) the item is placed on the left.
func (c *Controller) RelativePosition(index int) int {
	// normalise so out-of-range indices still land on the ring
	raw := ((index-c.active)%c.n + c.n) % c.n
	if 2*raw >= c.n {
		raw -= c.n
	}
	return raw
}
