package accordion

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeCount is returned when an accordion is built with a negative panel count
	ErrNegativeCount = errors.New("panel count must not be negative")
	// ErrOutOfRange is returned when a panel index falls outside [0, Len())
	ErrOutOfRange = errors.New("panel index out of range")
)

// closed marks the state where no panel is open
const closed = -1

// Controller keeps at most one of a fixed number of panels open
type Controller struct {
	n    int
	open int
}

// New creates a controller over n panels, all closed
func New(n int) (*Controller, error) {
	if n < 0 {
		return nil, fmt.Errorf("new accordion with %d panels: %w", n, ErrNegativeCount)
	}
	return &Controller{n: n, open: closed}, nil
}

// Len returns the number of panels
func (c *Controller) Len() int {
	return c.n
}

// Toggle collapses index when it is open, otherwise opens it and closes whichever panel was open
func (c *Controller) Toggle(index int) error {
	if index < 0 || index >= c.n {
		return fmt.Errorf("toggle panel %d of %d: %w", index, c.n, ErrOutOfRange)
	}
	if c.open == index {
		c.open = closed
	} else {
		c.open = index
	}
	return nil
}

// IsOpen reports whether index is the open panel
func (c *Controller) IsOpen(index int) bool {
	return c.open != closed && c.open == index
}

// OpenIndex returns the open panel, if any
func (c *Controller) OpenIndex() (int, bool) {
	if c.open == closed {
		return 0, false
	}
	return c.open, true
}

// Close collapses every panel
func (c *Controller) Close() {
	c.open = closed
}
