package input

import (
	"coursepage/internal/content"
	"coursepage/internal/domain"
	"coursepage/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// FocusedID returns the focused section id
func (c *ModelContext) FocusedID() string {
	return c.State.FocusedID()
}

// FocusedKind returns the kind of the focused section, or "" when none is focused
func (c *ModelContext) FocusedKind() domain.SectionKind {
	if sec := c.State.FocusedSection(); sec != nil {
		return sec.Kind()
	}
	return ""
}

// ItemCount returns the number of cards or panels in the focused section
func (c *ModelContext) ItemCount() int {
	if sec := c.State.FocusedSection(); sec != nil {
		return content.ItemCount(sec)
	}
	return 0
}

// PanelCursor returns the highlighted panel of the focused accordion
func (c *ModelContext) PanelCursor() int {
	return c.State.PanelCursor[c.State.FocusedID()]
}
