package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"coursepage/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeBrowse Mode = iota
	ModeCarousel
	ModeAccordion
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedID() string
	FocusedKind() domain.SectionKind
	ItemCount() int   // items in the focused section
	PanelCursor() int // highlighted panel of the focused accordion
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
