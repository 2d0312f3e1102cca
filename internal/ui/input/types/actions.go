package types

// Scroll actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

// Focus actions
type FocusAction struct {
	Delta int // +1 next interactive section, -1 previous
}

func (a FocusAction) Type() string { return "focus" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// Carousel actions
type AdvanceAction struct{}

func (a AdvanceAction) Type() string { return "advance" }

type RetreatAction struct{}

func (a RetreatAction) Type() string { return "retreat" }

type JumpAction struct {
	Index int
}

func (a JumpAction) Type() string { return "jump" }

// Accordion actions
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

type TogglePanelAction struct {
	Index int // -1 for the panel under the cursor
}

func (a TogglePanelAction) Type() string { return "toggle_panel" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
