package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged    EventType = "SlideChanged"
	EventAutoplayPaused  EventType = "AutoplayPaused"
	EventPanelToggled    EventType = "PanelToggled"
	EventSectionFocused  EventType = "SectionFocused"
	EventContentReloaded EventType = "ContentReloaded"
	EventContentInvalid  EventType = "ContentInvalid"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideCause says what moved the carousel
type SlideCause string

const (
	CauseAutoplay SlideCause = "autoplay"
	CauseAdvance  SlideCause = "advance"
	CauseRetreat  SlideCause = "retreat"
	CauseJump     SlideCause = "jump"
)

// SlideChangedEvent is emitted when the carousel's active item changes
type SlideChangedEvent struct {
	SectionID string
	From      int
	To        int
	Cause     SlideCause
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// AutoplayPausedEvent is emitted when hover/focus pauses or resumes autoplay
type AutoplayPausedEvent struct {
	SectionID string
	Paused    bool
}

func (e AutoplayPausedEvent) Type() EventType { return EventAutoplayPaused }

// PanelToggledEvent is emitted when an accordion panel opens or closes
type PanelToggledEvent struct {
	SectionID string
	Index     int
	Open      bool
}

func (e PanelToggledEvent) Type() EventType { return EventPanelToggled }

// SectionFocusedEvent is emitted when keyboard focus moves to a section
type SectionFocusedEvent struct {
	SectionID string
	Kind      SectionKind
}

func (e SectionFocusedEvent) Type() EventType { return EventSectionFocused }

// ContentReloadedEvent is emitted when the content file changed and validated
type ContentReloadedEvent struct {
	Path string
	Page *Page
}

func (e ContentReloadedEvent) Type() EventType { return EventContentReloaded }

// ContentInvalidEvent is emitted when a changed content file failed to load
type ContentInvalidEvent struct {
	Path string
	Err  error
}

func (e ContentInvalidEvent) Type() EventType { return EventContentInvalid }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	ContentFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
