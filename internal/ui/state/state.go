package state

import (
	"fmt"

	"coursepage/internal/accordion"
	"coursepage/internal/carousel"
	"coursepage/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Content
	Page *domain.Page

	// Controllers, keyed by section id
	Carousels  map[string]*carousel.Controller
	Accordions map[string]*accordion.Controller

	// Focus
	Focusable   []string       // interactive section ids in page order
	FocusIndex  int            // index into Focusable, -1 when nothing is focused
	PanelCursor map[string]int // highlighted panel per accordion

	// UI state
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates state for a page with carousels on their first item and accordions closed
func NewAppState(page *domain.Page) (*AppState, error) {
	s := &AppState{
		Page:        page,
		Carousels:   make(map[string]*carousel.Controller),
		Accordions:  make(map[string]*accordion.Controller),
		PanelCursor: make(map[string]int),
		FocusIndex:  -1,
	}
	for _, sec := range page.Sections {
		id := sec.Header().ID
		var err error
		switch v := sec.(type) {
		case *domain.TestimonialsSection:
			s.Carousels[id], err = carousel.New(len(v.Testimonials))
		case *domain.FAQSection:
			s.Accordions[id], err = accordion.New(len(v.Items))
		case *domain.ModulesSection:
			s.Accordions[id], err = accordion.New(len(v.Modules))
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", id, err)
		}
		s.Focusable = append(s.Focusable, id)
	}
	return s, nil
}

// FocusedID returns the id of the focused section, or "" when none is focused
func (s *AppState) FocusedID() string {
	if s.FocusIndex < 0 || s.FocusIndex >= len(s.Focusable) {
		return ""
	}
	return s.Focusable[s.FocusIndex]
}

// FocusedSection returns the focused section, or nil
func (s *AppState) FocusedSection() domain.Section {
	return s.Section(s.FocusedID())
}

// Section finds a section by id
func (s *AppState) Section(id string) domain.Section {
	if id == "" {
		return nil
	}
	for _, sec := range s.Page.Sections {
		if sec.Header().ID == id {
			return sec
		}
	}
	return nil
}

// FocusBy moves focus delta steps through the interactive sections, wrapping around.
// From no focus, a positive step lands on the first section and a negative one on the last.
func (s *AppState) FocusBy(delta int) {
	n := len(s.Focusable)
	if n == 0 {
		s.FocusIndex = -1
		return
	}
	if s.FocusIndex < 0 {
		if delta >= 0 {
			s.FocusIndex = 0
		} else {
			s.FocusIndex = n - 1
		}
		return
	}
	s.FocusIndex = ((s.FocusIndex+delta)%n + n) % n
}

// FocusID focuses the section with id; it reports false when id is not interactive
func (s *AppState) FocusID(id string) bool {
	for i, fid := range s.Focusable {
		if fid == id {
			s.FocusIndex = i
			return true
		}
	}
	return false
}

// Blur clears focus
func (s *AppState) Blur() {
	s.FocusIndex = -1
}

// SetStatus sets the status line
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}
