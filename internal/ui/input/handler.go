package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"coursepage/internal/domain"
	"coursepage/internal/ui/input/keys"
	"coursepage/internal/ui/input/modes"
	"coursepage/internal/ui/input/types"
)

type Handler struct {
	keys  keys.KeyMap
	modes map[types.Mode]types.ModeHandler
}

func New() *Handler {
	km := keys.Default()
	h := &Handler{
		keys:  km,
		modes: make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeBrowse] = modes.NewBrowseMode(km)
	h.modes[types.ModeCarousel] = modes.NewCarouselMode(km)
	h.modes[types.ModeAccordion] = modes.NewAccordionMode(km)

	return h
}

// HandleKey routes the key to the mode of the focused section first, then to browse mode
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	mode := h.ModeFor(ctx)
	if mode != types.ModeBrowse {
		if actions, consumed := h.modes[mode].HandleKey(msg, ctx); consumed {
			return actions
		}
	}
	actions, _ := h.modes[types.ModeBrowse].HandleKey(msg, ctx)
	return actions
}

// ModeFor returns the input mode implied by the focused section
func (h *Handler) ModeFor(ctx types.Context) types.Mode {
	switch ctx.FocusedKind() {
	case domain.KindTestimonials:
		return types.ModeCarousel
	case domain.KindFAQ, domain.KindModules:
		return types.ModeAccordion
	default:
		return types.ModeBrowse
	}
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName(ctx types.Context) string {
	return h.modes[h.ModeFor(ctx)].Name()
}

// Keys returns the key map, used by the help bar
func (h *Handler) Keys() keys.KeyMap {
	return h.keys
}

// RegisterMode replaces a mode handler
func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}
