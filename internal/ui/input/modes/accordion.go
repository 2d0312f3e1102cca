package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coursepage/internal/ui/input/keys"
	"coursepage/internal/ui/input/types"
)

// AccordionMode handles keys while a faq or modules accordion has focus
type AccordionMode struct {
	keys keys.KeyMap
}

func NewAccordionMode(km keys.KeyMap) *AccordionMode {
	return &AccordionMode{keys: km}
}

func (m *AccordionMode) Name() string {
	return "accordion"
}

func (m *AccordionMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if ctx.ItemCount() == 0 {
		return nil, false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if ctx.PanelCursor() == 0 {
			// let the page scroll when the cursor is already on the first panel
			return nil, false
		}
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Down):
		if ctx.PanelCursor() >= ctx.ItemCount()-1 {
			return nil, false
		}
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Toggle):
		return []types.Action{types.TogglePanelAction{Index: -1}}, true
	case key.Matches(msg, m.keys.Jump):
		i := keys.Digit(msg.String())
		if i < 0 || i >= ctx.ItemCount() {
			return nil, true
		}
		return []types.Action{types.TogglePanelAction{Index: i}}, true
	}
	return nil, false
}
