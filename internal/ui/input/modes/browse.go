package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coursepage/internal/ui/input/keys"
	"coursepage/internal/ui/input/types"
)

// BrowseMode scrolls the page and moves focus between interactive sections.
// It also serves as the fallback for keys a focused section does not use.
type BrowseMode struct {
	keys keys.KeyMap
}

func NewBrowseMode(km keys.KeyMap) *BrowseMode {
	return &BrowseMode{keys: km}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true

	case key.Matches(msg, m.keys.NextSection):
		return []types.Action{types.FocusAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.PrevSection):
		return []types.Action{types.FocusAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Blur):
		if ctx.FocusedID() == "" {
			return nil, false
		}
		return []types.Action{types.BlurAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.ScrollAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.ScrollAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true
	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.ScrollAction{Direction: "home"}}, true
	case key.Matches(msg, m.keys.End):
		return []types.Action{types.ScrollAction{Direction: "end"}}, true
	}
	return nil, false
}
