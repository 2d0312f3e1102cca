package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coursepage/internal/ui/input/keys"
	"coursepage/internal/ui/input/types"
)

// CarouselMode handles keys while a testimonials carousel has focus
type CarouselMode struct {
	keys keys.KeyMap
}

func NewCarouselMode(km keys.KeyMap) *CarouselMode {
	return &CarouselMode{keys: km}
}

func (m *CarouselMode) Name() string {
	return "carousel"
}

func (m *CarouselMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.RetreatAction{}}, true
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.AdvanceAction{}}, true
	case key.Matches(msg, m.keys.Jump):
		i := keys.Digit(msg.String())
		if i < 0 || i >= ctx.ItemCount() {
			// swallow digits past the last card so they do nothing
			return nil, true
		}
		return []types.Action{types.JumpAction{Index: i}}, true
	}
	return nil, false
}
