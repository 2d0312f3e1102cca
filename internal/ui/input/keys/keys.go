// Package keys holds the key bindings shared by the input modes and the help bar.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding of the page viewer
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	NextSection key.Binding
	PrevSection key.Binding
	Blur        key.Binding

	Prev   key.Binding
	Next   key.Binding
	Jump   key.Binding
	Toggle key.Binding

	Help  key.Binding
	Pager key.Binding
	Quit  key.Binding
	Force key.Binding
}

// Default returns the default key map
func Default() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),

		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		Blur:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave section")),

		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "open/close")),

		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Pager: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pager")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Prev, k.Next, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.NextSection, k.PrevSection, k.Blur},
		{k.Prev, k.Next, k.Jump, k.Toggle},
		{k.Help, k.Pager, k.Quit},
	}
}

// Digit returns the zero-based index for a digit key, or -1
func Digit(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}
