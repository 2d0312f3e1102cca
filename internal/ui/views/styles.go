package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Page palette
var (
	colorCyan  = lipgloss.Color("#00CBD9")
	colorGold  = lipgloss.Color("#FFD700")
	colorMuted = lipgloss.Color("#8696A0")
	colorText  = lipgloss.Color("#E5E5E5")
	colorRed   = lipgloss.Color("#FC2C54")
	colorGreen = lipgloss.Color("#25D366")
	colorEdge  = lipgloss.Color("238")
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusMode    lipgloss.Style
	Scroll        lipgloss.Style
	Eyebrow       lipgloss.Style
	Heading       lipgloss.Style
	Subtitle      lipgloss.Style
	FocusBar      lipgloss.Style
	Button        lipgloss.Style
	ContactButton lipgloss.Style
	Highlight     lipgloss.Style
	Gold          lipgloss.Style
	Accent        lipgloss.Style
	Italic        lipgloss.Style
	Tagline       lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardGold     lipgloss.Style
	CenterCard   lipgloss.Style
	AdjacentCard lipgloss.Style
	Badge        lipgloss.Style

	// Carousel pagination
	Dot       lipgloss.Style
	DotActive lipgloss.Style

	// Accordion
	PanelHeader       lipgloss.Style
	PanelHeaderOpen   lipgloss.Style
	PanelHeaderCursor lipgloss.Style
	PanelBody         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusMode:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(colorCyan).Padding(0, 1),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Eyebrow:       lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Heading:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		Subtitle:      lipgloss.NewStyle().Foreground(colorGold),
		FocusBar:      lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(colorCyan),
		Button:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(colorCyan).Padding(0, 2),
		ContactButton: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colorGreen).Padding(0, 2),
		Highlight:     lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
		Gold:          lipgloss.NewStyle().Foreground(colorGold).Bold(true),
		Accent:        lipgloss.NewStyle().Foreground(colorCyan),
		Italic:        lipgloss.NewStyle().Italic(true).Foreground(colorText),
		Tagline:       lipgloss.NewStyle().Foreground(colorRed),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorEdge).
			Padding(0, 1),
		CardGold: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGold).
			Padding(0, 1),
		CenterCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1),
		AdjacentCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorEdge).
			Faint(true).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(colorGold).Padding(0, 1),

		Dot:       lipgloss.NewStyle().Foreground(colorEdge),
		DotActive: lipgloss.NewStyle().Foreground(colorCyan),

		PanelHeader:       lipgloss.NewStyle().Bold(true),
		PanelHeaderOpen:   lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		PanelHeaderCursor: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("238")),
		PanelBody:         lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("252")),
	}
}

// accentColor returns the plan accent, falling back to the page cyan
func accentColor(hex string) lipgloss.TerminalColor {
	if hex == "" {
		return colorCyan
	}
	return lipgloss.Color(hex)
}
