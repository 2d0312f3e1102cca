package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"coursepage/internal/accordion"
	"coursepage/internal/carousel"
	"coursepage/internal/content"
	"coursepage/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Narrow bool

	Page        *domain.Page
	Carousels   map[string]*carousel.Controller
	Accordions  map[string]*accordion.Controller
	FocusedID   string
	PanelCursor map[string]int
	Autoplay    bool // autoplay enabled in config

	// Frame
	Body          string // the scrolled page, as cut by the viewport
	ScrollPercent float64
	ModeName      string
	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	ShowHelpBar   bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// SectionSpan is the line range a section occupies in the rendered page
type SectionSpan struct {
	ID    string
	Kind  domain.SectionKind
	Start int // first line
	End   int // one past the last line
}

// Contains reports whether line falls inside the span
func (s SectionSpan) Contains(line int) bool {
	return line >= s.Start && line < s.End
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	md     *content.Markdown
}

// NewRenderer creates a new renderer
func NewRenderer(md *content.Markdown) *Renderer {
	if md == nil {
		md = content.NewMarkdown(content.DefaultStyle)
	}
	return &Renderer{
		styles: NewStyles(),
		md:     md,
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete frame around the already scrolled page body
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.renderTitleBar(state))
	b.WriteString("\n")
	b.WriteString(state.Body)
	b.WriteString("\n")
	b.WriteString(r.renderStatusBar(state))

	if state.ShowHelp {
		hm := state.HelpModel
		hm.ShowAll = true
		b.WriteString("\n")
		b.WriteString(hm.View(state.Keys))
	} else if state.ShowHelpBar {
		b.WriteString("\n")
		b.WriteString(state.HelpModel.View(state.Keys))
	}
	return b.String()
}

// ChromeHeight returns how many lines Render adds around the body
func (r *Renderer) ChromeHeight(state ViewState) int {
	h := 2 // title bar + status bar
	if state.ShowHelp {
		hm := state.HelpModel
		hm.ShowAll = true
		h += lipgloss.Height(hm.View(state.Keys))
	} else if state.ShowHelpBar {
		h++
	}
	return h
}

func (r *Renderer) renderTitleBar(state ViewState) string {
	title := "coursepage"
	if state.Page != nil && state.Page.Title != "" {
		title = state.Page.Title
	}
	logo := r.styles.Title.Render(title)
	scroll := r.styles.Scroll.Render(fmt.Sprintf("%3.0f%%", state.ScrollPercent*100))

	gap := state.Width - lipgloss.Width(logo) - lipgloss.Width(scroll)
	if gap < 1 {
		gap = 1
	}
	return logo + strings.Repeat(" ", gap) + scroll
}

func (r *Renderer) renderStatusBar(state ViewState) string {
	mode := r.styles.StatusMode.Render(state.ModeName)
	msg := state.StatusMessage
	if msg == "" {
		return mode
	}
	if state.StatusIsError {
		return mode + " " + r.styles.StatusError.Render(msg)
	}
	return mode + " " + r.styles.Status.Render(msg)
}

// RenderPage renders every section of the page, one under the other, and records where
// each section starts so the viewport can scroll a focused section into view
func (r *Renderer) RenderPage(state ViewState) (string, []SectionSpan) {
	if state.Page == nil {
		return "", nil
	}
	var (
		b     strings.Builder
		spans = make([]SectionSpan, 0, len(state.Page.Sections))
		line  int
	)
	for i, sec := range state.Page.Sections {
		block := r.renderSection(sec, state)
		if i > 0 {
			b.WriteString("\n\n")
			line += 2
		}
		height := lipgloss.Height(block)
		spans = append(spans, SectionSpan{
			ID:    sec.Header().ID,
			Kind:  sec.Kind(),
			Start: line,
			End:   line + height,
		})
		b.WriteString(block)
		line += height - 1
	}
	return b.String(), spans
}

func (r *Renderer) renderSection(sec domain.Section, state ViewState) string {
	focused := sec.Header().ID == state.FocusedID && state.FocusedID != ""
	width := state.Width
	if focused {
		// leave room for the focus bar
		width -= 2
	}
	if width < 20 {
		width = 20
	}
	sc := sectionContext{ViewState: state, width: width, focused: focused}

	var body string
	switch v := sec.(type) {
	case *domain.SolutionsSection:
		body = r.renderSolutions(v, sc)
	case *domain.NetworkingSection:
		body = r.renderNetworking(v, sc)
	case *domain.PricingSection:
		body = r.renderPricing(v, sc)
	case *domain.GuaranteeSection:
		body = r.renderGuarantee(v, sc)
	case *domain.TestimonialsSection:
		body = r.renderCarousel(v, sc)
	case *domain.AudienceSection:
		body = r.renderAudience(v, sc)
	case *domain.QuoteSection:
		body = r.renderQuote(v, sc)
	case *domain.ModulesSection:
		body = r.renderModules(v, sc)
	case *domain.FAQSection:
		body = r.renderFAQ(v, sc)
	case *domain.ManifestoSection:
		body = r.renderManifesto(v, sc)
	case *domain.FooterSection:
		body = r.renderFooter(v, sc)
	}

	block := body
	if head := r.renderHeader(sec.Header(), width); head != "" {
		block = head + "\n\n" + body
	}
	if focused {
		return r.styles.FocusBar.Render(block)
	}
	return block
}

// sectionContext is the ViewState plus what one section needs to lay itself out
type sectionContext struct {
	ViewState
	width   int
	focused bool
}

func (r *Renderer) renderHeader(h domain.SectionHeader, width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var lines []string
	if h.Eyebrow != "" {
		lines = append(lines, center.Render(r.styles.Eyebrow.Render(strings.ToUpper(h.Eyebrow))))
	}
	if h.Title != "" {
		lines = append(lines, center.Render(r.styles.Heading.Render(h.Title)))
	}
	if h.Subtitle != "" {
		lines = append(lines, center.Render(r.styles.Subtitle.Render(strings.ToUpper(h.Subtitle))))
	}
	return strings.Join(lines, "\n")
}

// markdown renders src for the terminal, falling back to plain text
func (r *Renderer) markdown(src string, width int) string {
	out, err := r.md.Terminal(src, width)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(content.Plain(src))
	}
	return out
}

func (r *Renderer) button(cta *domain.CallToAction, style lipgloss.Style) string {
	if cta == nil || cta.Label == "" {
		return ""
	}
	out := style.Render(strings.ToUpper(cta.Label))
	if cta.URL != "" {
		out += " " + r.styles.Dim.Render(cta.URL)
	}
	return out
}

func centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// columns lays blocks side by side when wide enough, otherwise stacks them
func columns(blocks []string, width int, narrow bool) string {
	if len(blocks) == 0 {
		return ""
	}
	if narrow {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return centered(lipgloss.JoinHorizontal(lipgloss.Top, spaced(blocks)...), width)
}

func spaced(blocks []string) []string {
	out := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, b)
	}
	return out
}

// cardWidth splits width between n cards with two columns of gap each
func cardWidth(width, n int, narrow bool) int {
	if narrow || n <= 1 {
		return min(width, 60)
	}
	w := (width - 2*(n-1)) / n
	return max(w, 20)
}
