package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coursepage/internal/carousel"
	"coursepage/internal/domain"
)

// renderCarousel draws the testimonial cards the controller places on screen:
// the center card in full color, its neighbours faint on either side, the rest not at all
func (r *Renderer) renderCarousel(s *domain.TestimonialsSection, sc sectionContext) string {
	ctrl := sc.Carousels[s.ID]
	if ctrl == nil {
		return ""
	}

	visible := ctrl.Visible()
	if sc.Narrow {
		// only the center card fits
		visible = []carousel.Placement{ctrl.Placement(ctrl.ActiveIndex())}
	}

	cw := min(sc.width-4, 40)
	if !sc.Narrow {
		cw = min((sc.width-4)/3, 44)
	}
	cards := make([]string, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, r.renderChatCard(s.Testimonials[p.Index], p, cw))
	}

	prev := r.styles.Dim.Render("‹")
	next := r.styles.Dim.Render("›")
	if sc.focused {
		prev = r.styles.Highlight.Render("‹")
		next = r.styles.Highlight.Render("›")
	}
	row := append([]string{prev, " "}, spaced(cards)...)
	row = append(row, " ", next)
	track := centered(lipgloss.JoinHorizontal(lipgloss.Center, row...), sc.width)

	parts := []string{track, centered(r.renderDots(ctrl), sc.width)}
	if state := r.autoplayLabel(ctrl, sc); state != "" {
		parts = append(parts, centered(state, sc.width))
	}
	if btn := r.button(s.CTA, r.styles.Button); btn != "" {
		parts = append(parts, "", centered(btn, sc.width))
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderChatCard(t domain.Testimonial, p carousel.Placement, width int) string {
	var style lipgloss.Style
	switch p.Tier {
	case carousel.TierCenter:
		style = r.styles.CenterCard
	case carousel.TierAdjacent:
		style = r.styles.AdjacentCard
	default:
		return ""
	}
	inner := width - 4
	head := r.styles.Heading.Render(t.Name)
	if t.Role != "" {
		head += "\n" + r.styles.Dim.Render(t.Role)
	}
	msg := lipgloss.NewStyle().Width(inner).Render(t.Message)
	stamp := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(r.styles.Dim.Render(t.Timestamp + " ✓✓"))
	return style.Width(width - 2).Render(head + "\n\n" + msg + "\n" + stamp)
}

func (r *Renderer) renderDots(ctrl *carousel.Controller) string {
	dots := make([]string, ctrl.Len())
	for i := range dots {
		if ctrl.IsActive(i) {
			dots[i] = r.styles.DotActive.Render("━━")
		} else {
			dots[i] = r.styles.Dot.Render("•")
		}
	}
	return strings.Join(dots, " ")
}

func (r *Renderer) autoplayLabel(ctrl *carousel.Controller, sc sectionContext) string {
	switch {
	case !sc.Autoplay || ctrl.Len() < 2:
		return ""
	case ctrl.IsPaused():
		return r.styles.Dim.Render("⏸ autoplay paused")
	default:
		return r.styles.Dim.Render("▶ autoplay")
	}
}
