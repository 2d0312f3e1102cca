package views

import (
	"fmt"
	"strings"

	"coursepage/internal/accordion"
	"coursepage/internal/domain"
)

// panel is one accordion row ready for drawing
type panel struct {
	title string
	body  func(width int) string
}

// accordion icons: faq panels close with a cross, module panels with a minus
var (
	faqIcons    = [2]string{"+", "×"}
	moduleIcons = [2]string{"+", "−"}
)

func (r *Renderer) renderModules(s *domain.ModulesSection, sc sectionContext) string {
	panels := make([]panel, len(s.Modules))
	for i, m := range s.Modules {
		lessons := m.Lessons
		panels[i] = panel{
			title: m.Title,
			body: func(int) string {
				lines := make([]string, len(lessons))
				for j, l := range lessons {
					lines[j] = fmt.Sprintf("%02d. %s", j+1, l)
				}
				return strings.Join(lines, "\n")
			},
		}
	}
	return r.renderAccordion(s.ID, panels, moduleIcons, sc)
}

func (r *Renderer) renderFAQ(s *domain.FAQSection, sc sectionContext) string {
	panels := make([]panel, len(s.Items))
	for i, item := range s.Items {
		answer := item.Answer
		panels[i] = panel{
			title: item.Question,
			body: func(width int) string {
				return r.markdown(answer, width)
			},
		}
	}
	parts := []string{r.renderAccordion(s.ID, panels, faqIcons, sc)}
	if btn := r.button(s.CTA, r.styles.Button); btn != "" {
		parts = append(parts, centered(btn, sc.width))
	}
	if s.ContactLead != "" {
		parts = append(parts, centered(r.styles.Dim.Render(s.ContactLead), sc.width))
	}
	if btn := r.button(s.ContactCTA, r.styles.ContactButton); btn != "" {
		parts = append(parts, centered(btn, sc.width))
	}
	return strings.Join(parts, "\n\n")
}

// renderAccordion draws the panels with the open one expanded. The cursor row is only
// highlighted while the section has focus.
func (r *Renderer) renderAccordion(id string, panels []panel, icons [2]string, sc sectionContext) string {
	ctrl := sc.Accordions[id]
	if ctrl == nil {
		ctrl, _ = accordion.New(len(panels))
	}
	cursor := -1
	if sc.focused {
		cursor = sc.PanelCursor[id]
	}

	width := min(sc.width, 100)
	var b strings.Builder
	for i, p := range panels {
		open := ctrl.IsOpen(i)
		icon := icons[0]
		style := r.styles.PanelHeader
		if open {
			icon = icons[1]
			style = r.styles.PanelHeaderOpen
		}
		marker := "  "
		if i == cursor {
			marker = r.styles.Highlight.Render("› ")
			style = style.Inherit(r.styles.PanelHeaderCursor)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(marker + style.Render(fmt.Sprintf("%s %s", icon, p.title)))
		if open {
			b.WriteString("\n")
			b.WriteString(r.styles.PanelBody.Render(p.body(width - 6)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
