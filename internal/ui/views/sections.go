package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coursepage/internal/content"
	"coursepage/internal/domain"
)

func (r *Renderer) renderSolutions(s *domain.SolutionsSection, sc sectionContext) string {
	var md strings.Builder
	for _, item := range s.Items {
		md.WriteString("- ")
		md.WriteString(item)
		md.WriteString("\n")
	}
	return r.markdown(md.String(), min(sc.width, 100))
}

func (r *Renderer) renderNetworking(s *domain.NetworkingSection, sc sectionContext) string {
	cw := cardWidth(sc.width, len(s.Contracts), sc.Narrow)
	bills := make([]string, 0, len(s.Contracts))
	for _, c := range s.Contracts {
		style := r.styles.Card
		amount := r.styles.Highlight
		if c.Gold {
			style = r.styles.CardGold
			amount = r.styles.Gold
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			amount.Render(c.Amount),
			c.Label,
			r.styles.Dim.Render(c.Ref),
		)
		bills = append(bills, style.Width(cw-2).Render(body))
	}

	var chat []string
	for _, line := range s.Chat {
		chat = append(chat, r.styles.Accent.Render(line.Author+":")+" "+line.Text)
	}
	chatBox := r.styles.Card.Width(min(sc.width, 60) - 2).Render(strings.Join(chat, "\n"))

	return columns(bills, sc.width, sc.Narrow) + "\n\n" + centered(chatBox, sc.width)
}

func (r *Renderer) renderPricing(s *domain.PricingSection, sc sectionContext) string {
	var parts []string
	if len(s.Intro) > 0 {
		parts = append(parts, r.markdown(strings.Join(s.Intro, "\n\n"), min(sc.width, 100)))
	}

	plans := content.PlanOrder(s.Plans, sc.Narrow)
	cw := cardWidth(sc.width, len(plans), sc.Narrow)
	cards := make([]string, 0, len(plans))
	for _, p := range plans {
		cards = append(cards, r.renderPlan(p, cw))
	}
	parts = append(parts, columns(cards, sc.width, sc.Narrow))

	if len(s.TrustBadges) > 0 {
		parts = append(parts, centered(r.styles.Accent.Render(strings.Join(s.TrustBadges, "  •  ")), sc.width))
	}
	return strings.Join(parts, "\n\n")
}

func (r *Renderer) renderPlan(p domain.PricingPlan, width int) string {
	accent := accentColor(p.Accent)
	var lines []string
	if p.Badge != "" {
		lines = append(lines, r.styles.Badge.Render(p.Badge))
	}
	lines = append(lines, r.styles.Heading.Render(p.Title))
	price := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(p.Price)
	if p.Period != "" {
		price += " " + r.styles.Dim.Render(p.Period)
	}
	lines = append(lines, price)
	if p.SubPrice != "" {
		lines = append(lines, r.styles.Dim.Render(p.SubPrice))
	}
	lines = append(lines, "")
	for _, f := range p.Features {
		lines = append(lines, lipgloss.NewStyle().Foreground(accent).Render("✓ ")+f)
	}
	lines = append(lines, "")
	if p.ButtonText != "" {
		lines = append(lines, r.styles.Button.Background(accent).Render(strings.ToUpper(p.ButtonText)))
	}
	if p.Vibe != "" {
		lines = append(lines, r.styles.Dim.Italic(true).Render(p.Vibe))
	}

	style := r.styles.Card.BorderForeground(accent)
	if p.Featured {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(colorGold)
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderGuarantee(s *domain.GuaranteeSection, sc sectionContext) string {
	seal := r.styles.CenterCard.Align(lipgloss.Center).Render(
		r.styles.Highlight.Render(fmt.Sprintf("%d", s.Days)) + "\n" + strings.ToUpper(s.Seal),
	)
	parts := []string{centered(seal, sc.width)}
	if s.Body != "" {
		parts = append(parts, r.markdown(s.Body, min(sc.width, 100)))
	}
	if btn := r.button(s.CTA, r.styles.Button); btn != "" {
		parts = append(parts, centered(btn, sc.width))
	}
	if s.SecureNote != "" {
		parts = append(parts, centered(r.styles.Dim.Render(strings.ToUpper(s.SecureNote)), sc.width))
	}
	return strings.Join(parts, "\n\n")
}

func (r *Renderer) renderAudience(s *domain.AudienceSection, sc sectionContext) string {
	cw := cardWidth(sc.width, len(s.Levels), sc.Narrow)
	cards := make([]string, 0, len(s.Levels))
	for _, l := range s.Levels {
		style := r.styles.Card
		if l.Premium {
			style = r.styles.CardGold
		}
		tags := make([]string, 0, len(l.Tags))
		for _, t := range l.Tags {
			tags = append(tags, r.styles.Dim.Render("["+strings.ToUpper(t)+"]"))
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			r.styles.Eyebrow.Render(strings.ToUpper(l.Level)),
			r.styles.Heading.Render(l.Title),
			"",
			l.Description,
			"",
			strings.Join(tags, " "),
		)
		cards = append(cards, style.Width(cw-2).Render(body))
	}
	return columns(cards, sc.width, sc.Narrow)
}

func (r *Renderer) renderQuote(s *domain.QuoteSection, sc sectionContext) string {
	w := min(sc.width, 90)
	quote := r.styles.Italic.Width(w).Align(lipgloss.Center).Render("“" + s.Quote + "”")
	out := centered(quote, sc.width)
	if s.Author != "" {
		out += "\n\n" + centered(r.styles.Accent.Render(strings.ToUpper(s.Author)), sc.width)
	}
	return out
}

func (r *Renderer) renderManifesto(s *domain.ManifestoSection, sc sectionContext) string {
	var parts []string
	if s.Verse != "" {
		w := min(sc.width, 90)
		verse := r.styles.Italic.Width(w).Align(lipgloss.Center).Render(s.Verse)
		parts = append(parts, centered(verse, sc.width))
		if s.VerseSource != "" {
			parts = append(parts, centered(r.styles.Accent.Render(s.VerseSource), sc.width))
		}
	}
	if len(s.Paragraphs) > 0 {
		parts = append(parts, r.markdown(strings.Join(s.Paragraphs, "\n\n"), min(sc.width, 100)))
	}
	if s.Closing != "" {
		parts = append(parts, centered(r.styles.Heading.Render(s.Closing), sc.width))
	}
	return strings.Join(parts, "\n\n")
}

func (r *Renderer) renderFooter(s *domain.FooterSection, sc sectionContext) string {
	lines := []string{centered(r.styles.Heading.Render(s.Author), sc.width)}
	if s.Tagline != "" {
		lines = append(lines, centered(r.styles.Tagline.Render(strings.ToUpper(s.Tagline)), sc.width))
	}
	if s.Copyright != "" {
		lines = append(lines, centered(r.styles.Dim.Render(s.Copyright), sc.width))
	}
	return strings.Join(lines, "\n")
}
