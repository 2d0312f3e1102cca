package content

import (
	"fmt"
	"strings"

	"coursepage/internal/domain"
)

// Text renders the whole page as plain text, markdown stripped. Carousels list every
// testimonial and accordions every panel, since there is no state to select from.
func Text(page *domain.Page) string {
	var b strings.Builder
	if page.Title != "" {
		b.WriteString(strings.ToUpper(page.Title))
		b.WriteString("\n")
	}
	for _, s := range page.Sections {
		b.WriteString("\n")
		writeHeader(&b, s.Header())
		writeBody(&b, s)
	}
	return b.String()
}

func writeHeader(b *strings.Builder, h domain.SectionHeader) {
	for _, line := range []string{h.Eyebrow, h.Title, h.Subtitle} {
		if line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if h.Eyebrow != "" || h.Title != "" || h.Subtitle != "" {
		b.WriteString("\n")
	}
}

func writeBody(b *strings.Builder, s domain.Section) {
	line := func(format string, args ...any) {
		fmt.Fprintf(b, format+"\n", args...)
	}
	cta := func(c *domain.CallToAction) {
		if c != nil && c.Label != "" {
			line("[ %s ] %s", c.Label, c.URL)
		}
	}

	switch v := s.(type) {
	case *domain.SolutionsSection:
		for _, item := range v.Items {
			line("  * %s", Plain(item))
		}
	case *domain.NetworkingSection:
		for _, c := range v.Contracts {
			line("  %s  %s  %s", c.Amount, c.Label, c.Ref)
		}
		for _, m := range v.Chat {
			line("  %s: %s", m.Author, m.Text)
		}
	case *domain.PricingSection:
		for _, p := range v.Intro {
			line("%s", Plain(p))
		}
		for _, p := range v.Plans {
			b.WriteString("\n")
			if p.Badge != "" {
				line("  (%s)", p.Badge)
			}
			line("  %s: %s %s", p.Title, p.Price, p.Period)
			if p.SubPrice != "" {
				line("  %s", p.SubPrice)
			}
			for _, f := range p.Features {
				line("    - %s", f)
			}
		}
		if len(v.TrustBadges) > 0 {
			b.WriteString("\n")
			line("%s", strings.Join(v.TrustBadges, " | "))
		}
	case *domain.GuaranteeSection:
		line("%d %s", v.Days, v.Seal)
		line("%s", Plain(v.Body))
		cta(v.CTA)
		if v.SecureNote != "" {
			line("%s", v.SecureNote)
		}
	case *domain.TestimonialsSection:
		for _, t := range v.Testimonials {
			line("  %s (%s) %s", t.Name, t.Role, t.Timestamp)
			line("    %s", t.Message)
		}
		cta(v.CTA)
	case *domain.AudienceSection:
		for _, l := range v.Levels {
			line("  %s: %s", l.Level, l.Title)
			line("    %s", l.Description)
		}
	case *domain.QuoteSection:
		line("\"%s\"", v.Quote)
		if v.Author != "" {
			line("  - %s", v.Author)
		}
	case *domain.ModulesSection:
		for _, m := range v.Modules {
			line("  %s", m.Title)
			for _, l := range m.Lessons {
				line("    - %s", l)
			}
		}
	case *domain.FAQSection:
		for _, f := range v.Items {
			line("  Q: %s", f.Question)
			line("  A: %s", Plain(f.Answer))
		}
		cta(v.CTA)
		if v.ContactLead != "" {
			line("%s", v.ContactLead)
		}
		cta(v.ContactCTA)
	case *domain.ManifestoSection:
		if v.Verse != "" {
			line("%s", v.Verse)
			line("  %s", v.VerseSource)
		}
		for _, p := range v.Paragraphs {
			line("%s", Plain(p))
		}
		if v.Closing != "" {
			line("%s", v.Closing)
		}
	case *domain.FooterSection:
		line("%s", v.Author)
		line("%s", v.Tagline)
		line("%s", v.Copyright)
	}
}
