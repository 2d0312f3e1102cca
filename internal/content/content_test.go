package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepage/internal/domain"
)

func TestDefaultPage(t *testing.T) {
	page, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "Design Hack", page.Title)
	assert.Equal(t, "pt-BR", page.Lang)

	kinds := make([]domain.SectionKind, 0, len(page.Sections))
	for _, s := range page.Sections {
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []domain.SectionKind{
		domain.KindSolutions, domain.KindNetworking, domain.KindPricing, domain.KindGuarantee,
		domain.KindTestimonials, domain.KindAudience, domain.KindQuote, domain.KindModules,
		domain.KindFAQ, domain.KindManifesto, domain.KindFooter,
	}, kinds)

	testimonials, ok := Find[*domain.TestimonialsSection](page)
	require.True(t, ok)
	require.Len(t, testimonials.Testimonials, 5)
	assert.Equal(t, "Ricardo Silva", testimonials.Testimonials[0].Name)
	assert.Equal(t, "10:42", testimonials.Testimonials[0].Timestamp)

	faq, ok := Find[*domain.FAQSection](page)
	require.True(t, ok)
	require.Len(t, faq.Items, 4)
	assert.Equal(t, "O que é o Design Hack?", faq.Items[0].Question)

	modules, ok := Find[*domain.ModulesSection](page)
	require.True(t, ok)
	assert.Len(t, modules.Modules, 9)

	pricing, ok := Find[*domain.PricingSection](page)
	require.True(t, ok)
	require.Len(t, pricing.Plans, 3)
	assert.True(t, pricing.Plans[2].Featured)
	assert.Equal(t, "#FFD700", pricing.Plans[2].Accent)
}

func TestDefaultYAMLIsACopy(t *testing.T) {
	data := DefaultYAML()
	data[0] = '#'
	_, err := Default()
	assert.NoError(t, err)
}

func TestParseMissingIDFallsBackToKind(t *testing.T) {
	page, err := Parse([]byte(`
sections:
  - kind: quote
    quote: "Feito é melhor que perfeito."
`))
	require.NoError(t, err)
	require.Len(t, page.Sections, 1)
	assert.Equal(t, "quote", page.Sections[0].Header().ID)
	assert.Equal(t, "pt-BR", page.Lang)
}

func TestParseRejectsBadContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "no sections",
			yaml: "title: vazio\n",
			want: ErrNoSections,
		},
		{
			name: "unknown kind",
			yaml: "sections:\n  - kind: hero\n",
			want: ErrUnknownKind,
		},
		{
			name: "empty carousel",
			yaml: "sections:\n  - kind: testimonials\n    testimonials: []\n",
			want: ErrEmptyCarousel,
		},
		{
			name: "faq without answer",
			yaml: "sections:\n  - kind: faq\n    items:\n      - question: Quanto custa?\n",
			want: ErrMissingField,
		},
		{
			name: "duplicate ids",
			yaml: "sections:\n  - kind: quote\n    id: q\n    quote: a\n  - kind: quote\n    id: q\n    quote: b\n",
			want: ErrDuplicateID,
		},
		{
			name: "wrong payload type",
			yaml: "sections:\n  - kind: modules\n    modules: nope\n",
			want: ErrInvalidPayload,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseReportsEveryBadSection(t *testing.T) {
	_, err := Parse([]byte(`
sections:
  - kind: testimonials
  - kind: footer
  - kind: quote
    quote: ok
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCarousel)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "section 0")
	assert.Contains(t, err.Error(), "section 1")
}

func TestZeroPanelAccordionIsValid(t *testing.T) {
	page, err := Parse([]byte("sections:\n  - kind: faq\n    items: []\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, ItemCount(page.Sections[0]))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections:\n  - kind: footer\n    author: Anderson\n"), 0o644))

	page, err := Load(path)
	require.NoError(t, err)
	footer, ok := Find[*domain.FooterSection](page)
	require.True(t, ok)
	assert.Equal(t, "Anderson", footer.Author)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	page, err = Load("")
	require.NoError(t, err)
	assert.Len(t, page.Sections, 11)
}

func TestPlanOrder(t *testing.T) {
	plans := []domain.PricingPlan{
		{Title: "Mensal"},
		{Title: "Anual"},
		{Title: "Vitalício", Featured: true},
	}
	titles := func(ps []domain.PricingPlan) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Title
		}
		return out
	}

	assert.Equal(t, []string{"Vitalício", "Mensal", "Anual"}, titles(PlanOrder(plans, true)))
	assert.Equal(t, []string{"Mensal", "Anual", "Vitalício"}, titles(PlanOrder(plans, false)))
	assert.Equal(t, "Mensal", plans[0].Title, "input is not reordered")
}

func TestFindMissingKind(t *testing.T) {
	page := &domain.Page{Sections: []domain.Section{&domain.QuoteSection{Quote: "x"}}}
	_, ok := Find[*domain.FAQSection](page)
	assert.False(t, ok)
}
