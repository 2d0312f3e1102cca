// Package content loads the landing page from YAML.
//
// A content file is a list of sections, each tagged with a kind:
//
//	sections:
//	  - kind: testimonials
//	    id: depoimentos
//	    testimonials: [...]
//
// Every kind decodes into its own domain record and is validated on load, so the
// renderers never see a section with missing required fields.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"coursepage/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

// Validation errors
var (
	ErrNoSections     = errors.New("page has no sections")
	ErrUnknownKind    = errors.New("unknown section kind")
	ErrMissingField   = errors.New("missing required field")
	ErrEmptyCarousel  = errors.New("testimonials section needs at least one testimonial")
	ErrDuplicateID    = errors.New("duplicate section id")
	ErrInvalidPayload = errors.New("invalid section payload")
)

var factories = map[domain.SectionKind]func() domain.Section{
	domain.KindSolutions:    func() domain.Section { return &domain.SolutionsSection{} },
	domain.KindNetworking:   func() domain.Section { return &domain.NetworkingSection{} },
	domain.KindPricing:      func() domain.Section { return &domain.PricingSection{} },
	domain.KindGuarantee:    func() domain.Section { return &domain.GuaranteeSection{} },
	domain.KindTestimonials: func() domain.Section { return &domain.TestimonialsSection{} },
	domain.KindAudience:     func() domain.Section { return &domain.AudienceSection{} },
	domain.KindQuote:        func() domain.Section { return &domain.QuoteSection{} },
	domain.KindModules:      func() domain.Section { return &domain.ModulesSection{} },
	domain.KindFAQ:          func() domain.Section { return &domain.FAQSection{} },
	domain.KindManifesto:    func() domain.Section { return &domain.ManifestoSection{} },
	domain.KindFooter:       func() domain.Section { return &domain.FooterSection{} },
}

type document struct {
	Title    string      `yaml:"title"`
	Lang     string      `yaml:"lang"`
	Sections []yaml.Node `yaml:"sections"`
}

// Default returns the page built into the binary
func Default() (*domain.Page, error) {
	page, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return page, nil
}

// DefaultYAML returns the embedded content file, for use as a starting point
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Load reads and validates a content file. An empty path loads the embedded page.
func Load(path string) (*domain.Page, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	page, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return page, nil
}

// Parse decodes and validates YAML content
func Parse(data []byte) (*domain.Page, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if len(doc.Sections) == 0 {
		return nil, ErrNoSections
	}

	page := &domain.Page{Title: doc.Title, Lang: doc.Lang}
	if page.Lang == "" {
		page.Lang = "pt-BR"
	}

	var errs []error
	seen := make(map[string]int)
	for i := range doc.Sections {
		section, err := decodeSection(&doc.Sections[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("section %d: %w", i, err))
			continue
		}
		id := section.Header().ID
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("section %d: id %q also used by section %d: %w", i, id, prev, ErrDuplicateID))
			continue
		}
		seen[id] = i
		page.Sections = append(page.Sections, section)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return page, nil
}

func decodeSection(node *yaml.Node) (domain.Section, error) {
	var probe struct {
		Kind domain.SectionKind `yaml:"kind"`
	}
	if err := node.Decode(&probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	newSection, ok := factories[probe.Kind]
	if !ok {
		return nil, fmt.Errorf("kind %q (line %d): %w", probe.Kind, node.Line, ErrUnknownKind)
	}

	section := newSection()
	if err := node.Decode(section); err != nil {
		return nil, fmt.Errorf("%s (line %d): %w: %v", probe.Kind, node.Line, ErrInvalidPayload, err)
	}
	setDefaultID(section)
	if err := Validate(section); err != nil {
		return nil, fmt.Errorf("%s %q: %w", probe.Kind, section.Header().ID, err)
	}
	return section, nil
}

// setDefaultID names a section after its kind when the file leaves id out
func setDefaultID(s domain.Section) {
	if s.Header().ID != "" {
		return
	}
	id := string(s.Kind())
	switch v := s.(type) {
	case *domain.SolutionsSection:
		v.ID = id
	case *domain.NetworkingSection:
		v.ID = id
	case *domain.PricingSection:
		v.ID = id
	case *domain.GuaranteeSection:
		v.ID = id
	case *domain.TestimonialsSection:
		v.ID = id
	case *domain.AudienceSection:
		v.ID = id
	case *domain.QuoteSection:
		v.ID = id
	case *domain.ModulesSection:
		v.ID = id
	case *domain.FAQSection:
		v.ID = id
	case *domain.ManifestoSection:
		v.ID = id
	case *domain.FooterSection:
		v.ID = id
	}
}

// Validate checks the required fields of one section
func Validate(s domain.Section) error {
	var errs []error
	require := func(field, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s: %w", field, ErrMissingField))
		}
	}

	switch v := s.(type) {
	case *domain.SolutionsSection:
		require("title", v.Title)
		for i, item := range v.Items {
			require(fmt.Sprintf("items[%d]", i), item)
		}
	case *domain.NetworkingSection:
		require("title", v.Title)
		for i, c := range v.Contracts {
			require(fmt.Sprintf("contracts[%d].amount", i), c.Amount)
		}
		for i, line := range v.Chat {
			require(fmt.Sprintf("chat[%d].text", i), line.Text)
		}
	case *domain.PricingSection:
		if len(v.Plans) == 0 {
			errs = append(errs, fmt.Errorf("plans: %w", ErrMissingField))
		}
		for i, p := range v.Plans {
			require(fmt.Sprintf("plans[%d].title", i), p.Title)
			require(fmt.Sprintf("plans[%d].price", i), p.Price)
		}
	case *domain.GuaranteeSection:
		require("title", v.Title)
		require("body", v.Body)
		if v.Days <= 0 {
			errs = append(errs, fmt.Errorf("days must be positive: %w", ErrMissingField))
		}
	case *domain.TestimonialsSection:
		if len(v.Testimonials) == 0 {
			errs = append(errs, ErrEmptyCarousel)
		}
		for i, t := range v.Testimonials {
			require(fmt.Sprintf("testimonials[%d].name", i), t.Name)
			require(fmt.Sprintf("testimonials[%d].message", i), t.Message)
		}
	case *domain.AudienceSection:
		for i, l := range v.Levels {
			require(fmt.Sprintf("levels[%d].title", i), l.Title)
		}
	case *domain.QuoteSection:
		require("quote", v.Quote)
	case *domain.ModulesSection:
		for i, m := range v.Modules {
			require(fmt.Sprintf("modules[%d].title", i), m.Title)
		}
	case *domain.FAQSection:
		for i, f := range v.Items {
			require(fmt.Sprintf("items[%d].question", i), f.Question)
			require(fmt.Sprintf("items[%d].answer", i), f.Answer)
		}
	case *domain.ManifestoSection:
		if v.Verse == "" && len(v.Paragraphs) == 0 {
			errs = append(errs, fmt.Errorf("verse or paragraphs: %w", ErrMissingField))
		}
	case *domain.FooterSection:
		require("author", v.Author)
	default:
		errs = append(errs, fmt.Errorf("%T: %w", s, ErrUnknownKind))
	}
	return errors.Join(errs...)
}

// ItemCount returns how many items a section lists. For the interactive kinds it is
// the item count of the section's selection controller.
func ItemCount(s domain.Section) int {
	switch v := s.(type) {
	case *domain.SolutionsSection:
		return len(v.Items)
	case *domain.NetworkingSection:
		return len(v.Contracts)
	case *domain.PricingSection:
		return len(v.Plans)
	case *domain.TestimonialsSection:
		return len(v.Testimonials)
	case *domain.AudienceSection:
		return len(v.Levels)
	case *domain.ModulesSection:
		return len(v.Modules)
	case *domain.FAQSection:
		return len(v.Items)
	case *domain.ManifestoSection:
		return len(v.Paragraphs)
	default:
		return 0
	}
}

// PlanOrder returns the plans in display order. Narrow layouts lead with the featured
// plan; wide layouts put it last, next to the cheaper ones it is compared against.
func PlanOrder(plans []domain.PricingPlan, narrow bool) []domain.PricingPlan {
	ordered := make([]domain.PricingPlan, 0, len(plans))
	var featured []domain.PricingPlan
	for _, p := range plans {
		if p.Featured {
			featured = append(featured, p)
			continue
		}
		ordered = append(ordered, p)
	}
	if narrow {
		return append(featured, ordered...)
	}
	return append(ordered, featured...)
}

// Find returns the first section of the given kind
func Find[T domain.Section](page *domain.Page) (T, bool) {
	for _, s := range page.Sections {
		if v, ok := s.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
