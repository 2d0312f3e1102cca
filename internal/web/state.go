package web

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"coursepage/internal/accordion"
	"coursepage/internal/carousel"
	"coursepage/internal/domain"
)

// Query parameters that select page state
const (
	ParamSlide  = "slide"
	ParamFAQ    = "faq"
	ParamModule = "module"
)

// ErrBadParam marks a query parameter that is not a valid index
var ErrBadParam = errors.New("invalid query parameter")

// ViewState holds the selection controllers of every interactive section for one render
type ViewState struct {
	carousels  map[string]*carousel.Controller
	accordions map[string]*accordion.Controller
}

// NewViewState creates fresh controllers for the page: carousels at their first item,
// accordions all closed
func NewViewState(page *domain.Page) (*ViewState, error) {
	st := &ViewState{
		carousels:  make(map[string]*carousel.Controller),
		accordions: make(map[string]*accordion.Controller),
	}
	for _, s := range page.Sections {
		var err error
		switch v := s.(type) {
		case *domain.TestimonialsSection:
			st.carousels[v.ID], err = carousel.New(len(v.Testimonials))
		case *domain.FAQSection:
			st.accordions[v.ID], err = accordion.New(len(v.Items))
		case *domain.ModulesSection:
			st.accordions[v.ID], err = accordion.New(len(v.Modules))
		}
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", s.Header().ID, err)
		}
	}
	return st, nil
}

// Carousel returns the controller for a testimonials section
func (st *ViewState) Carousel(id string) *carousel.Controller {
	return st.carousels[id]
}

// Accordion returns the controller for a faq or modules section
func (st *ViewState) Accordion(id string) *accordion.Controller {
	return st.accordions[id]
}

// Apply drives the controllers from query parameters: slide jumps every carousel,
// faq and module open a panel in every section of that kind
func (st *ViewState) Apply(page *domain.Page, q url.Values) error {
	slide, hasSlide, err := intParam(q, ParamSlide)
	if err != nil {
		return err
	}
	faq, hasFAQ, err := intParam(q, ParamFAQ)
	if err != nil {
		return err
	}
	module, hasModule, err := intParam(q, ParamModule)
	if err != nil {
		return err
	}

	for _, s := range page.Sections {
		id := s.Header().ID
		switch s.Kind() {
		case domain.KindTestimonials:
			if hasSlide {
				if err := st.carousels[id].JumpTo(slide); err != nil {
					return fmt.Errorf("%s=%d: %w: %w", ParamSlide, slide, ErrBadParam, err)
				}
			}
		case domain.KindFAQ:
			if hasFAQ {
				if err := st.accordions[id].Toggle(faq); err != nil {
					return fmt.Errorf("%s=%d: %w: %w", ParamFAQ, faq, ErrBadParam, err)
				}
			}
		case domain.KindModules:
			if hasModule {
				if err := st.accordions[id].Toggle(module); err != nil {
					return fmt.Errorf("%s=%d: %w: %w", ParamModule, module, ErrBadParam, err)
				}
			}
		}
	}
	return nil
}

func intParam(q url.Values, key string) (int, bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s=%q: %w", key, raw, ErrBadParam)
	}
	return n, true, nil
}
