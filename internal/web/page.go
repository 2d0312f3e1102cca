package web

import (
	_ "embed"
	"fmt"
	"io"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"coursepage/internal/carousel"
	"coursepage/internal/content"
	"coursepage/internal/domain"
)

//go:embed style.css
var styleCSS string

// Render writes the full HTML document for page in the state st.
// q is the query the state came from; links keep its other parameters.
func Render(w io.Writer, page *domain.Page, st *ViewState, md *content.Markdown, q url.Values) error {
	r := &pageRenderer{md: md, st: st, q: q}
	if err := r.document(page).Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

type pageRenderer struct {
	md *content.Markdown
	st *ViewState
	q  url.Values
}

func (r *pageRenderer) document(page *domain.Page) g.Node {
	sections := make([]g.Node, 0, len(page.Sections))
	for _, s := range page.Sections {
		sections = append(sections, r.section(s))
	}
	return g.Group([]g.Node{
		Doctype(
			HTML(
				Lang(page.Lang),
				Head(
					Meta(Charset("utf-8")),
					Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
					TitleEl(g.Text(page.Title)),
					StyleEl(g.Raw(styleCSS)),
				),
				Body(
					Main(sections...),
				),
			),
		),
	})
}

func (r *pageRenderer) section(s domain.Section) g.Node {
	var body g.Node
	switch v := s.(type) {
	case *domain.SolutionsSection:
		body = r.solutions(v)
	case *domain.NetworkingSection:
		body = r.networking(v)
	case *domain.PricingSection:
		body = r.pricing(v)
	case *domain.GuaranteeSection:
		body = r.guarantee(v)
	case *domain.TestimonialsSection:
		body = r.testimonials(v)
	case *domain.AudienceSection:
		body = r.audience(v)
	case *domain.QuoteSection:
		body = r.quote(v)
	case *domain.ModulesSection:
		body = r.modules(v)
	case *domain.FAQSection:
		body = r.faq(v)
	case *domain.ManifestoSection:
		body = r.manifesto(v)
	case *domain.FooterSection:
		return r.footer(v)
	}
	return Section(
		ID(s.Header().ID),
		Class("section section-"+string(s.Kind())),
		header(s.Header()),
		body,
	)
}

func header(h domain.SectionHeader) g.Node {
	if h.Eyebrow == "" && h.Title == "" && h.Subtitle == "" {
		return nil
	}
	return Header(
		g.If(h.Eyebrow != "", P(Class("eyebrow"), g.Text(h.Eyebrow))),
		g.If(h.Title != "", H2(g.Text(h.Title))),
		g.If(h.Subtitle != "", P(Class("subtitle"), g.Text(h.Subtitle))),
	)
}

// inline renders markdown that sits inside another element
func (r *pageRenderer) inline(src string) g.Node {
	out, err := r.md.InlineHTML(src)
	if err != nil {
		return g.Text(content.Plain(src))
	}
	return g.Raw(out)
}

func (r *pageRenderer) block(src string) g.Node {
	out, err := r.md.HTML(src)
	if err != nil {
		return P(g.Text(content.Plain(src)))
	}
	return g.Raw(out)
}

func cta(c *domain.CallToAction, class string) g.Node {
	if c == nil {
		return nil
	}
	return A(Class("btn "+class), Href(c.URL), g.Text(c.Label))
}

func (r *pageRenderer) solutions(s *domain.SolutionsSection) g.Node {
	items := make([]g.Node, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, Li(Class("card"), r.inline(item)))
	}
	return Ul(Class("grid"), g.Group(items))
}

func (r *pageRenderer) networking(s *domain.NetworkingSection) g.Node {
	bills := make([]g.Node, 0, len(s.Contracts))
	for _, c := range s.Contracts {
		class := "bill"
		if c.Gold {
			class += " gold"
		}
		bills = append(bills, Div(Class(class),
			Span(Class("bank"), g.Text("DESIGN BANK")),
			Strong(g.Text(c.Amount)),
			Span(Class("label"), g.Text(c.Label)),
			Span(Class("ref"), g.Text(c.Ref)),
		))
	}
	lines := make([]g.Node, 0, len(s.Chat))
	for _, l := range s.Chat {
		lines = append(lines, Li(Strong(g.Text(l.Author)), g.Text(" "+l.Text)))
	}
	return g.Group([]g.Node{
		Div(Class("bills"), g.Group(bills)),
		g.If(len(lines) > 0, Ul(Class("chat"), g.Group(lines))),
	})
}

func (r *pageRenderer) pricing(s *domain.PricingSection) g.Node {
	intro := make([]g.Node, 0, len(s.Intro))
	for _, p := range s.Intro {
		intro = append(intro, r.block(p))
	}
	plans := make([]g.Node, 0, len(s.Plans))
	for _, p := range content.PlanOrder(s.Plans, false) {
		plans = append(plans, plan(p))
	}
	badges := make([]g.Node, 0, len(s.TrustBadges))
	for _, b := range s.TrustBadges {
		badges = append(badges, Li(g.Text(b)))
	}
	return g.Group([]g.Node{
		Div(Class("intro"), g.Group(intro)),
		Div(Class("plans"), g.Group(plans)),
		g.If(len(badges) > 0, Ul(Class("trust"), g.Group(badges))),
	})
}

func plan(p domain.PricingPlan) g.Node {
	class := "plan"
	if p.Featured {
		class += " featured"
	}
	features := make([]g.Node, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, Li(g.Text(f)))
	}
	return Div(Class(class), g.Attr("style", "--accent: "+p.Accent),
		g.If(p.Badge != "", Span(Class("badge"), g.Text(p.Badge))),
		H3(g.Text(p.Title)),
		g.If(p.Vibe != "", P(Class("vibe"), g.Text(p.Vibe))),
		P(Class("price"), Strong(g.Text(p.Price)), g.Text(" "+p.Period)),
		g.If(p.SubPrice != "", P(Class("sub-price"), g.Text(p.SubPrice))),
		Ul(g.Group(features)),
		g.If(p.ButtonText != "", A(Class("btn"), Href("#"), g.Text(p.ButtonText))),
	)
}

func (r *pageRenderer) guarantee(s *domain.GuaranteeSection) g.Node {
	return g.Group([]g.Node{
		Div(Class("seal"), Strong(g.Text(strconv.Itoa(s.Days)+" dias")), Span(g.Text(s.Seal))),
		r.block(s.Body),
		cta(s.CTA, "primary"),
		g.If(s.SecureNote != "", P(Class("secure"), g.Text(s.SecureNote))),
	})
}

// testimonials renders the carousel in the controller's current state. Every card carries its
// signed position relative to the active one; the stylesheet places and hides cards by tier.
func (r *pageRenderer) testimonials(s *domain.TestimonialsSection) g.Node {
	ctrl := r.st.Carousel(s.ID)
	n := ctrl.Len()

	cards := make([]g.Node, 0, n)
	for _, p := range ctrl.Placements() {
		cards = append(cards, r.testimonialCard(s.Testimonials[p.Index], p))
	}

	dots := make([]g.Node, 0, n)
	for i := 0; i < n; i++ {
		class := "dot"
		if ctrl.IsActive(i) {
			class += " active"
		}
		dots = append(dots, A(Class(class), Href(r.link(ParamSlide, i)), Aria("label", fmt.Sprintf("depoimento %d", i+1))))
	}

	prev := (ctrl.ActiveIndex() - 1 + n) % n
	next := (ctrl.ActiveIndex() + 1) % n
	return g.Group([]g.Node{
		Div(Class("carousel"), g.Attr("data-active", strconv.Itoa(ctrl.ActiveIndex())),
			A(Class("arrow prev"), Href(r.link(ParamSlide, prev)), Aria("label", "anterior"), g.Text("‹")),
			Div(Class("track"), g.Group(cards)),
			A(Class("arrow next"), Href(r.link(ParamSlide, next)), Aria("label", "próximo"), g.Text("›")),
		),
		Nav(Class("dots"), g.Group(dots)),
		cta(s.CTA, "primary"),
	})
}

func (r *pageRenderer) testimonialCard(t domain.Testimonial, p carousel.Placement) g.Node {
	class := "chat-card tier-" + p.Tier.String()
	if p.Active {
		class += " active"
	}
	card := Div(Class(class),
		g.Attr("data-position", strconv.Itoa(p.Position)),
		g.If(p.Tier == carousel.TierHidden, g.Attr("hidden")),
		Div(Class("chat-head"),
			g.If(t.AvatarURL != "", Img(Src(t.AvatarURL), Alt(t.Name))),
			Strong(g.Text(t.Name)),
			Span(Class("role"), g.Text(t.Role)),
		),
		P(Class("bubble"), g.Text(t.Message)),
		Span(Class("time"), g.Text(t.Timestamp)),
	)
	if p.Tier != carousel.TierAdjacent {
		return card
	}
	// side cards jump to themselves
	return A(Class("card-link"), Href(r.link(ParamSlide, p.Index)), card)
}

func (r *pageRenderer) audience(s *domain.AudienceSection) g.Node {
	cards := make([]g.Node, 0, len(s.Levels))
	for _, l := range s.Levels {
		class := "card level"
		if l.Premium {
			class += " premium"
		}
		tags := make([]g.Node, 0, len(l.Tags))
		for _, tag := range l.Tags {
			tags = append(tags, Li(g.Text(tag)))
		}
		cards = append(cards, Div(Class(class),
			Span(Class("eyebrow"), g.Text(l.Level)),
			H3(g.Text(l.Title)),
			P(g.Text(l.Description)),
			Ul(Class("tags"), g.Group(tags)),
		))
	}
	return Div(Class("grid"), g.Group(cards))
}

func (r *pageRenderer) quote(s *domain.QuoteSection) g.Node {
	return g.El("blockquote",
		P(g.Text("“"+s.Quote+"”")),
		g.If(s.Author != "", P(Class("author"), g.Text(s.Author))),
	)
}

func (r *pageRenderer) modules(s *domain.ModulesSection) g.Node {
	ctrl := r.st.Accordion(s.ID)
	panels := make([]g.Node, 0, len(s.Modules))
	for i, m := range s.Modules {
		lessons := make([]g.Node, 0, len(m.Lessons))
		for _, l := range m.Lessons {
			lessons = append(lessons, Li(g.Text(l)))
		}
		panels = append(panels, r.panel(ParamModule, i, ctrl.IsOpen(i), m.Title, Ul(g.Group(lessons))))
	}
	return Div(Class("accordion modules"), g.Group(panels))
}

func (r *pageRenderer) faq(s *domain.FAQSection) g.Node {
	ctrl := r.st.Accordion(s.ID)
	panels := make([]g.Node, 0, len(s.Items))
	for i, item := range s.Items {
		panels = append(panels, r.panel(ParamFAQ, i, ctrl.IsOpen(i), item.Question, r.block(item.Answer)))
	}
	return g.Group([]g.Node{
		Div(Class("accordion faq"), g.Group(panels)),
		cta(s.CTA, "primary"),
		g.If(s.ContactLead != "", H3(g.Text(s.ContactLead))),
		cta(s.ContactCTA, "contact"),
	})
}

// panel renders one accordion item. The summary links to the state with this panel
// toggled, so the page works without scripts.
func (r *pageRenderer) panel(param string, index int, open bool, title string, body g.Node) g.Node {
	target := r.link(param, index)
	if open {
		target = r.without(param)
	}
	return Details(Class("panel"),
		g.If(open, g.Attr("open")),
		Summary(A(Href(target), g.Text(title)), Span(Class("icon"), g.Text(toggleIcon(open)))),
		Div(Class("panel-body"), body),
	)
}

func toggleIcon(open bool) string {
	if open {
		return "−"
	}
	return "+"
}

func (r *pageRenderer) manifesto(s *domain.ManifestoSection) g.Node {
	paragraphs := make([]g.Node, 0, len(s.Paragraphs))
	for _, p := range s.Paragraphs {
		paragraphs = append(paragraphs, r.block(p))
	}
	return g.Group([]g.Node{
		g.If(s.Verse != "", g.El("blockquote", Class("verse"),
			P(g.Text("“"+s.Verse+"”")),
			P(Class("author"), g.Text(s.VerseSource)),
		)),
		Div(Class("narrative"), g.Group(paragraphs)),
		g.If(s.Closing != "", P(Class("closing"), Strong(g.Text(s.Closing)))),
	})
}

func (r *pageRenderer) footer(s *domain.FooterSection) g.Node {
	return Footer(ID(s.ID),
		P(Class("author"), g.Text(s.Author)),
		g.If(s.Tagline != "", P(Class("tagline"), g.Text(s.Tagline))),
		g.If(s.Copyright != "", P(Class("copyright"), g.Text(s.Copyright))),
	)
}

// link returns a relative URL with key set to value and the other parameters kept
func (r *pageRenderer) link(key string, value int) string {
	q := cloneValues(r.q)
	q.Set(key, strconv.Itoa(value))
	return "?" + q.Encode()
}

func (r *pageRenderer) without(key string) string {
	q := cloneValues(r.q)
	q.Del(key)
	if len(q) == 0 {
		return "?"
	}
	return "?" + q.Encode()
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
