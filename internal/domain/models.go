package domain

// SectionKind tags which record type a page section carries
type SectionKind string

// Section kinds, in the order they usually appear on the page
const (
	KindSolutions    SectionKind = "solutions"
	KindNetworking   SectionKind = "networking"
	KindPricing      SectionKind = "pricing"
	KindGuarantee    SectionKind = "guarantee"
	KindTestimonials SectionKind = "testimonials"
	KindAudience     SectionKind = "audience"
	KindQuote        SectionKind = "quote"
	KindModules      SectionKind = "modules"
	KindFAQ          SectionKind = "faq"
	KindManifesto    SectionKind = "manifesto"
	KindFooter       SectionKind = "footer"
)

// Section is one block of the landing page. Every implementation is a distinct record type
// so renderers switch on the concrete type instead of probing a property bag.
type Section interface {
	Kind() SectionKind
	Header() SectionHeader
}

// Page is the whole landing page
type Page struct {
	Title    string    `yaml:"title"`
	Lang     string    `yaml:"lang"`
	Sections []Section `yaml:"-"`
}

// SectionHeader is the eyebrow/title block most sections open with
type SectionHeader struct {
	ID       string `yaml:"id"`
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// CallToAction is a button with its label and target
type CallToAction struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Testimonial is a student message shown as a chat card in the carousel
type Testimonial struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	AvatarURL string `yaml:"avatar_url"`
	Message   string `yaml:"message"`
	Timestamp string `yaml:"timestamp"` // wall-clock label shown on the card, e.g. "10:42"
}

// TestimonialsSection is the auto-advancing carousel
type TestimonialsSection struct {
	SectionHeader `yaml:",inline"`

	Testimonials []Testimonial `yaml:"testimonials"`
	CTA          *CallToAction `yaml:"cta,omitempty"`
}

func (s *TestimonialsSection) Kind() SectionKind     { return KindTestimonials }
func (s *TestimonialsSection) Header() SectionHeader { return s.SectionHeader }

// FAQ is one question/answer pair. Answer is markdown.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// FAQSection is the single-open accordion of questions
type FAQSection struct {
	SectionHeader `yaml:",inline"`

	Items       []FAQ         `yaml:"items"`
	CTA         *CallToAction `yaml:"cta,omitempty"`
	ContactCTA  *CallToAction `yaml:"contact_cta,omitempty"`
	ContactLead string        `yaml:"contact_lead"` // line shown above the contact button
}

func (s *FAQSection) Kind() SectionKind     { return KindFAQ }
func (s *FAQSection) Header() SectionHeader { return s.SectionHeader }

// CourseModule is one module of the course and its lessons
type CourseModule struct {
	Title   string   `yaml:"title"`
	Lessons []string `yaml:"lessons"`
}

// ModulesSection is the single-open accordion of course modules
type ModulesSection struct {
	SectionHeader `yaml:",inline"`

	Modules []CourseModule `yaml:"modules"`
}

func (s *ModulesSection) Kind() SectionKind     { return KindModules }
func (s *ModulesSection) Header() SectionHeader { return s.SectionHeader }

// PricingPlan is one pricing card
type PricingPlan struct {
	Title      string   `yaml:"title"`
	Price      string   `yaml:"price"`
	Period     string   `yaml:"period"`
	SubPrice   string   `yaml:"sub_price"`
	Features   []string `yaml:"features"`
	ButtonText string   `yaml:"button_text"`
	Badge      string   `yaml:"badge"`
	Vibe       string   `yaml:"vibe"`
	Accent     string   `yaml:"accent"` // hex color, e.g. "#00CBD9"
	Featured   bool     `yaml:"featured,omitempty"`
}

// PricingSection lists the plans plus the trust bar under them
type PricingSection struct {
	SectionHeader `yaml:",inline"`

	Intro       []string      `yaml:"intro"`
	Plans       []PricingPlan `yaml:"plans"`
	TrustBadges []string      `yaml:"trust_badges"`
}

func (s *PricingSection) Kind() SectionKind     { return KindPricing }
func (s *PricingSection) Header() SectionHeader { return s.SectionHeader }

// SolutionsSection is the list of things the student will be able to do. Items are markdown.
type SolutionsSection struct {
	SectionHeader `yaml:",inline"`

	Items []string `yaml:"items"`
}

func (s *SolutionsSection) Kind() SectionKind     { return KindSolutions }
func (s *SolutionsSection) Header() SectionHeader { return s.SectionHeader }

// ContractCard is a closed-deal card in the networking section
type ContractCard struct {
	Amount string `yaml:"amount"`
	Label  string `yaml:"label"`
	Ref    string `yaml:"ref"`
	Gold   bool   `yaml:"gold,omitempty"`
}

// ChatLine is one message of the community chat excerpt
type ChatLine struct {
	Author string `yaml:"author"`
	Text   string `yaml:"text"`
}

// NetworkingSection shows the community and the contracts it leads to
type NetworkingSection struct {
	SectionHeader `yaml:",inline"`

	Contracts []ContractCard `yaml:"contracts"`
	Chat      []ChatLine     `yaml:"chat"`
}

func (s *NetworkingSection) Kind() SectionKind     { return KindNetworking }
func (s *NetworkingSection) Header() SectionHeader { return s.SectionHeader }

// GuaranteeSection is the money-back guarantee badge
type GuaranteeSection struct {
	SectionHeader `yaml:",inline"`

	Days       int           `yaml:"days"`
	Seal       string        `yaml:"seal"`
	Body       string        `yaml:"body"`
	CTA        *CallToAction `yaml:"cta,omitempty"`
	SecureNote string        `yaml:"secure_note"`
}

func (s *GuaranteeSection) Kind() SectionKind     { return KindGuarantee }
func (s *GuaranteeSection) Header() SectionHeader { return s.SectionHeader }

// AudienceLevel is one "who is this for" card
type AudienceLevel struct {
	Level       string   `yaml:"level"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Premium     bool     `yaml:"premium,omitempty"`
}

// AudienceSection lists the audience levels
type AudienceSection struct {
	SectionHeader `yaml:",inline"`

	Levels []AudienceLevel `yaml:"levels"`
}

func (s *AudienceSection) Kind() SectionKind     { return KindAudience }
func (s *AudienceSection) Header() SectionHeader { return s.SectionHeader }

// QuoteSection is a standalone quotation
type QuoteSection struct {
	SectionHeader `yaml:",inline"`

	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
}

func (s *QuoteSection) Kind() SectionKind     { return KindQuote }
func (s *QuoteSection) Header() SectionHeader { return s.SectionHeader }

// ManifestoSection is the author's closing narrative
type ManifestoSection struct {
	SectionHeader `yaml:",inline"`

	Verse       string   `yaml:"verse"`
	VerseSource string   `yaml:"verse_source"`
	Paragraphs  []string `yaml:"paragraphs"` // markdown
	Closing     string   `yaml:"closing"`
}

func (s *ManifestoSection) Kind() SectionKind     { return KindManifesto }
func (s *ManifestoSection) Header() SectionHeader { return s.SectionHeader }

// FooterSection closes the page
type FooterSection struct {
	SectionHeader `yaml:",inline"`

	Author    string `yaml:"author"`
	Tagline   string `yaml:"tagline"`
	Copyright string `yaml:"copyright"`
}

func (s *FooterSection) Kind() SectionKind     { return KindFooter }
func (s *FooterSection) Header() SectionHeader { return s.SectionHeader }

// IsInteractive reports whether a section kind owns a selection controller
func IsInteractive(kind SectionKind) bool {
	switch kind {
	case KindTestimonials, KindModules, KindFAQ:
		return true
	default:
		return false
	}
}
