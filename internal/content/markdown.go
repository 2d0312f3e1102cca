package content

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// DefaultStyle is the glamour style used when none is configured
const DefaultStyle = "dark"

// Markdown renders the markdown fields of the content for the browser and the terminal.
// It is safe for concurrent use.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	style  string

	mu   sync.Mutex
	term map[int]*glamour.TermRenderer // by wrap width
}

// NewMarkdown creates a renderer. style names a glamour style ("dark", "light", "notty", ...).
func NewMarkdown(style string) *Markdown {
	if style == "" {
		style = DefaultStyle
	}
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	return &Markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: policy,
		style:  style,
		term:   make(map[int]*glamour.TermRenderer),
	}
}

// HTML converts markdown to sanitized HTML
func (m *Markdown) HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return m.policy.Sanitize(buf.String()), nil
}

// InlineHTML is HTML without the paragraph wrapper, for markdown that sits inside
// a list item or a heading
func (m *Markdown) InlineHTML(src string) (string, error) {
	out, err := m.HTML(src)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

// Terminal renders markdown for a terminal of the given width
func (m *Markdown) Terminal(src string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := m.termRenderer(width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

func (m *Markdown) termRenderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.term[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("glamour style %q: %w", m.style, err)
	}
	m.term[width] = r
	return r, nil
}

// Plain strips markdown down to its text. Paragraphs are separated by a blank line.
func Plain(src string) string {
	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Kind() == ast.KindParagraph && n.NextSibling() != nil {
				b.WriteString("\n\n")
			}
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
