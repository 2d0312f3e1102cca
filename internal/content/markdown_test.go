package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRendersEmphasis(t *testing.T) {
	m := NewMarkdown("notty")
	out, err := m.HTML("Dominar Técnicas de **Desenho Manual**.")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Desenho Manual</strong>")
	assert.Contains(t, out, "<p>")
}

func TestHTMLSanitizes(t *testing.T) {
	m := NewMarkdown("notty")
	out, err := m.HTML("oi <script>alert(1)</script> [link](https://example.com)")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `rel="nofollow"`)
}

func TestInlineHTMLDropsParagraph(t *testing.T) {
	m := NewMarkdown("notty")
	out, err := m.InlineHTML("Ganhar **TEMPO**")
	require.NoError(t, err)
	assert.Equal(t, "Ganhar <strong>TEMPO</strong>", out)

	out, err = m.InlineHTML("um\n\ndois")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "<p>"), "multi-paragraph input keeps its paragraphs")
}

func TestTerminalWraps(t *testing.T) {
	m := NewMarkdown("notty")
	out, err := m.Terminal("Assim que seu pagamento for confirmado, você receberá um e-mail com login e senha para nossa área de membros exclusiva.", 40)
	require.NoError(t, err)
	assert.Contains(t, out, "pagamento")
	assert.Greater(t, len(strings.Split(out, "\n")), 1, "long answers wrap")
}

func TestTerminalUnknownStyle(t *testing.T) {
	m := NewMarkdown("/no/such/style.json")
	_, err := m.Terminal("x", 40)
	assert.Error(t, err)
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "Atuar no Mercado GRINGO e Ganhar em Dólar.", Plain("Atuar no **Mercado GRINGO** e Ganhar em Dólar."))
	assert.Equal(t, "um\n\ndois", Plain("um\n\ndois"))
	assert.Equal(t, "linha um linha dois", Plain("linha um\nlinha dois"))
}
