package goldmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxoblog/taxoblog/config"
	"github.com/taxoblog/taxoblog/markup/converter"
)

func convert(t *testing.T, src string) string {
	t.Helper()

	p, err := Provider.New(converter.ProviderConfig{Cfg: config.New()})
	require.NoError(t, err)

	c, err := p.New(converter.DocumentContext{DocumentName: "test.md"})
	require.NoError(t, err)

	r, err := c.Convert(converter.RenderContext{Src: []byte(src)})
	require.NoError(t, err)

	return string(r.Bytes())
}

func TestConvert_Basic(t *testing.T) {
	got := convert(t, "## Hello\n\nSome *emphasis*.\n")

	assert.Contains(t, got, "<h2 id=\"hello\">Hello</h2>")
	assert.Contains(t, got, "<em>emphasis</em>")
}

func TestConvert_GFMTable(t *testing.T) {
	got := convert(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")

	assert.Contains(t, got, "<table>")
	assert.Contains(t, got, "<td>1</td>")
}

func TestConvert_Strikethrough(t *testing.T) {
	got := convert(t, "~~gone~~\n")
	assert.Contains(t, got, "<del>gone</del>")
}

func TestConvert_CodeBlockLanguageClass(t *testing.T) {
	got := convert(t, "```go\nfmt.Println(\"hi\")\n```\n")

	assert.Contains(t, got, `<pre><code class="language-go">`)
	assert.Contains(t, got, "fmt.Println")
}

func TestConvert_CodeBlockLanguageAlias(t *testing.T) {
	// The info string is resolved through Chroma's lexer registry to its
	// primary alias.
	got := convert(t, "```Objective-C\nNSLog(@\"hi\");\n```\n")
	assert.Contains(t, got, `class="language-objective-c"`)
}

func TestConvert_CodeBlockUnknownLanguagePassedThrough(t *testing.T) {
	got := convert(t, "```notalanguage\nx\n```\n")
	assert.Contains(t, got, `class="language-notalanguage"`)
}

func TestConvert_CodeBlockEscapesHTML(t *testing.T) {
	got := convert(t, "```html\n<script>alert(1)</script>\n```\n")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.NotContains(t, got, "<script>alert")
}

func TestLanguageAlias(t *testing.T) {
	assert.Equal(t, "go", languageAlias("go"))
	assert.Equal(t, "objective-c", languageAlias("Objective-C"))
	assert.Equal(t, "made-up", languageAlias("made-up"))
}
