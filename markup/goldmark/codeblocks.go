package goldmark

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

func newCodeBlocks() goldmark.Extender {
	return &codeBlocksExtension{}
}

type codeBlocksExtension struct{}

// Extend implements goldmark.Extender.
func (e *codeBlocksExtension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newCodeBlockRenderer(), 100),
	))
}

func newCodeBlockRenderer() renderer.NodeRenderer {
	return &codeBlockRenderer{
		Config: html.Config{
			Writer: html.DefaultWriter,
		},
	}
}

type codeBlockRenderer struct {
	html.Config
}

// RegisterFuncs implements NodeRenderer.RegisterFuncs.
func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)

	if !entering {
		w.WriteString("</code></pre>\n")
		return ast.WalkContinue, nil
	}

	w.WriteString("<pre><code")
	if lang := n.Language(source); lang != nil {
		w.WriteString(` class="language-`)
		r.Writer.Write(w, []byte(languageAlias(string(lang))))
		w.WriteString(`"`)
	}
	w.WriteString(">")

	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		r.Writer.RawWrite(w, line.Value(source))
	}

	return ast.WalkContinue, nil
}

// languageAlias resolves the code fence info string to the primary alias of
// the matching Chroma lexer, e.g. "Objective-C" -> "objective-c".
// Unknown languages are passed through untouched.
func languageAlias(lang string) string {
	if lexer := lexers.Get(lang); lexer != nil {
		if aliases := lexer.Config().Aliases; len(aliases) > 0 {
			return aliases[0]
		}
	}
	return lang
}
