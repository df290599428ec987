// Package goldmark converts Markdown to HTML using Goldmark.
package goldmark

import (
	"bytes"

	"github.com/taxoblog/taxoblog/markup/converter"
	"github.com/taxoblog/taxoblog/markup/goldmark/goldmark_config"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Provider is the package entry point.
var Provider converter.ProviderProvider = provide{}

type provide struct{}

func (p provide) New(cfg converter.ProviderConfig) (converter.Provider, error) {
	md := newMarkdown(cfg)

	return converter.NewProvider("goldmark", func(ctx converter.DocumentContext) (converter.Converter, error) {
		return &goldmarkConverter{
			ctx: ctx,
			cfg: cfg,
			md:  md,
		}, nil
	}), nil
}

type goldmarkConverter struct {
	md  goldmark.Markdown
	ctx converter.DocumentContext
	cfg converter.ProviderConfig
}

func newMarkdown(pcfg converter.ProviderConfig) goldmark.Markdown {
	cfg := goldmark_config.Default

	var (
		rendererOptions []renderer.Option
		extensions      []goldmark.Extender
		parserOptions   []parser.Option
	)

	if cfg.Renderer.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if cfg.Renderer.XHTML {
		rendererOptions = append(rendererOptions, html.WithXHTML())
	}
	if cfg.Renderer.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	// Fenced code blocks get a language class resolved through Chroma's
	// lexer registry.
	extensions = append(extensions, newCodeBlocks())

	if cfg.Extensions.Table {
		extensions = append(extensions, extension.Table)
	}
	if cfg.Extensions.Strikethrough {
		extensions = append(extensions, extension.Strikethrough)
	}
	if cfg.Extensions.Linkify {
		extensions = append(extensions, extension.NewLinkify(
			extension.WithLinkifyAllowedProtocols([][]byte{
				[]byte(cfg.Extensions.LinkifyProtocol),
			}),
		))
	}
	if cfg.Extensions.TaskList {
		extensions = append(extensions, extension.TaskList)
	}
	if cfg.Extensions.Typographer {
		extensions = append(extensions, extension.Typographer)
	}
	if cfg.Extensions.DefinitionList {
		extensions = append(extensions, extension.DefinitionList)
	}
	if cfg.Extensions.Footnote {
		extensions = append(extensions, extension.Footnote)
	}
	if cfg.Parser.AutoHeadingID {
		parserOptions = append(parserOptions, parser.WithAutoHeadingID())
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(rendererOptions...),
	)
}

func (c *goldmarkConverter) Convert(ctx converter.RenderContext) (converter.Result, error) {
	buf := &bytes.Buffer{}
	if err := c.md.Convert(ctx.Src, buf); err != nil {
		return nil, err
	}
	return converter.Bytes(buf.Bytes()), nil
}
