package helpers

import (
	"html/template"
	"strings"

	"github.com/taxoblog/taxoblog/config"
	"github.com/taxoblog/taxoblog/markup"
	"github.com/taxoblog/taxoblog/markup/converter"
)

// ContentSpec provides functionality to render markdown content.
type ContentSpec struct {
	Converters markup.ConverterProvider

	Cfg config.Provider
}

// NewContentSpec returns a ContentSpec initialized
// with the appropriate fields from the given config.Provider.
func NewContentSpec(cfg config.Provider) (*ContentSpec, error) {
	spec := &ContentSpec{
		Cfg: cfg,
	}

	converterProvider, err := markup.NewConverterProvider(converter.ProviderConfig{Cfg: cfg})
	if err != nil {
		return nil, err
	}

	spec.Converters = converterProvider

	return spec, nil
}

// ResolveMarkup normalizes a markup name, e.g. "md" into "markdown".
func (c *ContentSpec) ResolveMarkup(in string) string {
	in = strings.ToLower(in)
	switch in {
	case "md", "markdown", "mdown":
		return "markdown"
	case "html", "htm":
		return "html"
	default:
		if conv := c.Converters.Get(in); conv != nil {
			return conv.Name()
		}
	}
	return ""
}

// BytesToHTML converts bytes to type template.HTML.
func BytesToHTML(b []byte) template.HTML {
	return template.HTML(string(b))
}
