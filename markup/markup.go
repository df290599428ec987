// Package markup wires up the available markup converters.
package markup

import (
	"strings"

	"github.com/taxoblog/taxoblog/markup/converter"
	"github.com/taxoblog/taxoblog/markup/goldmark"
)

// ConverterProvider looks up converter providers by markup name.
type ConverterProvider interface {
	Get(name string) converter.Provider
}

// NewConverterProvider creates a ConverterProvider with all the converters
// registered.
func NewConverterProvider(cfg converter.ProviderConfig) (ConverterProvider, error) {
	converters := make(map[string]converter.Provider)

	add := func(p converter.ProviderProvider, aliases ...string) error {
		c, err := p.New(cfg)
		if err != nil {
			return err
		}

		aliases = append(aliases, c.Name())
		addConverter(converters, c, aliases...)
		return nil
	}

	// Markdown is the only markup in play; Goldmark is the default handler.
	if err := add(goldmark.Provider, "md", "mdown", "markdown"); err != nil {
		return nil, err
	}

	return &converterRegistry{
		config:     cfg,
		converters: converters,
	}, nil
}

func addConverter(m map[string]converter.Provider, c converter.Provider, aliases ...string) {
	for _, alias := range aliases {
		m[alias] = c
	}
}

type converterRegistry struct {
	// Maps name (md, markdown, goldmark etc.) to a converter provider.
	// Note that this is also used for aliasing, so the same converter
	// may be registered multiple times.
	// All names are lower case.
	converters map[string]converter.Provider

	config converter.ProviderConfig
}

func (r *converterRegistry) Get(name string) converter.Provider {
	return r.converters[strings.ToLower(name)]
}
