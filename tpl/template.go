// Package tpl defines the template handling interfaces.
package tpl

import (
	"io"

	"github.com/taxoblog/taxoblog/output"
)

// Template is a parsed, executable template.
type Template interface {
	Name() string
}

// TemplateHandler finds and executes templates.
type TemplateHandler interface {
	TemplateFinder
	Execute(t Template, wr io.Writer, data any) error
	LookupLayout(d output.LayoutDescriptor) (Template, bool, error)
	HasTemplate(name string) bool
}

// TemplateFinder finds templates.
type TemplateFinder interface {
	Lookup(name string) (Template, bool)
}
