// Package tplimpl provides the TemplateHandler implementation on top of
// html/template.
package tplimpl

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/taxoblog/taxoblog/output"
	"github.com/taxoblog/taxoblog/tpl"
)

// NewTemplateHandler creates a handler with the embedded templates parsed
// and any overrides from layoutsDir applied on top.
func NewTemplateHandler(fs afero.Fs, layoutsDir string, funcs template.FuncMap) (tpl.TemplateHandler, error) {
	t := template.New("").Funcs(funcs)

	for name, content := range embeddedTemplates {
		if _, err := t.New(name).Parse(content); err != nil {
			return nil, fmt.Errorf("parse embedded template %q: %w", name, err)
		}
	}

	h := &templateHandler{t: t}

	if layoutsDir != "" {
		if err := h.loadLayouts(fs, layoutsDir); err != nil {
			return nil, err
		}
	}

	return h, nil
}

type templateHandler struct {
	t *template.Template
}

func (h *templateHandler) loadLayouts(fs afero.Fs, dir string) error {
	exists, err := afero.DirExists(fs, dir)
	if err != nil || !exists {
		return err
	}

	return afero.Walk(fs, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		if !strings.HasSuffix(path, ".html") {
			return nil
		}

		name, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name = filepath.ToSlash(name)

		b, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}

		if _, err := h.t.New(name).Parse(string(b)); err != nil {
			return fmt.Errorf("parse template %q: %w", name, err)
		}
		return nil
	})
}

func (h *templateHandler) Lookup(name string) (tpl.Template, bool) {
	tt := h.t.Lookup(name)
	if tt == nil {
		return nil, false
	}
	return templateAdapter{tt}, true
}

func (h *templateHandler) HasTemplate(name string) bool {
	_, found := h.Lookup(name)
	return found
}

func (h *templateHandler) Execute(t tpl.Template, wr io.Writer, data any) error {
	adapter, ok := t.(templateAdapter)
	if !ok {
		return fmt.Errorf("unexpected template type %T", t)
	}
	return adapter.t.Execute(wr, data)
}

// LookupLayout finds the first matching layout for the given descriptor.
func (h *templateHandler) LookupLayout(d output.LayoutDescriptor) (tpl.Template, bool, error) {
	for _, name := range layoutCandidates(d) {
		if t, found := h.Lookup(name); found {
			return t, true, nil
		}
	}
	return nil, false, nil
}

// layoutCandidates returns the layout names to try, most specific first.
func layoutCandidates(d output.LayoutDescriptor) []string {
	var names []string

	if d.Layout != "" {
		names = append(names, "_default/"+d.Layout+".html")
	}

	switch d.Kind {
	case "home":
		names = append(names, "index.html", "_default/list.html")
	case "taxonomy":
		names = append(names, "_default/terms.html", "_default/list.html")
	default:
		names = append(names, "_default/single.html")
	}

	return names
}

type templateAdapter struct {
	t *template.Template
}

func (t templateAdapter) Name() string {
	return t.t.Name()
}
