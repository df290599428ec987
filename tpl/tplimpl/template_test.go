package tplimpl

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxoblog/taxoblog/output"
)

var testFuncs = template.FuncMap{
	"urlize": func(s string) string { return s },
}

func TestNewTemplateHandler_EmbeddedTemplates(t *testing.T) {
	h, err := NewTemplateHandler(afero.NewMemMapFs(), "", testFuncs)
	require.NoError(t, err)

	for _, name := range []string{
		"_default/single.html",
		"_default/list.html",
		"_default/terms.html",
		"partials/terms.html",
	} {
		assert.True(t, h.HasTemplate(name), "embedded template %q", name)
	}
}

func TestLookupLayout_KindMapping(t *testing.T) {
	h, err := NewTemplateHandler(afero.NewMemMapFs(), "", testFuncs)
	require.NoError(t, err)

	tests := []struct {
		kind, want string
	}{
		{"home", "_default/list.html"},
		{"taxonomy", "_default/terms.html"},
		{"page", "_default/single.html"},
	}

	for _, tt := range tests {
		templ, found, err := h.LookupLayout(output.LayoutDescriptor{Kind: tt.kind})
		require.NoError(t, err)
		require.True(t, found, "kind %q", tt.kind)
		assert.Equal(t, tt.want, templ.Name())
	}
}

func TestLookupLayout_ProjectOverrideWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/layouts/index.html", []byte("home override"), 0644))

	h, err := NewTemplateHandler(fs, "/layouts", testFuncs)
	require.NoError(t, err)

	templ, found, err := h.LookupLayout(output.LayoutDescriptor{Kind: "home"})
	require.NoError(t, err)
	require.True(t, found)
	// index.html is more specific than _default/list.html.
	assert.Equal(t, "index.html", templ.Name())
}

func TestLookupLayout_ExplicitLayoutFirst(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/layouts/_default/fancy.html", []byte("fancy"), 0644))

	h, err := NewTemplateHandler(fs, "/layouts", testFuncs)
	require.NoError(t, err)

	templ, found, err := h.LookupLayout(output.LayoutDescriptor{Kind: "page", Layout: "fancy"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "_default/fancy.html", templ.Name())
}

func TestExecute(t *testing.T) {
	h, err := NewTemplateHandler(afero.NewMemMapFs(), "", testFuncs)
	require.NoError(t, err)

	templ, found := h.Lookup("partials/terms.html")
	require.True(t, found)

	var buf bytes.Buffer
	require.NoError(t, h.Execute(templ, &buf, nil))
	assert.Empty(t, buf.String())
}
