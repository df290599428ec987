package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxoblog/taxoblog/common/maps"
)

func TestDefaultConfigProvider_SetAndGet(t *testing.T) {
	cfg := New()

	cfg.Set("title", "My Blog")
	cfg.Set("minify", true)
	cfg.Set("weight", 42)

	assert.Equal(t, "My Blog", cfg.GetString("title"))
	assert.True(t, cfg.GetBool("minify"))
	assert.Equal(t, 42, cfg.GetInt("weight"))
}

func TestDefaultConfigProvider_KeysAreCaseInsensitive(t *testing.T) {
	cfg := New()
	cfg.Set("baseURL", "https://example.org/")

	assert.Equal(t, "https://example.org/", cfg.GetString("baseurl"))
	assert.Equal(t, "https://example.org/", cfg.GetString("BASEURL"))
	assert.True(t, cfg.IsSet("baseUrl"))
}

func TestDefaultConfigProvider_NestedKeys(t *testing.T) {
	cfg := New()
	cfg.Set("markup", map[string]any{
		"goldmark": map[string]any{
			"linkify": true,
		},
	})

	assert.Equal(t, true, cfg.Get("markup.goldmark.linkify"))
	assert.Nil(t, cfg.Get("markup.asciidoc"))
}

func TestDefaultConfigProvider_SetDefaults(t *testing.T) {
	cfg := New()
	cfg.Set("title", "Keep Me")

	cfg.SetDefaults(maps.Params{
		"title":      "Default Title",
		"publishdir": "public",
	})

	assert.Equal(t, "Keep Me", cfg.GetString("title"))
	assert.Equal(t, "public", cfg.GetString("publishDir"))
}

func TestDefaultConfigProvider_GetStringSlice(t *testing.T) {
	cfg := New()
	cfg.Set("ignoreFiles", []string{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("ignorefiles"))
}

func TestGetStringSlicePreserveString(t *testing.T) {
	cfg := New()
	cfg.Set("one", "a b c")
	cfg.Set("many", []any{"a", "b"})

	assert.Equal(t, []string{"a b c"}, GetStringSlicePreserveString(cfg, "one"))
	assert.Equal(t, []string{"a", "b"}, GetStringSlicePreserveString(cfg, "many"))
	assert.Nil(t, GetStringSlicePreserveString(cfg, "missing"))
}

func TestFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.toml", []byte(`
title = "From File"
baseURL = "https://example.org/"
`), 0644))

	cfg, err := FromFile(fs, "config.toml")
	require.NoError(t, err)

	assert.Equal(t, "From File", cfg.GetString("title"))
	assert.Equal(t, "https://example.org/", cfg.GetString("baseURL"))
}
