package bloglib

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(ConfigSourceDescriptor{
		Fs:         afero.NewMemMapFs(),
		WorkingDir: "/mysite",
	})
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.GetString("baseURL"))
	assert.Equal(t, "content", cfg.GetString("contentDir"))
	assert.Equal(t, "public", cfg.GetString("publishDir"))
	assert.Equal(t, "layouts", cfg.GetString("layoutsDir"))
	assert.True(t, cfg.GetBool("minify"))
	assert.True(t, cfg.GetBool("removePathAccents"))
	assert.Equal(t, "AP", cfg.GetString("titleCaseStyle"))
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mysite/config.toml", []byte(`
title = "Configured"
publishDir = "dist"
minify = false
`), 0644))

	cfg, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/mysite"})
	require.NoError(t, err)

	assert.Equal(t, "Configured", cfg.GetString("title"))
	assert.Equal(t, "dist", cfg.GetString("publishDir"))
	assert.False(t, cfg.GetBool("minify"))
	// Untouched defaults survive.
	assert.Equal(t, "content", cfg.GetString("contentDir"))
}

func TestLoadConfig_BadTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/mysite/config.toml", []byte(`title = `), 0644))

	_, err := LoadConfig(ConfigSourceDescriptor{Fs: fs, WorkingDir: "/mysite"})
	assert.Error(t, err)
}

func TestDecodeSiteConfig(t *testing.T) {
	cfg, err := LoadConfig(ConfigSourceDescriptor{
		Fs:         afero.NewMemMapFs(),
		WorkingDir: "/mysite",
	})
	require.NoError(t, err)
	cfg.Set("title", "Typed")
	cfg.Set("workingDir", "/mysite")

	conf, err := decodeSiteConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "Typed", conf.Title)
	assert.Equal(t, "/mysite", conf.WorkingDir)
	assert.Equal(t, "content", conf.ContentDir)
	assert.Equal(t, "public", conf.PublishDir)
	assert.True(t, conf.Minify)
}
