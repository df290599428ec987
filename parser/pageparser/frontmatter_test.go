package pageparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxoblog/taxoblog/parser/metadecoders"
)

func TestParseFrontMatterAndContent_YAML(t *testing.T) {
	src := `---
title: Hello
tags:
  - a
  - b
---
The body.
`

	cf, err := ParseFrontMatterAndContent(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, metadecoders.YAML, cf.FrontMatterFormat)
	assert.Equal(t, "Hello", cf.FrontMatter["title"])
	assert.Equal(t, []any{"a", "b"}, cf.FrontMatter["tags"])
	assert.Equal(t, "The body.\n", string(cf.Content))
}

func TestParseFrontMatterAndContent_TOML(t *testing.T) {
	src := `+++
title = "Hello"
weight = 2
+++
Body here.
`

	cf, err := ParseFrontMatterAndContent(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, metadecoders.TOML, cf.FrontMatterFormat)
	assert.Equal(t, "Hello", cf.FrontMatter["title"])
	assert.Equal(t, "Body here.\n", string(cf.Content))
}

func TestParseFrontMatterAndContent_NoFrontMatter(t *testing.T) {
	src := "Just some text.\n"

	cf, err := ParseFrontMatterAndContent(strings.NewReader(src))
	require.NoError(t, err)

	assert.Empty(t, cf.FrontMatter)
	assert.Equal(t, src, string(cf.Content))
}

func TestParseFrontMatterAndContent_UnterminatedFence(t *testing.T) {
	src := "---\ntitle: Hello\nno closing fence"

	cf, err := ParseFrontMatterAndContent(strings.NewReader(src))
	require.NoError(t, err)

	// The whole input is treated as content.
	assert.Empty(t, cf.FrontMatter)
	assert.Equal(t, src, string(cf.Content))
}

func TestParseFrontMatterAndContent_DelimiterInsideValue(t *testing.T) {
	src := "---\ntitle: \"--- not a fence\"\n---\nBody.\n"

	cf, err := ParseFrontMatterAndContent(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "--- not a fence", cf.FrontMatter["title"])
	assert.Equal(t, "Body.\n", string(cf.Content))
}

func TestParseFrontMatterAndContent_EmptyBody(t *testing.T) {
	src := "---\ntitle: Only Meta\n---\n"

	cf, err := ParseFrontMatterAndContent(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "Only Meta", cf.FrontMatter["title"])
	assert.Empty(t, cf.Content)
}
