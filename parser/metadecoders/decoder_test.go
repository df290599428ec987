package metadecoders

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalToMap_TOML(t *testing.T) {
	m, err := Default.UnmarshalToMap([]byte(`title = "Hello"
[params]
subtitle = "World"`), TOML)
	require.NoError(t, err)

	assert.Equal(t, "Hello", m["title"])
	params, ok := m["params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "World", params["subtitle"])
}

func TestUnmarshalToMap_YAMLNestedMapsGetStringKeys(t *testing.T) {
	m, err := Default.UnmarshalToMap([]byte(`a:
  b:
    c: 3`), YAML)
	require.NoError(t, err)

	a, ok := m["a"].(map[string]any)
	require.True(t, ok, "nested YAML maps must have string keys, got %T", m["a"])
	b, ok := a["b"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, b["c"])
}

func TestUnmarshalToMap_NilData(t *testing.T) {
	m, err := Default.UnmarshalToMap(nil, YAML)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestUnmarshalFileToMap(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.toml", []byte(`baseURL = "/"`), 0644))

	m, err := Default.UnmarshalFileToMap(fs, "config.toml")
	require.NoError(t, err)
	assert.Equal(t, "/", m["baseURL"])
}

func TestUnmarshalFileToMap_UnknownFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Default.UnmarshalFileToMap(fs, "config.ini")
	assert.Error(t, err)
}

func TestFormatFromString(t *testing.T) {
	assert.Equal(t, TOML, FormatFromString("config.toml"))
	assert.Equal(t, YAML, FormatFromString("data.yaml"))
	assert.Equal(t, YAML, FormatFromString("data.yml"))
	assert.Equal(t, Format(""), FormatFromString("notes.txt"))
}

func TestFormatFromFrontMatterType(t *testing.T) {
	assert.Equal(t, TOML, FormatFromFrontMatterType('+'))
	assert.Equal(t, YAML, FormatFromFrontMatterType('-'))
	assert.Equal(t, Format(""), FormatFromFrontMatterType('x'))
}
