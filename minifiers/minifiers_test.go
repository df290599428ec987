package minifiers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxoblog/taxoblog/config"
	"github.com/taxoblog/taxoblog/media"
	"github.com/taxoblog/taxoblog/output"
	"github.com/taxoblog/taxoblog/transform"
)

func TestNew_HTMLMinification(t *testing.T) {
	cfg := config.New()
	cfg.Set("minify", true)

	c, err := New(media.DefaultTypes, output.DefaultFormats, cfg)
	require.NoError(t, err)
	assert.True(t, c.MinifyOutput)

	tr := c.Transformer(media.HTMLType)
	require.NotNil(t, tr)

	var to bytes.Buffer
	chain := transform.New(tr)
	require.NoError(t, chain.Apply(&to, strings.NewReader("<html>\n<body>\n  <p>  hi  </p>\n</body>\n</html>\n")))

	got := to.String()
	assert.NotContains(t, got, "\n  ")
	assert.Contains(t, got, "<p>hi</p>")
}

func TestNew_MinifyDisabledByDefault(t *testing.T) {
	c, err := New(media.DefaultTypes, output.DefaultFormats, config.New())
	require.NoError(t, err)
	assert.False(t, c.MinifyOutput)
}

func TestDecodeConfig_MapForm(t *testing.T) {
	cfg := config.New()
	cfg.Set("minify", map[string]any{
		"disablehtml": true,
	})

	conf, err := decodeConfig(cfg)
	require.NoError(t, err)

	assert.True(t, conf.MinifyOutput)
	assert.True(t, conf.DisableHTML)
}

func TestDecodeConfig_KeepsTdewolffDefaults(t *testing.T) {
	conf, err := decodeConfig(config.New())
	require.NoError(t, err)

	assert.True(t, conf.Tdewolff.HTML.KeepDocumentTags)
	assert.True(t, conf.Tdewolff.HTML.KeepEndTags)
}

func TestTransformer_NoMinifierForUnknownType(t *testing.T) {
	c, err := New(media.DefaultTypes, output.DefaultFormats, config.New())
	require.NoError(t, err)

	assert.Nil(t, c.Transformer(media.MarkdownType))
}
