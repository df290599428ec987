package publisher

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxoblog/taxoblog/config"
	"github.com/taxoblog/taxoblog/media"
	"github.com/taxoblog/taxoblog/output"
)

func newTestPublisher(t *testing.T) (DestinationPublisher, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	pub, err := NewDestinationPublisher(fs, output.DefaultFormats, media.DefaultTypes, config.New())
	require.NoError(t, err)
	return pub, fs
}

func TestPublish_WritesFile(t *testing.T) {
	pub, fs := newTestPublisher(t)

	err := pub.Publish(Descriptor{
		Src:          strings.NewReader("<html><body>hi</body></html>"),
		TargetPath:   "posts/hello/index.html",
		OutputFormat: output.HTMLFormat,
	})
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, "posts/hello/index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>hi</body></html>", string(b))
}

func TestPublish_MinifiesWhenAsked(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.New()
	cfg.Set("minify", true)

	pub, err := NewDestinationPublisher(fs, output.DefaultFormats, media.DefaultTypes, cfg)
	require.NoError(t, err)

	err = pub.Publish(Descriptor{
		Src:          strings.NewReader("<html>\n  <body>\n    <p>hi</p>\n  </body>\n</html>\n"),
		TargetPath:   "index.html",
		OutputFormat: output.HTMLFormat,
		Minify:       true,
	})
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, "index.html")
	require.NoError(t, err)
	assert.NotContains(t, string(b), "\n  ")
	assert.Contains(t, string(b), "<p>hi</p>")
}

func TestPublish_RequiresTargetPath(t *testing.T) {
	pub, _ := newTestPublisher(t)

	err := pub.Publish(Descriptor{Src: strings.NewReader("x")})
	assert.Error(t, err)
}

func TestPublish_CreatesMissingDirectories(t *testing.T) {
	pub, fs := newTestPublisher(t)

	err := pub.Publish(Descriptor{
		Src:          strings.NewReader("deep"),
		TargetPath:   "a/b/c/index.html",
		OutputFormat: output.HTMLFormat,
	})
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "a/b/c/index.html")
	require.NoError(t, err)
	assert.True(t, exists)
}
