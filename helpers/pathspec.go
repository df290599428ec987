package helpers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/taxoblog/taxoblog/config"
)

// PathSpec holds the parts of the site configuration that decide how
// paths and URLs are built.
type PathSpec struct {
	// The configured baseURL, e.g. "https://example.org/blog/".
	BaseURL string

	// Any path component of BaseURL, without trailing slash.
	basePath string

	removePathAccents bool

	Cfg config.Provider
}

// NewPathSpec creates a new PathSpec from the given config.
func NewPathSpec(cfg config.Provider) (*PathSpec, error) {
	baseURL := cfg.GetString("baseURL")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL %q: %w", baseURL, err)
	}

	return &PathSpec{
		BaseURL:           baseURL,
		basePath:          strings.TrimSuffix(u.Path, "/"),
		removePathAccents: cfg.GetBool("removepathaccents"),
		Cfg:               cfg,
	}, nil
}

// GetBasePath returns any path component of the baseURL.
func (p *PathSpec) GetBasePath() string {
	return p.basePath
}
