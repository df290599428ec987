package bloglib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/taxoblog/taxoblog/common/maps"
	"github.com/taxoblog/taxoblog/config"
)

// ConfigSourceDescriptor describes where to find the config.
type ConfigSourceDescriptor struct {
	Fs afero.Fs

	// The project's working dir.
	WorkingDir string

	// The config file to load, config.toml in WorkingDir when empty.
	Filename string
}

// LoadConfig loads the site config, applying the defaults for anything
// not set. A missing config file is not an error; you get the defaults.
func LoadConfig(d ConfigSourceDescriptor) (config.Provider, error) {
	filename := d.Filename
	if filename == "" {
		filename = filepath.Join(d.WorkingDir, "config.toml")
	}

	exists, err := afero.Exists(d.Fs, filename)
	if err != nil {
		return nil, err
	}

	var provider config.Provider
	if exists {
		provider, err = config.FromFile(d.Fs, filename)
		if err != nil {
			return nil, fmt.Errorf("load config file %q: %w", filename, err)
		}
	} else {
		provider = config.New()
	}

	provider.SetDefaults(maps.Params{
		"title":             "",
		"baseurl":           "/",
		"contentdir":        "content",
		"publishdir":        "public",
		"layoutsdir":        "layouts",
		"minify":            true,
		"removepathaccents": true,
		"titlecasestyle":    "AP",
		"ignorefiles":       []string{},
	})

	return provider, nil
}

// siteConfigHolder holds the typed settings the site build needs over and
// over, decoded once from the Provider.
type siteConfigHolder struct {
	Title      string
	BaseURL    string
	ContentDir string
	PublishDir string
	LayoutsDir string
	WorkingDir string
	Minify     bool
}

func decodeSiteConfig(cfg config.Provider) (siteConfigHolder, error) {
	var conf siteConfigHolder
	if err := mapstructure.WeakDecode(cfg.Get(""), &conf); err != nil {
		return conf, fmt.Errorf("decode site config: %w", err)
	}

	// mapstructure is case insensitive, but make the handful of path
	// settings absolute-friendly here in one place.
	if conf.WorkingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return conf, err
		}
		conf.WorkingDir = wd
	}

	return conf, nil
}
