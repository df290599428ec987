// Package deps holds dependencies used by many packages.
package deps

import (
	"fmt"

	"github.com/taxoblog/taxoblog/blogfs"
	"github.com/taxoblog/taxoblog/common/loggers"
	"github.com/taxoblog/taxoblog/config"
	"github.com/taxoblog/taxoblog/helpers"
	"github.com/taxoblog/taxoblog/media"
	"github.com/taxoblog/taxoblog/output"
	"github.com/taxoblog/taxoblog/source"
	"github.com/taxoblog/taxoblog/tpl"
)

// Deps holds dependencies used by many.
// There will be normally only one instance of deps in play
// at a given time, i.e. one per Site built.
type Deps struct {
	// The logger to use.
	Log loggers.Logger `json:"-"`

	// The PathSpec to use
	*helpers.PathSpec `json:"-"`

	// The ContentSpec to use
	*helpers.ContentSpec `json:"-"`

	// The SourceSpec to use
	SourceSpec *source.SourceSpec `json:"-"`

	// The templates to use.
	tmpl tpl.TemplateHandler

	// All the output formats available for the current site.
	OutputFormatsConfig output.Formats

	// The media types configured.
	MediaTypesConfig media.Types

	// The file systems to use.
	Fs *blogfs.Fs `json:"-"`

	// The configuration to use
	Cfg config.Provider `json:"-"`
}

// DepsCfg contains configuration options that can be used to configure
// the build on a global level, i.e. logging etc.
// Nil values will be given default values.
type DepsCfg struct {
	// The logger to use. Only set in some tests.
	Logger loggers.Logger

	// The file systems to use
	Fs *blogfs.Fs

	// The configuration to use.
	Cfg config.Provider

	// The media types configured.
	MediaTypes media.Types

	// The output formats configured.
	OutputFormats output.Formats
}

func (d *Deps) Tmpl() tpl.TemplateHandler {
	return d.tmpl
}

func (d *Deps) SetTmpl(tmpl tpl.TemplateHandler) {
	d.tmpl = tmpl
}

// New initializes a Deps struct.
// Defaults are set for nil values.
func New(cfg DepsCfg) (*Deps, error) {
	fs := cfg.Fs
	if fs == nil {
		panic("must have a Fs: deps.New")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = loggers.NewDefaultLogger()
	}

	if cfg.MediaTypes == nil {
		cfg.MediaTypes = media.DefaultTypes
	}

	if cfg.OutputFormats == nil {
		cfg.OutputFormats = output.DefaultFormats
	}

	ps, err := helpers.NewPathSpec(cfg.Cfg)
	if err != nil {
		return nil, fmt.Errorf("create PathSpec: %w", err)
	}

	contentSpec, err := helpers.NewContentSpec(cfg.Cfg)
	if err != nil {
		return nil, err
	}

	sp, err := source.NewSourceSpec(ps, fs.Source)
	if err != nil {
		return nil, err
	}

	d := &Deps{
		Log:                 logger,
		Fs:                  fs,
		PathSpec:            ps,
		ContentSpec:         contentSpec,
		SourceSpec:          sp,
		OutputFormatsConfig: cfg.OutputFormats,
		MediaTypesConfig:    cfg.MediaTypes,
		Cfg:                 cfg.Cfg,
	}

	return d, nil
}
