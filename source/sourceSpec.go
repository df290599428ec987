// Package source collects the content files a site is built from.
package source

import (
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
	"github.com/taxoblog/taxoblog/config"
	"github.com/taxoblog/taxoblog/helpers"
)

// SourceSpec abstracts content file creation and filtering.
type SourceSpec struct {
	*helpers.PathSpec

	SourceFs afero.Fs

	shouldInclude func(filename string) bool
}

// NewSourceSpec initializes SourceSpec using the given filesystem and PathSpec.
// The ignoreFiles config setting holds glob patterns matched against the
// content-relative path of each file.
func NewSourceSpec(ps *helpers.PathSpec, fs afero.Fs) (*SourceSpec, error) {
	ignoreFiles := config.GetStringSlicePreserveString(ps.Cfg, "ignorefiles")

	var ignoreGlobs []glob.Glob
	for _, pattern := range ignoreFiles {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		ignoreGlobs = append(ignoreGlobs, g)
	}

	shouldInclude := func(filename string) bool {
		filename = filepath.ToSlash(filename)
		for _, g := range ignoreGlobs {
			if g.Match(filename) {
				return false
			}
		}
		return true
	}

	return &SourceSpec{
		PathSpec:      ps,
		SourceFs:      fs,
		shouldInclude: shouldInclude,
	}, nil
}

// IgnoreFile returns whether a given file should be ignored.
func (s *SourceSpec) IgnoreFile(filename string) bool {
	if filename == "" {
		return true
	}

	base := filepath.Base(filename)

	if len(base) > 0 {
		first := base[0]
		last := base[len(base)-1]
		if first == '.' ||
			first == '#' ||
			last == '~' {
			return true
		}
	}

	return false
}
