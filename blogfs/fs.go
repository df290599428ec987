// Package blogfs provides the file systems used by the site builder.
package blogfs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/taxoblog/taxoblog/config"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Fs holds the core filesystems used by the site builder.
type Fs struct {
	// Source is the source file system.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for many of the tests.
	Source afero.Fs

	// PublishDir is where the rendered content goes.
	// It's mounted inside publishDir (default /public).
	PublishDir afero.Fs

	// WorkingDirReadOnly is a read-only file system
	// restricted to the project working dir.
	WorkingDirReadOnly afero.Fs
}

// New creates a new Fs with the OS file system as source and destination
// file systems.
func New(cfg config.Provider, workingDir string) *Fs {
	return newFs(Os, Os, cfg, workingDir)
}

// NewFrom creates a new Fs based on the provided Afero Fs
// as source and destination file systems.
// Useful for testing.
func NewFrom(fs afero.Fs, cfg config.Provider, workingDir string) *Fs {
	return newFs(fs, fs, cfg, workingDir)
}

func newFs(source, destination afero.Fs, cfg config.Provider, workingDir string) *Fs {
	cfg.Set("workingDir", workingDir)
	publishDir := cfg.GetString("publishDir")

	absPublishDir := absPathify(workingDir, publishDir)

	// Make sure we always have the publish folder ready to use.
	if err := source.MkdirAll(absPublishDir, 0777); err != nil && !os.IsExist(err) {
		panic(err)
	}

	pubFs := afero.NewBasePathFs(destination, absPublishDir)

	return &Fs{
		Source:             source,
		PublishDir:         pubFs,
		WorkingDirReadOnly: getWorkingDirFsReadOnly(source, workingDir),
	}
}

func getWorkingDirFsReadOnly(base afero.Fs, workingDir string) afero.Fs {
	if workingDir == "" {
		return afero.NewReadOnlyFs(base)
	}
	return afero.NewBasePathFs(afero.NewReadOnlyFs(base), workingDir)
}

// absPathify makes path absolute, anchoring relative paths at workingDir.
func absPathify(workingDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workingDir, filepath.Clean(path))
}
