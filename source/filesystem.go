package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Filesystem represents a source filesystem rooted at Base.
type Filesystem struct {
	files        []*File
	filesInit    sync.Once
	filesInitErr error

	Base string

	SourceSpec
}

// NewFilesystem returns a new filesystem for the given base path.
func (sp SourceSpec) NewFilesystem(base string) *Filesystem {
	return &Filesystem{SourceSpec: sp, Base: base}
}

// Files returns a slice of readable files, ordered by path.
func (f *Filesystem) Files() ([]*File, error) {
	f.filesInit.Do(func() {
		err := f.captureFiles()
		if err != nil {
			f.filesInitErr = fmt.Errorf("capture files: %w", err)
		}
	})
	return f.files, f.filesInitErr
}

func (f *Filesystem) captureFiles() error {
	walker := func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if fi.IsDir() {
			if f.IgnoreFile(path) && path != f.Base {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(f.Base, path)
		if err != nil {
			return err
		}

		// Name heuristics apply to the full path, the ignoreFiles globs to
		// the content-relative path.
		if f.IgnoreFile(path) || !f.shouldInclude(relPath) {
			return nil
		}

		f.files = append(f.files, f.NewFileInfo(path, relPath))
		return nil
	}

	return afero.Walk(f.SourceFs, f.Base, walker)
}
