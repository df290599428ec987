package source

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/taxoblog/taxoblog/helpers"
)

// File describes a source content file.
type File struct {
	// Absolute filename to the file on disk.
	filename string

	sp *SourceSpec

	// Derived from filename
	ext  string // Extension without any "."
	name string

	relDir   string
	relPath  string
	baseName string
	section  string

	uniqueID string

	lazyInit sync.Once
}

// Path gets the relative path including file name and extension. The directory
// is relative to the content root.
func (fi *File) Path() string { return fi.relPath }

// Section is the first directory below the content root.
// For files in the content root itself, the Section will be empty.
func (fi *File) Section() string {
	fi.init()
	return fi.section
}

// Dir gets the name of the directory that contains this file. The directory is
// relative to the content root.
func (fi *File) Dir() string { return fi.relDir }

// Ext returns a file's extension without the leading period (ie. "md").
func (fi *File) Ext() string { return fi.ext }

// Filename returns a file's absolute path and filename on disk.
func (fi *File) Filename() string { return fi.filename }

// LogicalName returns a file's name and extension (ie. "my-post.md").
func (fi *File) LogicalName() string { return fi.name }

// BaseFileName returns a file's name without extension (ie. "my-post").
func (fi *File) BaseFileName() string { return fi.baseName }

// UniqueID returns a file's unique, MD5 hash identifier.
func (fi *File) UniqueID() string {
	fi.init()
	return fi.uniqueID
}

func (fi *File) IsZero() bool {
	return fi == nil
}

// We create a lot of these File objects, but there are parts of it used only
// in some cases that is slightly expensive to construct.
func (fi *File) init() {
	fi.lazyInit.Do(func() {
		relDir := strings.Trim(fi.relDir, helpers.FilePathSeparator)
		parts := strings.Split(relDir, helpers.FilePathSeparator)
		if len(parts) > 0 && parts[0] != "" {
			fi.section = parts[0]
		}

		fi.uniqueID = helpers.MD5String(filepath.ToSlash(fi.relPath))
	})
}

// NewFileInfo creates a File for the file at filename, with relPath being its
// path relative to the content root.
func (sp *SourceSpec) NewFileInfo(filename, relPath string) *File {
	relDir := filepath.Dir(relPath)
	if relDir == "." {
		relDir = ""
	}
	if !strings.HasSuffix(relDir, helpers.FilePathSeparator) {
		relDir = relDir + helpers.FilePathSeparator
	}

	_, name := filepath.Split(relPath)
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	baseName := strings.TrimSuffix(name, filepath.Ext(name))

	return &File{
		sp:       sp,
		filename: filename,
		ext:      ext,
		relDir:   relDir,  // Dir()
		relPath:  relPath, // Path()
		name:     name,
		baseName: baseName, // BaseFileName()
	}
}
