// Package pageparser splits a post source into front matter and content.
package pageparser

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/taxoblog/taxoblog/parser/metadecoders"
)

var (
	delimTOML = []byte("+++")
	delimYAML = []byte("---")
)

// ContentFrontMatter holds the parsed front matter and the content in one
// convenient struct.
type ContentFrontMatter struct {
	Content           []byte
	FrontMatter       map[string]any
	FrontMatterFormat metadecoders.Format
}

// ParseFrontMatterAndContent splits the given source in front matter and
// content. A source without a front matter block is valid; it simply has
// no metadata.
func ParseFrontMatterAndContent(r io.Reader) (ContentFrontMatter, error) {
	var cf ContentFrontMatter

	input, err := ioutil.ReadAll(r)
	if err != nil {
		return cf, fmt.Errorf("read content: %w", err)
	}

	var delim []byte
	switch {
	case bytes.HasPrefix(input, delimTOML):
		delim = delimTOML
	case bytes.HasPrefix(input, delimYAML):
		delim = delimYAML
	default:
		cf.Content = input
		return cf, nil
	}

	rest := input[len(delim):]
	end := indexFrontMatterEnd(rest, delim)
	if end == -1 {
		// No closing fence, so no front matter.
		cf.Content = input
		return cf, nil
	}

	cf.FrontMatterFormat = metadecoders.FormatFromFrontMatterType(rune(delim[0]))
	cf.FrontMatter, err = metadecoders.Default.UnmarshalToMap(rest[:end], cf.FrontMatterFormat)
	if err != nil {
		return cf, fmt.Errorf("parse front matter: %w", err)
	}

	cf.Content = bytes.TrimLeft(rest[end+len(delim):], "\r\n")

	return cf, nil
}

// indexFrontMatterEnd finds the closing delimiter in b. It must start a line
// and be followed by a line ending or EOF.
func indexFrontMatterEnd(b, delim []byte) int {
	var off int
	for {
		i := bytes.Index(b[off:], delim)
		if i == -1 {
			return -1
		}
		i += off
		if i == 0 || b[i-1] != '\n' {
			off = i + len(delim)
			continue
		}
		j := i + len(delim)
		if j == len(b) || b[j] == '\n' || b[j] == '\r' {
			return i
		}
		off = j
	}
}
