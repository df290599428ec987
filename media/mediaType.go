// Package media holds the media type definitions used when publishing.
package media

import (
	"sort"
	"strings"
)

const defaultDelimiter = "."

// Type (also known as MIME type and content type) is a two-part identifier for
// file formats and format contents transmitted on the Internet.
// For simplicity, we keep one suffix per type.
type Type struct {
	MainType  string `json:"mainType"`  // i.e. text
	SubType   string `json:"subType"`   // i.e. html
	Delimiter string `json:"delimiter"` // e.g. "."

	// The file suffix used for this type, e.g. "html".
	Suffix string `json:"suffix"`
}

// Type returns the full MIME type string, e.g. "text/html".
func (m Type) Type() string {
	return m.MainType + "/" + m.SubType
}

func (m Type) String() string {
	return m.Type()
}

func newMediaType(main, sub, suffix string) Type {
	return Type{
		MainType:  main,
		SubType:   sub,
		Delimiter: defaultDelimiter,
		Suffix:    suffix,
	}
}

// Definitions from https://www.iana.org/assignments/media-types/media-types.xhtml etc.
var (
	HTMLType     = newMediaType("text", "html", "html")
	MarkdownType = newMediaType("text", "markdown", "md")
	TOMLType     = newMediaType("application", "toml", "toml")
	YAMLType     = newMediaType("application", "yaml", "yml")
	TextType     = newMediaType("text", "plain", "txt")
	XMLType      = newMediaType("application", "xml", "xml")
)

// DefaultTypes is the default media types supported by the site builder.
var DefaultTypes = Types{
	HTMLType,
	MarkdownType,
	TOMLType,
	YAMLType,
	TextType,
	XMLType,
}

func init() {
	sort.Sort(DefaultTypes)
}

// Types is a slice of media types.
type Types []Type

func (t Types) Len() int           { return len(t) }
func (t Types) Swap(i, j int)      { t[i], t[j] = t[j], t[i] }
func (t Types) Less(i, j int) bool { return t[i].Type() < t[j].Type() }

// GetByType returns the media type of the given type string, e.g. "text/html".
func (t Types) GetByType(tp string) (Type, bool) {
	for _, tt := range t {
		if strings.EqualFold(tt.Type(), tp) {
			return tt, true
		}
	}
	return Type{}, false
}

// BySuffix will return all media types matched by the given suffix.
func (t Types) BySuffix(suffix string) Types {
	var types Types
	for _, tt := range t {
		if tt.Suffix == suffix {
			types = append(types, tt)
		}
	}
	return types
}
