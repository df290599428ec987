package metadecoders

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	// These are the supported metadata formats: TOML for the site config
	// and either of the two for post front matter.
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromString turns formatStr, typically a file extension without any ".",
// into a Format. It returns an empty string for unknown formats.
func FormatFromString(formatStr string) Format {
	formatStr = strings.ToLower(formatStr)
	if strings.Contains(formatStr, ".") {
		// Assume a filename
		formatStr = strings.TrimPrefix(filepath.Ext(formatStr), ".")
	}
	switch formatStr {
	case "yaml", "yml":
		return YAML
	case "toml":
		return TOML
	}

	return ""
}

// FormatFromFrontMatterType returns the Format given a front matter type delimiter.
func FormatFromFrontMatterType(typ rune) Format {
	switch typ {
	case '+':
		return TOML
	case '-':
		return YAML
	default:
		return ""
	}
}
