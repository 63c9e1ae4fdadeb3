// Package output provides export formatters for themes.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// Formatter formats a theme for output.
type Formatter interface {
	// Format writes the formatted theme to the writer.
	Format(w io.Writer, v visuals.Visuals) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatTOML  FormatType = "toml"
	FormatYAML  FormatType = "yaml"
	FormatJSON  FormatType = "json"
	FormatPlain FormatType = "plain"
)

// ValidFormats lists every supported format.
func ValidFormats() []FormatType {
	return []FormatType{FormatTOML, FormatYAML, FormatJSON, FormatPlain}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatTOML, "":
		return NewTOMLFormatter(), nil
	case FormatYAML, "yml":
		return NewYAMLFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatPlain:
		return NewPlainFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q, must be one of: %v", format, ValidFormats())
	}
}
