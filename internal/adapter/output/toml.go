package output

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// TOMLFormatter formats a theme as a TOML preset, loadable with
// `themedit --theme`.
type TOMLFormatter struct{}

// NewTOMLFormatter creates a new TOML formatter.
func NewTOMLFormatter() *TOMLFormatter {
	return &TOMLFormatter{}
}

// Format writes the theme as TOML.
func (f *TOMLFormatter) Format(w io.Writer, v visuals.Visuals) error {
	encoder := toml.NewEncoder(w)
	encoder.SetIndentTables(true)
	return encoder.Encode(v)
}
