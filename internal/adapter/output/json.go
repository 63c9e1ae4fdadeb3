package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// JSONFormatter formats a theme as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the theme as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, v visuals.Visuals) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
