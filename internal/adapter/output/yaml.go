package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themedit/internal/visuals"
)

// YAMLFormatter formats a theme as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes the theme as YAML.
func (f *YAMLFormatter) Format(w io.Writer, v visuals.Visuals) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
