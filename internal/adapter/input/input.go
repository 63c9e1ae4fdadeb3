// Package input provides import adapters that read themes from files or
// standard input.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/themedit/internal/theme"
	"github.com/jmylchreest/themedit/internal/visuals"
)

// Format names accepted by Import.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ImportError describes a theme that could not be imported.
type ImportError struct {
	Source string
	Format string
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s (%s): %v", e.Source, e.Format, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// DetectFormat guesses the format from a file name, defaulting to TOML.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// Import decodes a theme in the given format.
// Like presets, omitted keys keep the value of the built-in theme matching
// dark_mode.
func Import(r io.Reader, format, source string) (visuals.Visuals, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return visuals.Visuals{}, &ImportError{Source: source, Format: format, Err: err}
	}

	v, err := decode(data, format)
	if err != nil {
		return visuals.Visuals{}, &ImportError{Source: source, Format: format, Err: err}
	}
	return v, nil
}

// ImportFile imports a theme from path, or from stdin when path is "-".
// An empty format is detected from the file extension.
func ImportFile(path, format string) (visuals.Visuals, error) {
	if format == "" {
		format = DetectFormat(path)
	}

	if path == "-" {
		return Import(os.Stdin, format, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return visuals.Visuals{}, err
	}
	defer f.Close()

	return Import(f, format, path)
}

func decode(data []byte, format string) (visuals.Visuals, error) {
	switch format {
	case FormatTOML, "":
		return theme.Decode(data)
	case FormatJSON:
		return decodeWith(data, json.Unmarshal)
	case FormatYAML, "yml":
		return decodeWith(data, yaml.Unmarshal)
	default:
		return visuals.Visuals{}, fmt.Errorf("unknown format %q", format)
	}
}

func decodeWith(data []byte, unmarshal func([]byte, any) error) (visuals.Visuals, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return visuals.Visuals{}, fmt.Errorf("empty input")
	}

	var probe struct {
		DarkMode *bool `json:"dark_mode" yaml:"dark_mode"`
	}
	if err := unmarshal(data, &probe); err != nil {
		return visuals.Visuals{}, err
	}

	v := visuals.Dark()
	if probe.DarkMode != nil && !*probe.DarkMode {
		v = visuals.Light()
	}
	if err := unmarshal(data, &v); err != nil {
		return visuals.Visuals{}, err
	}
	if err := v.Validate(); err != nil {
		return visuals.Visuals{}, err
	}
	return v, nil
}
