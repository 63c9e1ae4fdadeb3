package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// EmbeddedThemes contains all bundled preset files.
//
//go:embed themes/*.toml
var EmbeddedThemes embed.FS

// Built-in preset names. These are defined in code rather than embedded.
const (
	DarkThemeName  = "dark"
	LightThemeName = "light"
)

// DefaultThemeName is the name of the default preset.
const DefaultThemeName = DarkThemeName

// BuiltinThemes lists the presets defined in code.
var BuiltinThemes = []string{DarkThemeName, LightThemeName}

// GetEmbeddedTheme retrieves a bundled preset file by name.
// Returns the TOML content and whether it was found.
func GetEmbeddedTheme(name string) ([]byte, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, false
	}
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListEmbeddedThemes returns the names of all embedded preset files, sorted.
func ListEmbeddedThemes() []string {
	var themes []string

	entries, err := fs.ReadDir(EmbeddedThemes, "themes")
	if err != nil {
		return nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".toml" {
			themes = append(themes, strings.TrimSuffix(name, ext))
		}
	}

	sort.Strings(themes)
	return themes
}

// IsBundledTheme reports whether name is a built-in or embedded preset.
func IsBundledTheme(name string) bool {
	for _, b := range BuiltinThemes {
		if b == name {
			return true
		}
	}
	_, found := GetEmbeddedTheme(name)
	return found
}
