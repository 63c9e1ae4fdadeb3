// Package theme manages theme presets for themedit.
// It supports loading presets from ~/.config/themedit/themes/, provides
// embedded bundled presets, and watches a preset file for hot-reload.
package theme
