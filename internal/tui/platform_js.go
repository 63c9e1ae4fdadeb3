//go:build js

package tui

const showQuitMenu = false
