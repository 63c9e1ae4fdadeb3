//go:build !js

package tui

// showQuitMenu controls the File > Quit entry. Web builds have no process
// to quit.
const showQuitMenu = true
