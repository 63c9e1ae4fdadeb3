package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.mode == ModeHelp {
		return m.viewHelp()
	}

	side := m.styles.Side.
		Width(sideWidth).
		Height(m.bodyHeight()).
		Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, side, m.centralPanel())

	var sections []string
	if showQuitMenu {
		sections = append(sections, m.topBar())
	}
	sections = append(sections, body, m.footer())
	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.mode == ModeMenu {
		// The menu drops down over the top-left corner of the body.
		lines := strings.Split(view, "\n")
		menu := strings.Split(m.fileMenu(), "\n")
		for i, l := range menu {
			if 2+i < len(lines) {
				lines[2+i] = l
			}
		}
		view = strings.Join(lines, "\n")
	}
	return view
}

// topBar renders the menu bar.
func (m Model) topBar() string {
	file := m.styles.Text.Render(" File ")
	if m.mode == ModeMenu {
		file = m.styles.Active.Weak.Render(" File ")
	}
	return m.styles.TopBar.Width(m.width).Render(file)
}

// fileMenu renders the open File menu.
func (m Model) fileMenu() string {
	menu := m.styles.Window.Render(m.styles.Hovered.Weak.Render(" Quit "))
	return dropShadow(menu, m.styles.PopupShadow)
}

// footer renders the status message or the key hints.
func (m Model) footer() string {
	if m.statusMsg != "" {
		style := m.styles.Text
		if m.statusErr {
			style = m.styles.Error
		}
		return style.Render(m.statusMsg)
	}

	bar := m.buildKeybindBar(m.width, m.footerMode())
	if !m.lastSaved.IsZero() {
		saved := m.styles.Weak.Render("saved " + humanize.Time(m.lastSaved))
		gap := m.width - lipgloss.Width(bar) - lipgloss.Width(saved)
		if gap > 1 {
			bar += strings.Repeat(" ", gap) + saved
		}
	}
	return bar
}

func (m Model) footerMode() string {
	switch m.mode {
	case ModeColorEdit:
		return "color"
	case ModeHexInput, ModeTextEdit:
		return "input"
	case ModeCombo, ModePresets, ModeMenu:
		return "popup"
	}
	if m.focus == FocusCentral {
		return "central"
	}
	return "side"
}

func (m Model) viewHelp() string {
	title := m.styles.Heading.MarginBottom(1).Render("Keyboard Shortcuts")
	hint := m.styles.Weak.Render("Press ? or esc to return")
	return title + "\n" + m.help.View(m.keys) + "\n\n" + hint
}

// keybind represents a single keybind with priority for the status bar.
type keybind struct {
	key      string
	desc     string
	priority int // lower = more important (shown first)
}

// buildKeybindBar builds a keybind bar that fits within the given width.
func (m Model) buildKeybindBar(width int, mode string) string {
	if !m.cfg.TUI.ShowHelp {
		return ""
	}

	var binds []keybind
	switch mode {
	case "side":
		binds = []keybind{
			{"enter", "edit", 1},
			{"tab", "playground", 2},
			{"?", "help", 3},
			{"ctrl+s", "save", 4},
			{"ctrl+p", "presets", 5},
			{"#", "hex", 6},
			{"c", "copy", 7},
			{"ctrl+q", "quit", 8},
		}
	case "central":
		binds = []keybind{
			{"↑/↓", "focus", 1},
			{"←/→", "change", 2},
			{"enter", "activate", 3},
			{"tab", "theme", 4},
			{"?", "help", 5},
			{"ctrl+q", "quit", 6},
		}
	case "color":
		binds = []keybind{
			{"←/→", "channel", 1},
			{"↑/↓", "±1", 2},
			{"shift+↑/↓", "±16", 3},
			{"#", "hex", 4},
			{"esc", "done", 5},
		}
	case "input":
		binds = []keybind{
			{"enter", "apply", 1},
			{"esc", "close", 2},
		}
	case "popup":
		binds = []keybind{
			{"enter", "select", 1},
			{"esc", "close", 2},
			{"↑/↓", "navigate", 3},
		}
	}

	// Build the bar, adding keybinds until we run out of space
	const separator = "  "
	keyStyle := m.styles.Strong
	descStyle := m.styles.Weak
	result := ""
	plainLen := 0
	for _, b := range binds {
		plain := b.key + " " + b.desc
		need := len([]rune(plain))
		if plainLen > 0 {
			need += len(separator)
		}
		if width > 0 && plainLen+need > width {
			break
		}
		if plainLen > 0 {
			result += separator
		}
		result += keyStyle.Render(b.key) + " " + descStyle.Render(b.desc)
		plainLen += need
	}

	return result
}
