package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/themedit/internal/visuals"
)

const labelWidth = 24

// currentField returns the field under the side panel cursor.
func (m Model) currentField() visuals.Field {
	return m.fields[m.cursor]
}

// handleSideKey handles keys while browsing the side panel.
func (m Model) handleSideKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.viewport.Height / 2
	if page < 1 {
		page = 1
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-page)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(page)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.fields))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.fields))
	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeColorEdit
		m.syncSidePanel()
	case key.Matches(msg, m.keys.Hex):
		return m.openHexInput(ModeBrowse)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyToClipboard(m.currentField().Key, m.currentField().Get(&m.state.Theme).Hex())
	}
	return m, nil
}

// handleColorEditKey handles keys while a colour editor is open.
func (m Model) handleColorEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.channel = (m.channel + visuals.Channel(len(visuals.Channels)) - 1) % visuals.Channel(len(visuals.Channels))
	case key.Matches(msg, m.keys.Right):
		m.channel = (m.channel + 1) % visuals.Channel(len(visuals.Channels))
	case key.Matches(msg, m.keys.Up):
		m.adjust(1)
	case key.Matches(msg, m.keys.Down):
		m.adjust(-1)
	case key.Matches(msg, m.keys.BigUp):
		m.adjust(16)
	case key.Matches(msg, m.keys.BigDown):
		m.adjust(-16)
	case key.Matches(msg, m.keys.Hex):
		return m.openHexInput(ModeColorEdit)
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyToClipboard(m.currentField().Key, m.currentField().Get(&m.state.Theme).Hex())
	case key.Matches(msg, m.keys.Enter, m.keys.Back):
		m.mode = ModeBrowse
	}
	m.syncSidePanel()
	return m, nil
}

// handleHexKey handles keys in the hex entry.
func (m Model) handleHexKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.hexInput.Blur()
		m.mode = m.prevMode
		m.syncSidePanel()
		return m, nil

	case tea.KeyEnter:
		c, err := visuals.ParseColor(m.hexInput.Value())
		if err != nil {
			return m, status(err.Error(), true)
		}
		m.currentField().Set(&m.state.Theme, c)
		m.styles = NewStyles(m.state.Theme)
		m.hexInput.Blur()
		m.mode = m.prevMode
		m.syncSidePanel()
		return m, nil
	}

	var cmd tea.Cmd
	m.hexInput, cmd = m.hexInput.Update(msg)
	m.syncSidePanel()
	return m, cmd
}

func (m Model) openHexInput(from Mode) (tea.Model, tea.Cmd) {
	m.prevMode = from
	m.mode = ModeHexInput
	m.hexInput.SetValue(strings.TrimPrefix(m.currentField().Get(&m.state.Theme).Hex(), "#"))
	m.hexInput.CursorEnd()
	m.hexInput.Focus()
	m.syncSidePanel()
	return m, textinput.Blink
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.fields) {
		m.cursor = len(m.fields) - 1
	}
	m.syncSidePanel()
}

// adjust moves the current channel of the current field.
func (m *Model) adjust(delta int) {
	f := m.currentField()
	f.Set(&m.state.Theme, f.Get(&m.state.Theme).Adjust(m.channel, delta))
	m.styles = NewStyles(m.state.Theme)
}

// syncSidePanel re-renders the side panel and scrolls the cursor into view.
func (m *Model) syncSidePanel() {
	content, line := m.sideContent()
	m.viewport.SetContent(content)

	if m.viewport.Height <= 0 {
		return
	}
	// Keep the cursor row and any editor below it visible.
	last := line
	if m.focus == FocusSide && m.mode != ModeBrowse {
		last = line + 1
	}
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if last >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(last - m.viewport.Height + 1)
	}
}

// sideContent renders the side panel rows and returns the line of the cursor.
func (m Model) sideContent() (string, int) {
	s := m.styles
	var b strings.Builder
	line, cursorLine := 0, 0

	writeln := func(str string) {
		b.WriteString(str)
		b.WriteByte('\n')
		line++
	}

	group := ""
	for i, f := range m.fields {
		if f.Group != group {
			if group != "" {
				writeln("")
			}
			group = f.Group
			writeln(s.Heading.Render(group))
		}

		selected := i == m.cursor && m.focus == FocusSide
		label := fmt.Sprintf("%-*s", labelWidth, truncate(f.Label, labelWidth))
		marker := "  "
		if selected {
			marker = "> "
			label = s.Selected.Render(label)
		} else {
			label = s.Text.Render(label)
		}
		if i == m.cursor {
			cursorLine = line
		}
		writeln(marker + label + " " + s.Swatch(f.Get(&m.state.Theme)))

		if selected {
			switch m.mode {
			case ModeColorEdit:
				writeln("    " + m.channelBar(f.Get(&m.state.Theme)))
			case ModeHexInput:
				writeln("    " + m.hexInput.View())
			}
		}
	}

	return strings.TrimRight(b.String(), "\n"), cursorLine
}

// channelBar renders the channel values of c with the active one highlighted.
func (m Model) channelBar(c visuals.Color) string {
	parts := make([]string, 0, len(visuals.Channels))
	for _, ch := range visuals.Channels {
		text := fmt.Sprintf("%s%d", ch, c.Get(ch))
		if ch == m.channel {
			parts = append(parts, m.styles.Active.Strong.Render(text))
		} else {
			parts = append(parts, m.styles.Weak.Render(text))
		}
	}
	return strings.Join(parts, " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
