package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/themedit/internal/appstate"
)

// Central panel text.
const (
	playgroundHeading = "theme editor playground"
	playgroundIntro   = "preview your theme's changes here with most components visible"
	projectURL        = "https://github.com/jmylchreest/themedit"
	buttonLabel       = "Click me!"
	checkboxLabel     = "Checkbox"
	comboLabel        = "Take your pick"
	textEditHint      = "Write something here"
	codeSample        = "m.state.Value += dragSpeed"
	sliderSuffix      = "°"
)

// dragSpeed is how far one key press moves the drag value.
const dragSpeed = 1.0

const sliderWidth = 24

// widgetID identifies a focusable widget of the central panel.
type widgetID int

const (
	widgetHyperlink widgetID = iota
	widgetButton
	widgetCheckbox
	widgetRadio
	widgetSelectable
	widgetCombo
	widgetSlider
	widgetDrag
	widgetTextEdit
	widgetCount
)

// handleCentralKey handles keys while browsing the central panel.
func (m Model) handleCentralKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.widget > 0 {
			m.widget--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.widget < widgetCount-1 {
			m.widget++
		}
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.widget = 0
		return m, nil
	case key.Matches(msg, m.keys.End):
		m.widget = widgetCount - 1
		return m, nil
	}

	activate := key.Matches(msg, m.keys.Enter, m.keys.Toggle)
	left := key.Matches(msg, m.keys.Left)
	right := key.Matches(msg, m.keys.Right)

	switch m.widget {
	case widgetHyperlink:
		if activate {
			return m, m.copyToClipboard("link", projectURL)
		}

	case widgetButton:
		if activate {
			return m, status("Button clicked", false)
		}

	case widgetCheckbox:
		if activate {
			m.state.Flag = !m.state.Flag
		}

	case widgetRadio, widgetSelectable:
		switch {
		case left:
			m.state.Selection = m.state.Selection.Prev()
		case right, activate:
			m.state.Selection = m.state.Selection.Next()
		}

	case widgetCombo:
		switch {
		case left:
			m.state.Selection = m.state.Selection.Prev()
		case right:
			m.state.Selection = m.state.Selection.Next()
		case activate:
			m.comboIndex = selectionIndex(m.state.Selection)
			m.mode = ModeCombo
		}

	case widgetSlider:
		switch {
		case left:
			m.state.Value = clampValue(m.state.Value - 1)
		case right:
			m.state.Value = clampValue(m.state.Value + 1)
		case key.Matches(msg, m.keys.BigDown):
			m.state.Value = clampValue(m.state.Value - 10)
		case key.Matches(msg, m.keys.BigUp):
			m.state.Value = clampValue(m.state.Value + 10)
		}

	case widgetDrag:
		switch {
		case left:
			m.state.Value -= dragSpeed
		case right:
			m.state.Value += dragSpeed
		}

	case widgetTextEdit:
		if key.Matches(msg, m.keys.Enter) {
			m.mode = ModeTextEdit
			m.labelInput.SetValue(m.state.Label)
			m.labelInput.CursorEnd()
			m.labelInput.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

// handleComboKey handles keys while the combo box is open.
func (m Model) handleComboKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(appstate.Selections)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.comboIndex = (m.comboIndex + n - 1) % n
	case key.Matches(msg, m.keys.Down):
		m.comboIndex = (m.comboIndex + 1) % n
	case key.Matches(msg, m.keys.Enter, m.keys.Toggle):
		m.state.Selection = appstate.Selections[m.comboIndex]
		m.mode = ModeBrowse
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeBrowse
	}
	return m, nil
}

// handleTextEditKey handles keys while editing the label.
func (m Model) handleTextEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.labelInput.Blur()
		m.mode = ModeBrowse
		return m, nil
	}

	// The input drops control characters, so a label holding them is only
	// replaced once the user actually edits it.
	before := m.labelInput.Value()
	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	if after := m.labelInput.Value(); after != before {
		m.state.Label = after
	}
	return m, cmd
}

func selectionIndex(s appstate.Selection) int {
	for i, v := range appstate.Selections {
		if v == s {
			return i
		}
	}
	return 0
}

func clampValue(v float64) float64 {
	if v < appstate.ValueMin {
		return appstate.ValueMin
	}
	if v > appstate.ValueMax {
		return appstate.ValueMax
	}
	return v
}

// centralView renders the playground widgets.
func (m Model) centralView() string {
	s := m.styles
	var rows []string

	add := func(id widgetID, row string) {
		marker := "  "
		if m.focus == FocusCentral && m.widget == id {
			marker = s.Strong.Render("> ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, marker, row))
	}

	rows = append(rows, s.Heading.Render(" "+playgroundHeading+" "))
	rows = append(rows, s.Label.Render(playgroundIntro))
	rows = append(rows, s.Separator.Render(strings.Repeat("─", max(m.centralWidth()-4, 1))))

	add(widgetHyperlink, s.Hyperlink.Render(projectURL))
	add(widgetButton, m.button())
	add(widgetCheckbox, m.checkbox())
	add(widgetRadio, m.radioGroup())
	add(widgetSelectable, m.selectableGroup())
	add(widgetCombo, m.combo())
	if m.mode == ModeCombo {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, "  ", m.comboPopup()))
	}
	add(widgetSlider, m.slider())
	add(widgetDrag, m.focusStyle(widgetDrag).Weak.Render(" "+formatValue(m.state.Value)+" "))
	add(widgetTextEdit, m.textEdit())
	rows = append(rows, "  "+s.Code.Render(codeSample))
	rows = append(rows, m.stateGrid()...)

	if m.devBuild {
		rows = append(rows, "", "  "+s.Warn.Render("⚠ Debug build ⚠"))
		rows = append(rows, "  "+s.Weak.Render("This is a development build of themedit."))
	}

	return strings.Join(rows, "\n")
}

// focusStyle picks the widget styles for id. The open combo box, the label
// being edited and the focused slider, which arrow keys drag, are active.
func (m Model) focusStyle(id widgetID) WidgetStyles {
	focused := m.focus == FocusCentral && m.widget == id
	active := focused && ((id == widgetCombo && m.mode == ModeCombo) ||
		(id == widgetTextEdit && m.mode == ModeTextEdit) ||
		id == widgetSlider)
	return m.styles.Widget(focused, active)
}

func (m Model) button() string {
	ws := m.focusStyle(widgetButton)
	btn := ws.Weak.Render(" " + buttonLabel + " ")
	if !m.state.Theme.ButtonFrame {
		return btn
	}
	return ws.Frame.Render(btn)
}

func (m Model) checkbox() string {
	mark := "[ ]"
	if m.state.Flag {
		mark = "[x]"
	}
	return m.focusStyle(widgetCheckbox).Strong.Render(mark) + " " + m.styles.Label.Render(checkboxLabel)
}

func (m Model) radioGroup() string {
	ws := m.focusStyle(widgetRadio)
	parts := make([]string, 0, len(appstate.Selections))
	for _, sel := range appstate.Selections {
		mark := "( )"
		if sel == m.state.Selection {
			mark = "(•)"
		}
		parts = append(parts, ws.Strong.Render(mark)+" "+m.styles.Label.Render(sel.String()))
	}
	return strings.Join(parts, "  ")
}

func (m Model) selectableGroup() string {
	ws := m.focusStyle(widgetSelectable)
	parts := make([]string, 0, len(appstate.Selections))
	for _, sel := range appstate.Selections {
		text := " " + sel.String() + " "
		switch {
		case sel == m.state.Selection:
			parts = append(parts, m.styles.Selected.Render(text))
		case m.focus == FocusCentral && m.widget == widgetSelectable:
			parts = append(parts, ws.Weak.Render(text))
		default:
			parts = append(parts, m.styles.Text.Render(text))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) combo() string {
	ws := m.focusStyle(widgetCombo)
	box := ws.Frame.Render(ws.Weak.Render(fmt.Sprintf(" %-7s▾ ", m.state.Selection)))
	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", m.styles.Label.Render(comboLabel))
}

func (m Model) comboPopup() string {
	lines := make([]string, 0, len(appstate.Selections))
	for i, sel := range appstate.Selections {
		text := fmt.Sprintf(" %-8s", sel)
		switch {
		case i == m.comboIndex:
			lines = append(lines, m.styles.Hovered.Weak.Render(text))
		case sel == m.state.Selection:
			lines = append(lines, m.styles.Selected.Render(text))
		default:
			lines = append(lines, text)
		}
	}
	return dropShadow(m.styles.Window.Render(strings.Join(lines, "\n")), m.styles.PopupShadow)
}

func (m Model) slider() string {
	ws := m.focusStyle(widgetSlider)
	frac := (clampValue(m.state.Value) - appstate.ValueMin) / (appstate.ValueMax - appstate.ValueMin)
	pos := int(frac*float64(sliderWidth-1) + 0.5)

	track := m.styles.Selected.Render(strings.Repeat("━", pos)) +
		ws.Strong.Render("●") +
		m.styles.Weak.Render(strings.Repeat("─", sliderWidth-1-pos))
	return track + " " + m.styles.Text.Render(formatValue(m.state.Value)+sliderSuffix)
}

func (m Model) textEdit() string {
	style := m.styles.TextEdit.Width(32)
	var field string
	switch {
	case m.mode == ModeTextEdit:
		field = style.Render(m.labelInput.View())
	case m.state.Label == "":
		field = style.Inherit(m.styles.Weak).Render(textEditHint)
	default:
		field = style.Render(truncate(m.state.Label, 32))
	}
	return m.focusStyle(widgetTextEdit).Frame.Render(field)
}

// stateGrid renders the edited values as a grid with striped rows.
func (m Model) stateGrid() []string {
	cells := [][2]string{
		{"label", truncate(m.state.Label, 24)},
		{"checkbox", fmt.Sprintf("%t", m.state.Flag)},
		{"selection", m.state.Selection.String()},
		{"value", formatValue(m.state.Value)},
	}
	rows := make([]string, len(cells))
	for i, c := range cells {
		text := fmt.Sprintf(" %-10s %-24s ", c[0], c[1])
		if i%2 == 1 {
			rows[i] = "  " + m.styles.Striped.Render(text)
		} else {
			rows[i] = "  " + m.styles.Text.Render(text)
		}
	}
	return rows
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// centralPanel renders the central panel at its full size.
func (m Model) centralPanel() string {
	content := m.centralView()
	if m.mode == ModePresets {
		content = dropShadow(m.styles.Window.Render(m.presets.View()), m.styles.WindowShadow)
	}
	return m.styles.Panel.
		Width(m.centralWidth()).
		Height(m.bodyHeight()).
		Padding(0, 1).
		Render(lipgloss.NewStyle().
			MaxWidth(m.centralWidth() - 2).
			MaxHeight(m.bodyHeight()).
			Render(content))
}
