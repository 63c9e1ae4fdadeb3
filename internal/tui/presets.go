package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/themedit/internal/theme"
)

// presetItem wraps a preset for the list component.
type presetItem struct {
	preset theme.Preset
}

func (i presetItem) Title() string {
	return i.preset.Name
}

func (i presetItem) Description() string {
	return i.preset.Source()
}

func (i presetItem) FilterValue() string {
	return i.preset.Name
}

// openPresets fills the picker from the loader and shows it.
func (m Model) openPresets() (tea.Model, tea.Cmd) {
	available := m.loader.List()
	items := make([]list.Item, len(available))
	for i, p := range available {
		items[i] = presetItem{preset: p}
	}
	cmd := m.presets.SetItems(items)
	m.presets.ResetFilter()
	m.presets.Select(0)
	m.mode = ModePresets
	return m, cmd
}

// handlePresetsKey handles keys in the preset picker.
func (m Model) handlePresetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.presets.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.presets, cmd = m.presets.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Presets):
		m.mode = ModeBrowse
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		item, ok := m.presets.SelectedItem().(presetItem)
		if !ok {
			return m, nil
		}
		p, err := m.loader.Load(item.preset.Name)
		if err != nil {
			return m, status("Failed to load preset: "+err.Error(), true)
		}
		m.applyTheme(p.Visuals)
		m.mode = ModeBrowse
		return m, status("Applied preset "+p.Name, false)
	}

	var cmd tea.Cmd
	m.presets, cmd = m.presets.Update(msg)
	return m, cmd
}
