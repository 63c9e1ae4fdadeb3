// Package tui provides the BubbleTea-based theme editor.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/themedit/internal/appstate"
	"github.com/jmylchreest/themedit/internal/config"
	"github.com/jmylchreest/themedit/internal/storage"
	"github.com/jmylchreest/themedit/internal/theme"
	"github.com/jmylchreest/themedit/internal/visuals"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeColorEdit
	ModeHexInput
	ModeTextEdit
	ModeCombo
	ModeMenu
	ModePresets
	ModeHelp
)

// Focus is the panel receiving navigation keys.
type Focus int

const (
	FocusSide Focus = iota
	FocusCentral
)

const sideWidth = 46

// Options configures a Model.
type Options struct {
	Config  *config.Config
	State   *appstate.State
	Storage storage.Storage
	Loader  *theme.Loader
	Logger  *slog.Logger

	// DevBuild shows the development build warning in the central panel.
	DevBuild bool
}

// Model is the main TUI model.
//
// The model holds a pointer to the one editor state. Update is the only
// place that state is mutated.
type Model struct {
	// Configuration
	cfg    *config.Config
	store  storage.Storage
	loader *theme.Loader
	logger *slog.Logger

	state  *appstate.State
	styles Styles
	fields []visuals.Field

	mode     Mode
	prevMode Mode
	focus    Focus

	// Side panel
	cursor   int
	channel  visuals.Channel
	viewport viewport.Model
	hexInput textinput.Model

	// Central panel
	widget     widgetID
	comboIndex int
	labelInput textinput.Model
	devBuild   bool

	// Overlays
	presets list.Model
	help    help.Model

	width  int
	height int
	ready  bool

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool
	lastSaved time.Time
}

// New creates a new TUI model editing opts.State.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	state := opts.State
	if state == nil {
		state = appstate.Default()
	}
	loader := opts.Loader
	if loader == nil {
		loader = theme.NewLoader(config.ThemesDir(), logger)
	}

	hexInput := textinput.New()
	hexInput.Prompt = "# "
	hexInput.Placeholder = "rrggbbaa"
	hexInput.CharLimit = 9

	labelInput := textinput.New()
	labelInput.Prompt = ""
	labelInput.Placeholder = textEditHint
	labelInput.CharLimit = 0 // unbounded

	presets := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	presets.Title = "Presets"
	presets.SetShowHelp(false)
	presets.SetFilteringEnabled(true)
	presets.DisableQuitKeybindings()

	h := help.New()
	h.ShowAll = true

	return Model{
		cfg:        cfg,
		store:      opts.Storage,
		loader:     loader,
		logger:     logger,
		state:      state,
		styles:     NewStyles(state.Theme),
		fields:     visuals.Fields(),
		mode:       ModeBrowse,
		focus:      FocusSide,
		channel:    visuals.ChannelR,
		viewport:   viewport.New(sideWidth, 0),
		hexInput:   hexInput,
		labelInput: labelInput,
		devBuild:   opts.DevBuild,
		presets:    presets,
		help:       h,
		keys:       DefaultKeyMap(),
	}
}

// State returns the state being edited.
func (m Model) State() *appstate.State {
	return m.state
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.scheduleAutosave()
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	what string
	err  error
}

type autosaveMsg struct{}

type saveResultMsg struct {
	at    time.Time
	err   error
	quiet bool
}

type exportResultMsg struct {
	path string
	err  error
}

// themeChangedMsg carries a preset reloaded by the theme file watcher.
type themeChangedMsg struct {
	preset *theme.Preset
}

type themeErrorMsg struct {
	err error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.viewport.Width = sideWidth
		m.viewport.Height = m.bodyHeight()
		m.presets.SetSize(m.centralWidth()-7, m.bodyHeight()-3)
		m.help.Width = msg.Width
		m.labelInput.Width = 30
		m.syncSidePanel()
		return m, nil

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, status("Copy failed: "+msg.err.Error(), true)
		}
		return m, status("Copied "+msg.what+" to clipboard", false)

	case autosaveMsg:
		return m, tea.Batch(m.save(true), m.scheduleAutosave())

	case saveResultMsg:
		if msg.err != nil {
			m.logger.Warn("failed to save state", "error", msg.err)
			return m, status("Save failed: "+msg.err.Error(), true)
		}
		m.lastSaved = msg.at
		if msg.quiet {
			return m, nil
		}
		return m, status("Saved", false)

	case exportResultMsg:
		if msg.err != nil {
			return m, status("Export failed: "+msg.err.Error(), true)
		}
		return m, status("Exported to "+msg.path, false)

	case themeChangedMsg:
		m.applyTheme(msg.preset.Visuals)
		return m, status("Reloaded "+msg.preset.Name, false)

	case themeErrorMsg:
		return m, status("Theme reload failed: "+msg.err.Error(), true)
	}

	// Update child components
	var cmd tea.Cmd
	switch m.mode {
	case ModeHexInput:
		m.hexInput, cmd = m.hexInput.Update(msg)
	case ModeTextEdit:
		m.labelInput, cmd = m.labelInput.Update(msg)
	case ModePresets:
		m.presets, cmd = m.presets.Update(msg)
	}
	return m, cmd
}

// status returns a command that shows a transient status message.
func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Text entry modes take every other key.
	switch m.mode {
	case ModeHexInput:
		return m.handleHexKey(msg)
	case ModeTextEdit:
		return m.handleTextEditKey(msg)
	case ModePresets:
		return m.handlePresetsKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Back, m.keys.Help) {
			m.mode = ModeBrowse
		}
		return m, nil
	case ModeMenu:
		return m.handleMenuKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m, m.save(false)
	case key.Matches(msg, m.keys.Reset):
		m.state.Reset()
		m.applyTheme(m.state.Theme)
		m.mode = ModeBrowse
		return m, status("Reset to defaults", false)
	case key.Matches(msg, m.keys.Presets):
		return m.openPresets()
	case key.Matches(msg, m.keys.Export):
		return m, m.export()
	case key.Matches(msg, m.keys.Menu):
		if showQuitMenu {
			m.prevMode = m.mode
			m.mode = ModeMenu
		}
		return m, nil
	case key.Matches(msg, m.keys.NextPanel, m.keys.PrevPanel):
		if m.focus == FocusSide {
			m.focus = FocusCentral
		} else {
			m.focus = FocusSide
		}
		m.mode = ModeBrowse
		m.syncSidePanel()
		return m, nil
	}

	switch m.mode {
	case ModeColorEdit:
		return m.handleColorEditKey(msg)
	case ModeCombo:
		return m.handleComboKey(msg)
	}

	if m.focus == FocusSide {
		return m.handleSideKey(msg)
	}
	return m.handleCentralKey(msg)
}

// handleMenuKey handles keys while the File menu is open.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back, m.keys.Menu):
		m.mode = m.prevMode
	}
	return m, nil
}

// applyTheme replaces the theme and rebuilds everything derived from it.
func (m *Model) applyTheme(v visuals.Visuals) {
	m.state.Theme = v
	m.styles = NewStyles(v)
	m.syncSidePanel()
}

// scheduleAutosave arms the next autosave tick, if enabled.
func (m Model) scheduleAutosave() tea.Cmd {
	interval := m.cfg.Storage.AutosaveInterval.Duration()
	if interval <= 0 || m.store == nil {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autosaveMsg{}
	})
}

// save writes the state to storage and flushes it in the background.
func (m Model) save(quiet bool) tea.Cmd {
	if m.store == nil {
		return status("Persistence is disabled", true)
	}
	if err := m.state.Save(m.store); err != nil {
		return func() tea.Msg { return saveResultMsg{err: err, quiet: quiet} }
	}
	store := m.store
	return func() tea.Msg {
		err := store.Flush()
		return saveResultMsg{at: time.Now(), err: err, quiet: quiet}
	}
}

// export writes the current theme as a user preset.
func (m Model) export() tea.Cmd {
	v := m.state.Theme
	loader := m.loader
	name := "themedit-" + time.Now().Format("20060102-150405")
	return func() tea.Msg {
		path, err := loader.Save(name, v)
		return exportResultMsg{path: path, err: err}
	}
}

// copyToClipboard copies text to the system clipboard.
func (m Model) copyToClipboard(what, text string) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		err := copyText(text, cfg)
		return copyResultMsg{what: what, err: err}
	}
}

func (m Model) bodyHeight() int {
	h := m.height - 1 // footer
	if showQuitMenu {
		h -= 2 // top bar and its border
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) centralWidth() int {
	w := m.width - sideWidth - 1
	if w < 20 {
		w = 20
	}
	return w
}
