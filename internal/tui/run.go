package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/themedit/internal/appstate"
	"github.com/jmylchreest/themedit/internal/config"
	"github.com/jmylchreest/themedit/internal/storage"
	"github.com/jmylchreest/themedit/internal/theme"
)

// RunOptions configures the TUI.
type RunOptions struct {
	Config   *config.Config
	State    *appstate.State
	Storage  storage.Storage
	Loader   *theme.Loader
	Logger   *slog.Logger
	DevBuild bool

	ThemeFile string // Preset applied over the restored theme (empty = none)
	Watch     bool   // Re-apply ThemeFile whenever it changes
}

// Run starts the editor and blocks until the user quits.
// The caller owns saving opts.State afterwards.
func Run(ctx context.Context, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.State == nil {
		opts.State = appstate.Default()
	}

	if opts.ThemeFile != "" {
		p, err := theme.LoadFile(opts.ThemeFile)
		if err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}
		opts.State.Theme = p.Visuals
	}

	m := New(Options{
		Config:   cfg,
		State:    opts.State,
		Storage:  opts.Storage,
		Loader:   opts.Loader,
		Logger:   logger,
		DevBuild: opts.DevBuild,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.TUI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)

	// Start theme watcher if requested
	if opts.Watch && opts.ThemeFile != "" {
		watcher, err := theme.NewWatcher(opts.ThemeFile, logger)
		if err != nil {
			logger.Warn("failed to create theme watcher", "error", err)
		} else {
			watcher.SetChangeCallback(func(preset *theme.Preset) {
				p.Send(themeChangedMsg{preset: preset})
			})
			watcher.SetErrorCallback(func(err error) {
				p.Send(themeErrorMsg{err: err})
			})
			if err := watcher.Start(ctx); err != nil {
				logger.Warn("failed to start theme watcher", "error", err)
			}
			defer watcher.Stop()
		}
	}

	_, err := p.Run()
	return err
}
