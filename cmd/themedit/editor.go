package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themedit/internal/appstate"
	"github.com/jmylchreest/themedit/internal/storage"
	"github.com/jmylchreest/themedit/internal/tui"
)

var editorOpts struct {
	themeFile string
	watch     bool
}

func init() {
	rootCmd.Flags().StringVar(&editorOpts.themeFile, "theme", "",
		"Preset file to apply over the restored theme")
	rootCmd.Flags().BoolVar(&editorOpts.watch, "watch", false,
		"Re-apply --theme whenever the file changes")
}

func runEditor(cmd *cobra.Command, args []string) error {
	c := getConfig()

	themeFile := c.Theme.File
	if editorOpts.themeFile != "" {
		themeFile = editorOpts.themeFile
	}
	watch := c.Theme.Watch || editorOpts.watch
	if watch && themeFile == "" {
		return fmt.Errorf("--watch requires --theme or theme.file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// While the TUI owns the terminal, stderr would draw over the screen
	logOut, closeLog := tuiLogWriter(c.LogPath())
	defer closeLog()
	prev := logger
	setupLogger(logOut, c.Log.SlogLevel())
	defer func() {
		logger = prev
		slog.SetDefault(prev)
	}()

	store := getStorage()
	state := appstate.Load(store, logger)

	return runWithSave(func() error {
		return tui.Run(ctx, tui.RunOptions{
			Config:    c,
			State:     state,
			Storage:   store,
			Loader:    newLoader(),
			Logger:    logger,
			DevBuild:  version == "dev",
			ThemeFile: themeFile,
			Watch:     watch,
		})
	}, state, store, logger)
}

// runWithSave runs the editor, then saves the state whatever run returned.
// Save failures are logged; the run error is returned.
func runWithSave(run func() error, state *appstate.State, store storage.Storage, logger *slog.Logger) error {
	runErr := run()
	if err := saveOnExit(state, store); err != nil {
		logger.Warn("failed to save state", "error", err)
	}
	return runErr
}

// saveOnExit stores state under the app key and flushes the store.
func saveOnExit(state *appstate.State, store storage.Storage) error {
	if err := state.Save(store); err != nil {
		return err
	}
	return store.Flush()
}

// tuiLogWriter opens the log file used while the TUI runs. Logs are
// discarded when it cannot be opened.
func tuiLogWriter(path string) (io.Writer, func()) {
	f, err := openLogFile(path)
	if err != nil {
		logger.Warn("failed to open log file, discarding logs", "path", path, "error", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
