// Package main provides the CLI entrypoint for themedit.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themedit/internal/config"
	"github.com/jmylchreest/themedit/internal/storage"
	"github.com/jmylchreest/themedit/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		stateFile  string
		configPath string
	}
	logger *slog.Logger

	// stateStore holds the persisted editor state
	stateStore storage.Storage
	// fileStore is stateStore when persistence is enabled
	fileStore *storage.FileStorage
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "themedit",
	Short: "Terminal theme editor with a live widget playground",
	Long: `themedit is a terminal theme editor.

The left panel lists every colour of the theme; the right panel is a
playground of widgets styled by the theme as you edit it. The theme and the
playground's values are saved on exit and restored on the next start.

Running themedit without a subcommand launches the editor.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger(os.Stderr, slog.LevelWarn)

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !globalOpts.verbose {
			setupLogger(os.Stderr, cfg.Log.SlogLevel())
		}

		if globalOpts.stateFile != "" {
			cfg.Storage.Path = globalOpts.stateFile
			cfg.Storage.Persist = true
		}

		if !cfg.Storage.Persist {
			logger.Debug("persistence disabled, keeping state in memory")
			stateStore = storage.NewMemoryStorage()
			return nil
		}

		fileStore, err = storage.OpenFileStorage(cfg.StatePath(), logger)
		if err != nil {
			return fmt.Errorf("failed to open state file: %w", err)
		}
		stateStore = fileStore
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if fileStore != nil {
			return fileStore.Close()
		}
		return nil
	},
	// Default to the editor when no subcommand is provided
	RunE: runEditor,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.stateFile, "state-file", "",
		"Path to state file (default: ~/.local/share/themedit/app.json)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/themedit/config.toml)")
}

// setupLogger configures the global slog logger.
// -v always wins over the configured level.
func setupLogger(w io.Writer, level slog.Level) {
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(w, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// getStorage returns the global state storage.
func getStorage() storage.Storage {
	return stateStore
}

// getConfig returns the global config instance.
func getConfig() *config.Config {
	return cfg
}

// newLoader returns a preset loader for the user themes directory.
func newLoader() *theme.Loader {
	return theme.NewLoader(config.ThemesDir(), logger)
}
