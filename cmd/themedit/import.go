package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themedit/internal/adapter/input"
	"github.com/jmylchreest/themedit/internal/appstate"
)

var importOpts struct {
	format string
	name   string
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Load a theme into the saved state or the presets",
	Long: `Read a theme from FILE (or "-" for stdin) and make it the saved theme,
or save it as a user preset with --name.

Keys the file leaves out keep the values of the built-in dark or light theme,
chosen by the file's dark_mode setting.

Examples:
  themedit import mytheme.toml
  themedit export --format yaml | themedit import --format yaml -
  themedit import --name solar ./solar.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importOpts.format, "format", "f", "",
		"Input format (toml, yaml, json; detected from the extension if empty)")
	importCmd.Flags().StringVarP(&importOpts.name, "name", "n", "",
		"Save as a user preset with this name instead")
}

func runImport(cmd *cobra.Command, args []string) error {
	v, err := input.ImportFile(args[0], importOpts.format)
	if err != nil {
		return err
	}

	if importOpts.name != "" {
		path, err := newLoader().Save(importOpts.name, v)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %s to %s\n", importOpts.name, path)
		return nil
	}

	store := getStorage()
	state := appstate.Load(store, logger)
	state.Theme = v
	if err := state.Save(store); err != nil {
		return err
	}
	if err := store.Flush(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Theme imported")
	return nil
}
