package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themedit/internal/adapter/output"
	"github.com/jmylchreest/themedit/internal/appstate"
	"github.com/jmylchreest/themedit/internal/visuals"
)

var exportOpts struct {
	format string
	preset string
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current theme in a portable format",
	Long: `Write the theme from the saved editor state, or a named preset, to stdout
or a file.

Examples:
  # Export the saved theme as TOML (loadable with --theme)
  themedit export > mytheme.toml

  # Export a bundled preset as YAML
  themedit export --preset catppuccin-mocha --format yaml

  # List every colour with its hex value
  themedit export --format plain`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOpts.format, "format", "f", "toml",
		"Output format (toml, yaml, json, plain)")
	exportCmd.Flags().StringVarP(&exportOpts.preset, "preset", "p", "",
		"Export a named preset instead of the saved theme")
	exportCmd.Flags().StringVarP(&exportOpts.output, "output", "o", "",
		"Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter, err := output.NewFormatter(output.FormatType(exportOpts.format))
	if err != nil {
		return err
	}

	v, err := exportVisuals()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if exportOpts.output != "" {
		f, err := os.Create(exportOpts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return formatter.Format(w, v)
}

func exportVisuals() (visuals.Visuals, error) {
	if exportOpts.preset == "" {
		return appstate.Load(getStorage(), logger).Theme, nil
	}

	p, err := newLoader().Load(exportOpts.preset)
	if err != nil {
		return visuals.Visuals{}, fmt.Errorf("failed to load preset: %w", err)
	}
	return p.Visuals, nil
}
