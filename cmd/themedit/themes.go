package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long: `List the built-in presets and those in the user themes directory
(~/.config/themedit/themes). A user file with the same name as a bundled
preset replaces it.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("NAME", "SOURCE")

	for _, p := range newLoader().List() {
		t.Row(p.Name, p.Source())
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}
