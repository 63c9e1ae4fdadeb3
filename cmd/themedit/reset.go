package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themedit/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved editor state",
	Long: `Remove the saved editor state so the next start uses the defaults:
the dark theme, the label "Hello World!", an unchecked checkbox and the
first option selected.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	store := getStorage()
	store.Remove(storage.AppKey)
	if err := store.Flush(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "State reset to defaults")
	return nil
}
