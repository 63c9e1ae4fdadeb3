package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/themedit/internal/appstate"
)

var showOpts struct {
	json bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved editor state",
	Long: `Print the saved editor state and where it is stored.

With --json, print the persisted record exactly as it is saved.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showOpts.json, "json", false,
		"Print the persisted JSON record")
}

func runShow(cmd *cobra.Command, args []string) error {
	state := appstate.Load(getStorage(), logger)
	w := cmd.OutOrStdout()

	if showOpts.json {
		data, err := state.Marshal()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	printLocation(w)

	mode := "light"
	if state.Theme.DarkMode {
		mode = "dark"
	}
	fmt.Fprintf(w, "Label:     %q\n", state.Label)
	fmt.Fprintf(w, "Checkbox:  %t\n", state.Flag)
	fmt.Fprintf(w, "Selection: %s\n", state.Selection)
	fmt.Fprintf(w, "Value:     %.1f (not saved)\n", state.Value)
	fmt.Fprintf(w, "Theme:     %s mode, hyperlink %s, panel %s\n",
		mode, state.Theme.HyperlinkColor.Hex(), state.Theme.PanelFill.Hex())
	return nil
}

func printLocation(w io.Writer) {
	if fileStore == nil {
		fmt.Fprintln(w, "State:     in memory (persistence disabled)")
		return
	}

	fmt.Fprintf(w, "State:     %s\n", fileStore.Path())
	if saved := fileStore.SavedAt(); !saved.IsZero() {
		fmt.Fprintf(w, "Saved:     %s\n", humanize.Time(saved))
	} else {
		fmt.Fprintln(w, "Saved:     never")
	}
}
