package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themedit/internal/appstate"
	"github.com/jmylchreest/themedit/internal/visuals"
)

var setCmd = &cobra.Command{
	Use:   "set KEY COLOR",
	Short: "Change one theme colour in the saved state",
	Long: `Change one colour of the saved theme without opening the editor.

KEY is the dotted field path, for example "selection.bg_fill" or
"widgets.hovered.weak_bg_fill". COLOR is #RGB, #RRGGBB or #RRGGBBAA.

Run "themedit set --keys" to list every key.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if setKeys {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: runSet,
}

var setKeys bool

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVar(&setKeys, "keys", false, "List the colour keys and exit")
}

func runSet(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if setKeys {
		for _, f := range visuals.Fields() {
			fmt.Fprintf(w, "%-40s %s\n", f.Key, f.Label)
		}
		return nil
	}

	store := getStorage()
	state := appstate.Load(store, logger)
	old, err := setColor(state, args[0], args[1])
	if err != nil {
		return err
	}

	if err := state.Save(store); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	if err := store.Flush(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	f, _ := visuals.FieldByKey(args[0])
	fmt.Fprintf(w, "%s: %s -> %s\n", args[0], old.Hex(), f.Get(&state.Theme).Hex())
	return nil
}

// setColor replaces the theme colour at key and returns the previous value.
func setColor(state *appstate.State, key, value string) (visuals.Color, error) {
	f, ok := visuals.FieldByKey(key)
	if !ok {
		return visuals.Color{}, fmt.Errorf("unknown colour key %q (see --keys)", key)
	}

	c, err := visuals.ParseColor(value)
	if err != nil {
		return visuals.Color{}, fmt.Errorf("invalid colour %q: %w", value, err)
	}

	old := f.Get(&state.Theme)
	f.Set(&state.Theme, c)
	return old, nil
}
