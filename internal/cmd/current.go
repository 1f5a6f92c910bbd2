package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newCurrentCmd creates the current command.
func newCurrentCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the profile the live settings match",
		Long: `Report which profile the Claude Code settings currently match,
going by the model variable. This is a best-effort query: a missing or
unreadable settings file reads as no active profile.

Examples:
  ccenv current
  ccenv current --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			// Advisory: load failures count as "no active profile".
			name, err := app.Manager.CurrentProfile()
			if err != nil {
				name = ""
			}

			if app.JSON {
				var v any
				if name != "" {
					v = name
				}
				return json.NewEncoder(app.Out).Encode(map[string]any{"current": v})
			}

			if name == "" {
				if !app.Quiet {
					fmt.Fprintln(app.Out, "No active profile found.")
				}
				return nil
			}
			fmt.Fprintf(app.Out, "Current profile: %s\n", name)
			return nil
		},
	}

	return cmd
}
