package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newDefaultCmd creates the default command.
func newDefaultCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "default [name]",
		Short: "Show or set the default profile",
		Long: `With no argument, print the default profile. With a name, make
that profile the default.

Examples:
  ccenv default
  ccenv default prod`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				name, err := app.Manager.DefaultProfile()
				if err != nil {
					return err
				}
				if app.JSON {
					var v any
					if name != "" {
						v = name
					}
					return json.NewEncoder(app.Out).Encode(map[string]any{"default": v})
				}
				if name == "" {
					fmt.Fprintln(app.Out, "No default profile set.")
					return nil
				}
				fmt.Fprintf(app.Out, "Default profile: %s\n", name)
				return nil
			}

			name := args[0]
			if err := app.Manager.SetDefaultProfile(name); err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{"default": name})
			}
			if !app.Quiet {
				fmt.Fprintf(app.Out, "%s Default profile set to %s\n", app.SuccessColor("✓"), name)
			}
			return nil
		},
	}

	return cmd
}
