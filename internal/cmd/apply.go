package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newApplyCmd creates the apply command.
func newApplyCmd(provider *AppProvider) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Apply a profile to the Claude Code settings",
		Long: `Write a profile's variables into the Claude Code settings file.

The profile replaces the managed ANTHROPIC_* variables; settings
variables outside that namespace are kept. The previous settings file
is saved with a .backup suffix first, and the applied profile becomes
the default. Asks for confirmation unless --force is given.

Examples:
  ccenv apply prod
  ccenv apply prod --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			name := args[0]

			if _, err := app.Manager.GetProfile(name); err != nil {
				return err
			}

			if !force {
				ok, err := confirm(app, fmt.Sprintf("Apply profile %q to the Claude Code settings?", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(app.Out, "Cancelled")
					return nil
				}
			}

			if err := app.Manager.ApplyProfile(name); err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{"applied": name})
			}
			if !app.Quiet {
				fmt.Fprintf(app.Out, "%s Applied profile %s\n", app.SuccessColor("✓"), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
