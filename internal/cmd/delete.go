package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command.
func newDeleteCmd(provider *AppProvider) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile",
		Long: `Delete a profile from the profile document.

Deleting the default profile moves the default to the first remaining
profile. Asks for confirmation unless --force is given.

Examples:
  ccenv delete old-profile
  ccenv delete old-profile --force`,
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
				ok, err := confirm(app, fmt.Sprintf("Delete profile %q?", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(app.Out, "Cancelled")
					return nil
				}
			}

			if _, err := app.Manager.DeleteProfile(name); err != nil {
				return fmt.Errorf("deleting profile: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{"deleted": name})
			}
			if !app.Quiet {
				fmt.Fprintf(app.Out, "%s Deleted profile %s\n", app.SuccessColor("✓"), name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
