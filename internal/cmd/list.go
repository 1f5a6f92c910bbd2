package cmd

import (
	"fmt"

	"github.com/ffreemt/claude-code-env-manager/internal/render"

	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd(provider *AppProvider) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List environment profiles",
		Long: `List the profiles in the profile document.

The default profile is marked in the table. Verbose output adds the
fast model and a masked API key column.

Examples:
  ccenv list                  # Table of profiles
  ccenv list -v               # Include fast model and masked API key
  ccenv list --format json    # Machine-readable listing
  ccenv list --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			mode, err := render.ParseMode(format)
			if err != nil {
				return err
			}
			if app.JSON {
				mode = render.ModeJSON
			}

			profiles, err := app.Manager.ListProfiles()
			if err != nil {
				return fmt.Errorf("listing profiles: %w", err)
			}

			if len(profiles) == 0 && mode == render.ModeTable {
				if !app.Quiet {
					fmt.Fprintln(app.Out, "No profiles found. Use 'ccenv create' to add one.")
				}
				return nil
			}

			defaultName, err := app.Manager.DefaultProfile()
			if err != nil {
				return fmt.Errorf("resolving default profile: %w", err)
			}

			return render.Profiles(app.Out, profiles, defaultName, mode, app.Verbose)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")

	return cmd
}
