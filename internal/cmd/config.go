package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command.
func newConfigCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration paths and status",
		Long: `Show the resolved document paths and whether a Claude Code
settings file exists there. Verbose output adds the profile count and
the default and current profiles.

Examples:
  ccenv config
  ccenv config -v
  ccenv config --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			installed := false
			if _, err := os.Stat(app.Manager.SettingsPath()); err == nil {
				installed = true
			}

			if app.JSON {
				info := map[string]any{
					"config_path":   app.Manager.ConfigPath(),
					"settings_path": app.Manager.SettingsPath(),
					"installed":     installed,
				}
				if app.Verbose {
					profiles, err := app.Manager.ListProfiles()
					if err != nil {
						return err
					}
					info["profiles"] = len(profiles)

					def, err := app.Manager.DefaultProfile()
					if err != nil {
						return err
					}
					info["default"] = def

					current, err := app.Manager.CurrentProfile()
					if err != nil {
						current = ""
					}
					info["current"] = current
				}
				return json.NewEncoder(app.Out).Encode(info)
			}

			fmt.Fprintln(app.Out, "Configuration:")
			fmt.Fprintf(app.Out, "  Config file: %s\n", app.Manager.ConfigPath())
			fmt.Fprintf(app.Out, "  Settings file: %s\n", app.Manager.SettingsPath())
			fmt.Fprintf(app.Out, "  Claude Code installed: %t\n", installed)

			if app.Verbose {
				profiles, err := app.Manager.ListProfiles()
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "  Profiles: %d\n", len(profiles))

				def, err := app.Manager.DefaultProfile()
				if err != nil {
					return err
				}
				fmt.Fprintf(app.Out, "  Default profile: %s\n", orNone(def))

				current, err := app.Manager.CurrentProfile()
				if err != nil {
					current = ""
				}
				fmt.Fprintf(app.Out, "  Current profile: %s\n", orNone(current))
			}
			return nil
		},
	}

	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
