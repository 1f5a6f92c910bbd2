package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ffreemt/claude-code-env-manager/internal/preset"
	"github.com/ffreemt/claude-code-env-manager/internal/profile"

	"github.com/spf13/cobra"
)

// newInitCmd creates the init command.
func newInitCmd(provider *AppProvider) *cobra.Command {
	var (
		force      bool
		fromPreset string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the profile document",
		Long: `Create the profile document seeded with a starter profile and
set it as the default. The starter comes from a preset; the built-in
development preset is used unless --preset names another.

If a document already exists, asks before overwriting it.

Examples:
  ccenv init
  ccenv init --preset team-proxy
  ccenv init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if _, err := os.Stat(app.Manager.ConfigPath()); err == nil && !force {
				ok, err := confirm(app, "Profile document already exists. Reinitialize?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(app.Out, "Cancelled")
					return nil
				}
			}

			ps, err := preset.Load(fromPreset, preset.DefaultSearchPath())
			if err != nil {
				return err
			}

			seed, err := profile.New(ps.Name, ps.Env, ps.Description)
			if err != nil {
				return fmt.Errorf("building starter profile: %w", err)
			}
			cfg := profile.NewCollection()
			if err := cfg.Add(seed); err != nil {
				return err
			}
			cfg.Default = seed.Name

			if err := app.Manager.SaveConfig(cfg); err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"config_path": app.Manager.ConfigPath(),
					"profile":     seed.Name,
				})
			}
			if !app.Quiet {
				fmt.Fprintf(app.Out, "%s Initialized %s\n", app.SuccessColor("✓"), app.Manager.ConfigPath())
				fmt.Fprintf(app.Out, "%s Created profile %s (default)\n", app.SuccessColor("✓"), seed.Name)
				fmt.Fprintf(app.Out, "Run 'ccenv apply %s' to point Claude Code at it.\n", seed.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing document without asking")
	cmd.Flags().StringVar(&fromPreset, "preset", "development", "Preset to seed the starter profile from")

	return cmd
}
