package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/ffreemt/claude-code-env-manager/internal/preset"

	"github.com/spf13/cobra"
)

// newPresetsCmd creates the presets command.
func newPresetsCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available profile presets",
		Long: `List the presets usable with 'ccenv create --from-preset' and
'ccenv init --preset'.

Presets are <name>.preset.toml or <name>.preset.json files found in
$CLAUDE_ENV_MANAGER_PRESETS or ~/.claude/presets. The built-in
development preset is always available unless a file shadows it.

Examples:
  ccenv presets
  ccenv presets --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			entries, err := preset.List(preset.DefaultSearchPath())
			if err != nil {
				return fmt.Errorf("listing presets: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(app.Out, "No presets found.")
				return nil
			}

			tw := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSOURCE\tDESCRIPTION")
			for _, e := range entries {
				source := e.Format
				if e.SourcePath != "" {
					source = e.SourcePath
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, source, e.Description)
			}
			return tw.Flush()
		},
	}

	return cmd
}
