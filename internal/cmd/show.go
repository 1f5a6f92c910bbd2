package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/ffreemt/claude-code-env-manager/internal/profile"
	"github.com/ffreemt/claude-code-env-manager/internal/render"

	"github.com/spf13/cobra"
)

// newShowCmd creates the show command.
func newShowCmd(provider *AppProvider) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show profile details",
		Long: `Show one profile, with the API key masked in table output.

With no name, presents a numbered list and prompts for a selection.

Examples:
  ccenv show dev
  ccenv show dev --format json
  ccenv show`,
		Args: cobra.MaximumNArgs(1),
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

			var p *profile.Profile
			if len(args) == 1 {
				p, err = app.Manager.GetProfile(args[0])
				if err != nil {
					return err
				}
			} else {
				p, err = selectProfile(app)
				if err != nil {
					return err
				}
				if p == nil {
					if !app.Quiet {
						fmt.Fprintln(app.Out, "No profile selected.")
					}
					return nil
				}
			}

			return render.ProfileDetail(app.Out, p, mode)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")

	return cmd
}

// selectProfile lists profiles with numbers and reads a selection. A nil
// profile with a nil error means nothing was selected.
func selectProfile(app *App) (*profile.Profile, error) {
	profiles, err := app.Manager.ListProfiles()
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}

	for i, p := range profiles {
		if p.Description != "" {
			fmt.Fprintf(app.Out, "%d) %s - %s\n", i+1, p.Name, p.Description)
		} else {
			fmt.Fprintf(app.Out, "%d) %s\n", i+1, p.Name)
		}
	}

	r := bufio.NewReader(app.In)
	answer, err := promptLine(app, r, "Profile number (q to quit)", "")
	if err != nil {
		return nil, err
	}
	if answer == "" || strings.EqualFold(answer, "q") {
		return nil, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(profiles) {
		return nil, fmt.Errorf("invalid selection %q", answer)
	}
	return profiles[n-1], nil
}
