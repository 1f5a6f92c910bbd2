package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate command.
func newValidateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [name]",
		Short: "Validate profiles against the current rules",
		Long: `Check profiles against the current validation rules: name
pattern, required variables, API key and URL formats, model names, and
description length. Documents written by older versions or edited by
hand can drift out of shape.

With no name, every profile is checked. Exits non-zero if any profile
is invalid.

Examples:
  ccenv validate
  ccenv validate dev`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			var names []string
			if len(args) == 1 {
				if _, err := app.Manager.GetProfile(args[0]); err != nil {
					return err
				}
				names = []string{args[0]}
			} else {
				profiles, err := app.Manager.ListProfiles()
				if err != nil {
					return err
				}
				for _, p := range profiles {
					names = append(names, p.Name)
				}
			}

			type result struct {
				Name   string `json:"name"`
				Valid  bool   `json:"valid"`
				Reason string `json:"reason,omitempty"`
			}
			results := make([]result, 0, len(names))
			invalid := 0
			for _, name := range names {
				ok, err := app.Manager.ValidateProfile(name)
				if err != nil {
					return err
				}
				res := result{Name: name, Valid: ok}
				if !ok {
					invalid++
					p, err := app.Manager.GetProfile(name)
					if err != nil {
						return err
					}
					if verr := p.Validate(); verr != nil {
						res.Reason = verr.Error()
					}
				}
				results = append(results, res)
			}

			if app.JSON {
				if err := json.NewEncoder(app.Out).Encode(results); err != nil {
					return err
				}
			} else if !app.Quiet {
				for _, res := range results {
					if res.Valid {
						fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("✓"), res.Name)
					} else {
						fmt.Fprintf(app.Out, "%s %s: %s\n", app.WarnColor("✗"), res.Name, res.Reason)
					}
				}
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d profiles invalid", invalid, len(results))
			}
			return nil
		},
	}

	return cmd
}
