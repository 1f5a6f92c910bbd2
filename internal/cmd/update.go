package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"

	"github.com/spf13/cobra"
)

// newUpdateCmd creates the update command.
func newUpdateCmd(provider *AppProvider) *cobra.Command {
	var (
		baseURL     string
		apiKey      string
		model       string
		fastModel   string
		description string
		envPairs    []string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update an existing profile",
		Long: `Update values on a profile. Only the flags you pass change;
everything else is preserved. Passing --description "" clears the
description. Interactive mode prompts with the current values as
defaults.

Examples:
  ccenv update dev --model claude-sonnet-4-5
  ccenv update dev --env HTTP_PROXY=http://localhost:8080
  ccenv update dev --description ""
  ccenv update dev -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			name := args[0]

			env := map[string]string{}
			if baseURL != "" {
				env[claude.EnvBaseURL] = baseURL
			}
			if apiKey != "" {
				env[claude.EnvAPIKey] = apiKey
			}
			if model != "" {
				env[claude.EnvModel] = model
			}
			if fastModel != "" {
				env[claude.EnvFastModel] = fastModel
			}
			extra, err := parseEnvPairs(envPairs)
			if err != nil {
				return err
			}
			for k, v := range extra {
				env[k] = v
			}

			var descPtr *string
			if cmd.Flags().Changed("description") {
				descPtr = &description
			}

			if interactive {
				wenv, wdesc, proceed, err := updateWizard(app, name)
				if err != nil {
					return err
				}
				if !proceed {
					return nil
				}
				env, descPtr = wenv, wdesc
			}

			p, err := app.Manager.UpdateProfile(name, env, descPtr)
			if err != nil {
				return fmt.Errorf("updating profile: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(p.Doc())
			}
			if !app.Quiet {
				fmt.Fprintf(app.Out, "%s Updated profile %s\n", app.SuccessColor("✓"), p.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseURL, "base-url", "b", "", "API base URL")
	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "API key (sk-...)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Primary model name")
	cmd.Flags().StringVarP(&fastModel, "fast-model", "f", "", "Fast model name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")
	cmd.Flags().StringArrayVar(&envPairs, "env", nil, "Extra variable as KEY=VALUE (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for values")

	return cmd
}

// updateWizard prompts for each value with the profile's current values
// as defaults, then returns only what changed. Returns proceed=false
// when nothing changed or the user declined the summary.
func updateWizard(app *App, name string) (map[string]string, *string, bool, error) {
	p, err := app.Manager.GetProfile(name)
	if err != nil {
		return nil, nil, false, err
	}

	r := bufio.NewReader(app.In)

	fmt.Fprintf(app.Out, "Editing profile %s (empty answer keeps the current value)\n", name)
	description, err := promptLine(app, r, "Description", p.Description)
	if err != nil {
		return nil, nil, false, err
	}
	env, err := promptEnv(app, r, p.Env)
	if err != nil {
		return nil, nil, false, err
	}

	changed := map[string]string{}
	for k, v := range env {
		if p.Env[k] != v {
			changed[k] = v
		}
	}
	var descPtr *string
	if description != p.Description {
		descPtr = &description
	}

	if len(changed) == 0 && descPtr == nil {
		fmt.Fprintln(app.Out, "No changes.")
		return nil, nil, false, nil
	}

	ok, err := readYes(app, r, "Apply these changes?")
	if err != nil {
		return nil, nil, false, err
	}
	if !ok {
		fmt.Fprintln(app.Out, "Cancelled")
		return nil, nil, false, nil
	}
	return changed, descPtr, true, nil
}
