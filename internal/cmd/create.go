package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
	"github.com/ffreemt/claude-code-env-manager/internal/preset"
	"github.com/ffreemt/claude-code-env-manager/internal/render"

	"github.com/spf13/cobra"
)

// newCreateCmd creates the create command.
func newCreateCmd(provider *AppProvider) *cobra.Command {
	var (
		baseURL     string
		apiKey      string
		model       string
		fastModel   string
		description string
		envPairs    []string
		fromPreset  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new environment profile",
		Long: `Create a named profile in the profile document.

Non-interactive creation needs all four managed values, from flags or
seeded with --from-preset. Extra variables can be attached with
repeated --env flags. Interactive mode prompts for every value and
shows a summary before writing anything.

The first profile created becomes the default.

Examples:
  ccenv create dev --from-preset development
  ccenv create dev -b https://api.anthropic.com -k sk-ant-xxx -m claude-sonnet-4-5 -f claude-3-5-haiku-latest
  ccenv create proxy --from-preset development --env HTTP_PROXY=http://localhost:8080
  ccenv create dev -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			name := args[0]

			env := map[string]string{}
			if fromPreset != "" {
				p, err := preset.Load(fromPreset, preset.DefaultSearchPath())
				if err != nil {
					return err
				}
				if description == "" {
					description = p.Description
				}
				for k, v := range p.Env {
					env[k] = v
				}
			}
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

			if interactive {
				wenv, wdesc, proceed, err := createWizard(app, name, env, description)
				if err != nil {
					return err
				}
				if !proceed {
					return nil
				}
				env, description = wenv, wdesc
			} else if missing := missingRequired(env); len(missing) > 0 {
				return fmt.Errorf("missing required values: %s (set flags, or use --from-preset or -i)", strings.Join(missing, ", "))
			}

			p, err := app.Manager.CreateProfile(name, env, description)
			if err != nil {
				return fmt.Errorf("creating profile: %w", err)
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(p.Doc())
			}
			if !app.Quiet {
				fmt.Fprintf(app.Out, "%s Created profile %s\n", app.SuccessColor("✓"), p.Name)
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
	cmd.Flags().StringVar(&fromPreset, "from-preset", "", "Seed values from a preset")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for values")

	return cmd
}

// missingRequired returns the managed keys that have no value yet.
func missingRequired(env map[string]string) []string {
	var missing []string
	for _, key := range claude.RequiredEnvKeys() {
		if env[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// createWizard prompts for every profile value, seeded with whatever the
// flags already provided. Returns proceed=false when the user declines
// the summary.
func createWizard(app *App, name string, seed map[string]string, description string) (map[string]string, string, bool, error) {
	r := bufio.NewReader(app.In)

	defaults := claude.DefaultEnv()
	for k, v := range seed {
		defaults[k] = v
	}

	fmt.Fprintf(app.Out, "Creating profile %s\n", name)
	description, err := promptLine(app, r, "Description (optional)", description)
	if err != nil {
		return nil, "", false, err
	}
	env, err := promptEnv(app, r, defaults)
	if err != nil {
		return nil, "", false, err
	}
	// Keep extra --env variables the wizard does not prompt for.
	for k, v := range seed {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}

	fmt.Fprintf(app.Out, "\nName: %s\n", name)
	if description != "" {
		fmt.Fprintf(app.Out, "Description: %s\n", description)
	}
	for _, key := range claude.RequiredEnvKeys() {
		value := env[key]
		if key == claude.EnvAPIKey {
			value = render.MaskAPIKey(value)
		}
		fmt.Fprintf(app.Out, "%s: %s\n", key, value)
	}

	ok, err := readYes(app, r, "\nCreate this profile?")
	if err != nil {
		return nil, "", false, err
	}
	if !ok {
		fmt.Fprintln(app.Out, "Cancelled")
		return nil, "", false, nil
	}
	return env, description, true, nil
}
