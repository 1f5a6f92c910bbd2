package cmd

import (
	"io"
	"os"
	"sync"

	"github.com/ffreemt/claude-code-env-manager/internal/manager"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath   string
	SettingsPath string
	JSONOutput   bool
	Quiet        bool
	Verbose      bool
	In           io.Reader
	Out          io.Writer
	Err          io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		In:  app.In,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	m, err := manager.New(p.ConfigPath, p.SettingsPath)
	if err != nil {
		return nil, err
	}

	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{
		Manager: m,
		In:      in,
		Out:     out,
		Err:     errOut,
		JSON:    p.JSONOutput,
		Quiet:   p.Quiet,
		Verbose: p.Verbose,
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ccenv",
		Short: "Manage Claude Code environment profiles",
		Long: `ccenv manages named environment profiles for Claude Code.

A profile bundles the Anthropic endpoint, API key, and model selection
under a name in ~/.claude/claude-profiles.yml. Applying a profile rewrites
the env block of ~/.claude/settings.json with the profile's values while
preserving unrelated variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVarP(&provider.ConfigPath, "config", "c", "", "Profile document path (default: ~/.claude/claude-profiles.yml)")
	rootCmd.PersistentFlags().StringVarP(&provider.SettingsPath, "settings", "s", "", "Settings file path (default: ~/.claude/settings.json)")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&provider.Quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&provider.Verbose, "verbose", "v", false, "Verbose output")

	// Register all commands
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newCreateCmd(provider))
	rootCmd.AddCommand(newUpdateCmd(provider))
	rootCmd.AddCommand(newDeleteCmd(provider))
	rootCmd.AddCommand(newApplyCmd(provider))
	rootCmd.AddCommand(newShowCmd(provider))
	rootCmd.AddCommand(newCurrentCmd(provider))
	rootCmd.AddCommand(newDefaultCmd(provider))
	rootCmd.AddCommand(newValidateCmd(provider))
	rootCmd.AddCommand(newPresetsCmd(provider))
	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newInitCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
