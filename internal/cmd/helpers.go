package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
)

// confirm prints a [y/N] prompt and reads one line from the app input.
func confirm(app *App, prompt string) (bool, error) {
	return readYes(app, bufio.NewReader(app.In), prompt)
}

// readYes asks a yes/no question on an existing reader so multi-prompt
// flows share one buffered input.
func readYes(app *App, r *bufio.Reader, prompt string) (bool, error) {
	fmt.Fprintf(app.Out, "%s [y/N] ", prompt)
	response, err := r.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// promptLine asks for a single value. An empty answer returns def.
func promptLine(app *App, r *bufio.Reader, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(app.Out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(app.Out, "%s: ", label)
	}
	line, err := r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// promptEnv walks the four managed env vars, offering defaults, and
// returns the answers keyed by env var name.
func promptEnv(app *App, r *bufio.Reader, defaults map[string]string) (map[string]string, error) {
	env := make(map[string]string, len(defaults))
	for _, key := range claude.RequiredEnvKeys() {
		value, err := promptLine(app, r, key, defaults[key])
		if err != nil {
			return nil, err
		}
		env[key] = value
	}
	return env, nil
}

// parseEnvPairs splits repeated KEY=VALUE flag values into a map.
func parseEnvPairs(pairs []string) (map[string]string, error) {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid env pair %q (want KEY=VALUE)", pair)
		}
		env[key] = value
	}
	return env, nil
}
