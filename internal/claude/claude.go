// Package claude defines the Claude Code surface this tool manages: the
// ANTHROPIC_* environment variable namespace, the settings.json document
// model, and the file locations under ~/.claude.
package claude

import (
	"fmt"
	"os"
	"path/filepath"
)

// Managed environment variable keys. Every profile provides all four.
const (
	EnvBaseURL   = "ANTHROPIC_BASE_URL"
	EnvAPIKey    = "ANTHROPIC_API_KEY"
	EnvModel     = "ANTHROPIC_MODEL"
	EnvFastModel = "ANTHROPIC_SMALL_FAST_MODEL"
)

// EnvPrefix is the namespace owned by profiles. Applying a profile replaces
// every settings env var under this prefix and preserves the rest.
const EnvPrefix = "ANTHROPIC_"

// Request timeout injected on apply when neither the profile nor the
// existing settings define one.
const (
	EnvTimeout     = "API_TIMEOUT_MS"
	DefaultTimeout = "600000"
)

// SchemaURL is the JSON schema reference written into settings.json.
const SchemaURL = "https://json.schemastore.org/claude-code-settings.json"

// Environment variable names overriding the default document locations.
const (
	EnvConfigPath   = "CLAUDE_ENV_MANAGER_CONFIG"   // profile document path
	EnvSettingsPath = "CLAUDE_ENV_MANAGER_SETTINGS" // settings.json path
	EnvPresetsDir   = "CLAUDE_ENV_MANAGER_PRESETS"  // extra preset directory
)

// File names inside the Claude config directory.
const (
	ProfilesFileName = "claude-profiles.yml"
	SettingsFileName = "settings.json"
)

// RequiredEnvKeys returns the four managed keys in display order.
func RequiredEnvKeys() []string {
	return []string{EnvBaseURL, EnvAPIKey, EnvModel, EnvFastModel}
}

// Dir returns the Claude Code configuration directory (~/.claude).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".claude"), nil
}

// DefaultProfilesPath returns the default location of the profile document.
func DefaultProfilesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProfilesFileName), nil
}

// DefaultSettingsPath returns the default location of settings.json.
func DefaultSettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// ResolveProfilesPath resolves the profile document path:
// explicit value > CLAUDE_ENV_MANAGER_CONFIG > default.
func ResolveProfilesPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	return DefaultProfilesPath()
}

// ResolveSettingsPath resolves the settings document path:
// explicit value > CLAUDE_ENV_MANAGER_SETTINGS > default.
func ResolveSettingsPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvSettingsPath); p != "" {
		return p, nil
	}
	return DefaultSettingsPath()
}
