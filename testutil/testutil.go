// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
)

// ValidEnv returns a complete, valid managed env block.
func ValidEnv() map[string]string {
	return map[string]string{
		claude.EnvBaseURL:   "https://api.anthropic.com",
		claude.EnvAPIKey:    "sk-ant-test-key",
		claude.EnvModel:     "claude-3-5-sonnet-20241022",
		claude.EnvFastModel: "claude-3-haiku-20240307",
	}
}

// EnvWith returns ValidEnv with the given overrides applied. An empty
// override value is kept as-is so tests can exercise empty-value checks.
func EnvWith(overrides map[string]string) map[string]string {
	env := ValidEnv()
	for k, v := range overrides {
		env[k] = v
	}
	return env
}

// EnvWithout returns ValidEnv with the given keys removed.
func EnvWithout(keys ...string) map[string]string {
	env := ValidEnv()
	for _, k := range keys {
		delete(env, k)
	}
	return env
}

// SettingsJSON returns a valid settings document with the given env block.
func SettingsJSON(env map[string]string) *claude.Settings {
	if env == nil {
		env = ValidEnv()
	}
	return &claude.Settings{
		Env:         env,
		Permissions: claude.DefaultPermissions(),
		StatusLine:  claude.DefaultStatusLine(),
		Schema:      claude.SchemaURL,
	}
}

// WriteSettings writes a valid settings.json under dir and returns its path.
func WriteSettings(t *testing.T, dir string, env map[string]string) string {
	t.Helper()
	data, err := SettingsJSON(env).EncodeJSON()
	if err != nil {
		t.Fatalf("encoding settings fixture: %v", err)
	}
	path := filepath.Join(dir, claude.SettingsFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing settings fixture: %v", err)
	}
	return path
}
