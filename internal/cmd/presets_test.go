package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
	"github.com/ffreemt/claude-code-env-manager/internal/preset"
)

func TestPresetsBuiltin(t *testing.T) {
	t.Setenv(claude.EnvPresetsDir, t.TempDir())
	app, _ := setupTestApp(t)
	out := app.Out.(*bytes.Buffer)

	cmd := newPresetsCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("presets failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "development") {
		t.Errorf("expected builtin development preset, got %q", output)
	}
	if !strings.Contains(output, "builtin") {
		t.Errorf("expected builtin source, got %q", output)
	}
}

func TestPresetsUserFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(claude.EnvPresetsDir, dir)

	presetFile := filepath.Join(dir, "team.preset.toml")
	body := `description = "Team proxy environment"

[env]
ANTHROPIC_BASE_URL = "https://proxy.internal.example.com"
ANTHROPIC_API_KEY = "sk-proxy-team-key"
ANTHROPIC_MODEL = "claude-3-5-sonnet-20241022"
ANTHROPIC_SMALL_FAST_MODEL = "claude-3-haiku-20240307"
`
	if err := os.WriteFile(presetFile, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	app, _ := setupTestApp(t)
	out := app.Out.(*bytes.Buffer)

	cmd := newPresetsCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("presets failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "team") || !strings.Contains(output, presetFile) {
		t.Errorf("expected user preset with its path, got %q", output)
	}
	if !strings.Contains(output, "development") {
		t.Errorf("expected builtin to remain listed, got %q", output)
	}
}

func TestPresetsJSON(t *testing.T) {
	t.Setenv(claude.EnvPresetsDir, t.TempDir())
	app, _ := setupTestApp(t)
	app.JSON = true
	out := app.Out.(*bytes.Buffer)

	cmd := newPresetsCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("presets failed: %v", err)
	}

	var entries []preset.Entry
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.Name == "development" && e.Format == "builtin" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected development builtin entry, got %v", entries)
	}
}
