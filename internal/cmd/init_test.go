package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
)

func TestInitCreatesDocument(t *testing.T) {
	t.Setenv(claude.EnvPresetsDir, t.TempDir())
	app, m := setupTestApp(t)
	out := app.Out.(*bytes.Buffer)

	cmd := newInitCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if !strings.Contains(out.String(), "Initialized") {
		t.Errorf("expected init confirmation, got %q", out.String())
	}

	p, err := m.GetProfile("development")
	if err != nil {
		t.Fatalf("expected starter profile: %v", err)
	}
	if p.Env[claude.EnvBaseURL] != "https://api.anthropic.com" {
		t.Errorf("expected preset base url, got %q", p.Env[claude.EnvBaseURL])
	}

	def, err := m.DefaultProfile()
	if err != nil {
		t.Fatalf("failed to get default: %v", err)
	}
	if def != "development" {
		t.Errorf("expected starter to be default, got %q", def)
	}
}

func TestInitExistingDeclined(t *testing.T) {
	t.Setenv(claude.EnvPresetsDir, t.TempDir())
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	before, err := os.ReadFile(m.ConfigPath())
	if err != nil {
		t.Fatal(err)
	}

	app.In = strings.NewReader("n\n")
	out := app.Out.(*bytes.Buffer)

	cmd := newInitCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("expected Cancelled, got %q", out.String())
	}

	after, err := os.ReadFile(m.ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("expected document unchanged after declined init")
	}
}

func TestInitForceReplaces(t *testing.T) {
	t.Setenv(claude.EnvPresetsDir, t.TempDir())
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")

	cmd := newInitCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	profiles, err := m.ListProfiles()
	if err != nil {
		t.Fatalf("failed to list profiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "development" {
		t.Errorf("expected only the starter profile, got %v", profiles)
	}
}

func TestInitUnknownPreset(t *testing.T) {
	t.Setenv(claude.EnvPresetsDir, t.TempDir())
	app, _ := setupTestApp(t)

	cmd := newInitCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"--preset", "ghost"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}
