package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
	"github.com/ffreemt/claude-code-env-manager/internal/profile"
)

func TestShowByName(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	out := app.Out.(*bytes.Buffer)

	cmd := newShowCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"dev"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "dev") || !strings.Contains(output, claude.EnvModel) {
		t.Errorf("expected profile detail, got %q", output)
	}
	if !strings.Contains(output, "sk-ant-dev...") {
		t.Errorf("expected masked key, got %q", output)
	}
	if strings.Contains(output, "sk-ant-dev-key") {
		t.Error("output should not contain the full API key")
	}
}

func TestShowJSON(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	out := app.Out.(*bytes.Buffer)

	cmd := newShowCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"dev", "--format", "json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var doc profile.Doc
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if doc.Name != "dev" {
		t.Errorf("expected name dev, got %q", doc.Name)
	}
	// Machine output carries the key in the clear.
	if doc.Env[claude.EnvAPIKey] != "sk-ant-dev-key" {
		t.Errorf("expected full key in JSON, got %q", doc.Env[claude.EnvAPIKey])
	}
}

func TestShowSelector(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	seedProfile(t, m, "prod", "claude-3-opus-20240229")
	app.In = strings.NewReader("2\n")
	out := app.Out.(*bytes.Buffer)

	cmd := newShowCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "1) dev") || !strings.Contains(output, "2) prod") {
		t.Errorf("expected numbered listing, got %q", output)
	}
	if !strings.Contains(output, "claude-3-opus-20240229") {
		t.Errorf("expected prod detail, got %q", output)
	}
}

func TestShowSelectorQuit(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	app.In = strings.NewReader("q\n")
	out := app.Out.(*bytes.Buffer)

	cmd := newShowCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	if !strings.Contains(out.String(), "No profile selected.") {
		t.Errorf("expected quit notice, got %q", out.String())
	}
}

func TestShowSelectorInvalid(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	app.In = strings.NewReader("7\n")

	cmd := newShowCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for out-of-range selection")
	}
	if !strings.Contains(err.Error(), "invalid selection") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShowNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	cmd := newShowCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"ghost"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
