package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ffreemt/claude-code-env-manager/internal/profile"
)

func TestDefaultShow(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	out := app.Out.(*bytes.Buffer)

	cmd := newDefaultCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("default failed: %v", err)
	}

	if !strings.Contains(out.String(), "Default profile: dev") {
		t.Errorf("expected default notice, got %q", out.String())
	}
}

func TestDefaultShowNone(t *testing.T) {
	app, _ := setupTestApp(t)
	out := app.Out.(*bytes.Buffer)

	cmd := newDefaultCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("default failed: %v", err)
	}

	if !strings.Contains(out.String(), "No default profile set.") {
		t.Errorf("expected no-default notice, got %q", out.String())
	}
}

func TestDefaultSet(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	seedProfile(t, m, "prod", "claude-3-opus-20240229")
	out := app.Out.(*bytes.Buffer)

	cmd := newDefaultCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"prod"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("default failed: %v", err)
	}

	if !strings.Contains(out.String(), "Default profile set to prod") {
		t.Errorf("expected confirmation, got %q", out.String())
	}

	def, err := m.DefaultProfile()
	if err != nil {
		t.Fatalf("failed to get default: %v", err)
	}
	if def != "prod" {
		t.Errorf("expected prod, got %q", def)
	}
}

func TestDefaultSetNotFound(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")

	cmd := newDefaultCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"ghost"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	def, err := m.DefaultProfile()
	if err != nil {
		t.Fatalf("failed to get default: %v", err)
	}
	if def != "dev" {
		t.Errorf("expected default unchanged, got %q", def)
	}
}
