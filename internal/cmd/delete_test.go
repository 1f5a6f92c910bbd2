package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ffreemt/claude-code-env-manager/internal/profile"
)

func TestDeleteWithForce(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	seedProfile(t, m, "prod", "claude-3-opus-20240229")
	out := app.Out.(*bytes.Buffer)

	cmd := newDeleteCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"dev", "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if !strings.Contains(out.String(), "Deleted profile dev") {
		t.Errorf("expected delete confirmation, got %q", out.String())
	}

	if _, err := m.GetProfile("dev"); !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The default moves to the first remaining profile.
	def, err := m.DefaultProfile()
	if err != nil {
		t.Fatalf("failed to get default: %v", err)
	}
	if def != "prod" {
		t.Errorf("expected default to move to prod, got %q", def)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	app.In = strings.NewReader("y\n")
	out := app.Out.(*bytes.Buffer)

	cmd := newDeleteCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"dev"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if !strings.Contains(out.String(), `Delete profile "dev"? [y/N]`) {
		t.Errorf("expected confirmation prompt, got %q", out.String())
	}
	if _, err := m.GetProfile("dev"); !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("expected profile deleted, got %v", err)
	}
}

func TestDeleteDeclined(t *testing.T) {
	app, m := setupTestApp(t)
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	app.In = strings.NewReader("n\n")
	out := app.Out.(*bytes.Buffer)

	cmd := newDeleteCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"dev"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("expected Cancelled, got %q", out.String())
	}
	if _, err := m.GetProfile("dev"); err != nil {
		t.Errorf("expected profile to survive, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	cmd := newDeleteCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"ghost", "--force"})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteJSONOutput(t *testing.T) {
	app, m := setupTestApp(t)
	app.JSON = true
	seedProfile(t, m, "dev", "claude-3-5-sonnet-20241022")
	out := app.Out.(*bytes.Buffer)

	cmd := newDeleteCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"dev", "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if result["deleted"] != "dev" {
		t.Errorf("expected deleted dev, got %v", result)
	}
}
