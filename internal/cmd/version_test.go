package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	app, _ := setupTestApp(t)
	out := app.Out.(*bytes.Buffer)

	cmd := newVersionCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	if !strings.Contains(out.String(), "ccenv version "+Version) {
		t.Errorf("expected version output, got %q", out.String())
	}
}

func TestVersionJSON(t *testing.T) {
	app, _ := setupTestApp(t)
	out := app.Out.(*bytes.Buffer)

	provider := NewTestProvider(app)
	provider.JSONOutput = true

	cmd := newVersionCmd(provider)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if result["version"] != Version {
		t.Errorf("expected version %q, got %v", Version, result)
	}
}
