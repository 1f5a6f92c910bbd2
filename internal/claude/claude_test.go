package claude

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveProfilesPath(t *testing.T) {
	t.Run("explicit wins over env var", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/profiles.yml")
		got, err := ResolveProfilesPath("/explicit/profiles.yml")
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if got != "/explicit/profiles.yml" {
			t.Errorf("expected explicit path, got %q", got)
		}
	})

	t.Run("env var wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/profiles.yml")
		got, err := ResolveProfilesPath("")
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if got != "/env/profiles.yml" {
			t.Errorf("expected env path, got %q", got)
		}
	})

	t.Run("default under ~/.claude", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		got, err := ResolveProfilesPath("")
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if filepath.Base(got) != ProfilesFileName {
			t.Errorf("expected default file name %q, got %q", ProfilesFileName, got)
		}
		if !strings.Contains(got, ".claude") {
			t.Errorf("expected path under .claude, got %q", got)
		}
	})
}

func TestResolveSettingsPath(t *testing.T) {
	t.Setenv(EnvSettingsPath, "/env/settings.json")

	got, err := ResolveSettingsPath("")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "/env/settings.json" {
		t.Errorf("expected env path, got %q", got)
	}

	got, err = ResolveSettingsPath("/tmp/other.json")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "/tmp/other.json" {
		t.Errorf("expected explicit path, got %q", got)
	}
}

func TestRequiredEnvKeys(t *testing.T) {
	keys := RequiredEnvKeys()
	if len(keys) != 4 {
		t.Fatalf("expected 4 required keys, got %d", len(keys))
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, EnvPrefix) {
			t.Errorf("required key %q not under prefix %q", k, EnvPrefix)
		}
	}
}
