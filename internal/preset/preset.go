// Package preset loads profile presets: reusable profile definitions kept
// as <name>.preset.toml or <name>.preset.json files, discovered through an
// ordered search path and used to seed new profiles.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
)

// Preset is a reusable profile definition. The name comes from the file
// name (or is fixed for built-ins), not from the file contents.
type Preset struct {
	Name        string            `toml:"-" json:"-"`
	Description string            `toml:"description" json:"description"`
	Env         map[string]string `toml:"env" json:"env"`
}

// Validate checks that the preset provides the four managed keys. Values
// may be placeholders; full profile validation happens at creation time.
func (p *Preset) Validate() error {
	if len(p.Env) == 0 {
		return fmt.Errorf("preset %q has no env block", p.Name)
	}
	for _, key := range claude.RequiredEnvKeys() {
		if _, ok := p.Env[key]; !ok {
			return fmt.Errorf("preset %q missing env key %s", p.Name, key)
		}
	}
	return nil
}

// SearchPath is an ordered list of directories to search for preset files.
// Earlier entries take priority over later ones.
type SearchPath []string

// DefaultSearchPath returns the preset directories (highest priority
// first): $CLAUDE_ENV_MANAGER_PRESETS if set, then ~/.claude/presets.
func DefaultSearchPath() SearchPath {
	var path SearchPath
	if dir := os.Getenv(claude.EnvPresetsDir); dir != "" {
		path = append(path, dir)
	}
	if claudeDir, err := claude.Dir(); err == nil {
		path = append(path, filepath.Join(claudeDir, "presets"))
	}
	return path
}

var extensions = []string{".preset.toml", ".preset.json"}

// Load searches for a preset by name across the search path. The first
// match wins; the file extension selects the parser. Built-in presets are
// consulted after the search path so a user file can shadow them.
func Load(name string, path SearchPath) (*Preset, error) {
	for _, dir := range path {
		for _, ext := range extensions {
			filePath := filepath.Join(dir, name+ext)
			data, err := os.ReadFile(filePath)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("reading preset %s: %w", filePath, err)
			}

			p, err := parse(data, filePath)
			if err != nil {
				return nil, err
			}
			p.Name = name
			return p, nil
		}
	}

	for _, p := range Builtin() {
		if p.Name == name {
			return p, nil
		}
	}

	return nil, fmt.Errorf("preset %q not found in search path: %s", name, strings.Join(path, ", "))
}

func parse(data []byte, filePath string) (*Preset, error) {
	p := &Preset{}
	if strings.HasSuffix(filePath, ".preset.toml") {
		if err := toml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parsing TOML preset %s: %w", filePath, err)
		}
		return p, nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing JSON preset %s: %w", filePath, err)
	}
	return p, nil
}

// Entry describes a preset found during a search path scan.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SourcePath  string `json:"source_path,omitempty"`
	Format      string `json:"format"` // "toml", "json", or "builtin"
}

// List scans the search path and returns discovered presets plus any
// built-ins not shadowed by a file. Earlier directories take priority: if
// the same preset name appears more than once, only the highest-priority
// entry is returned.
func List(path SearchPath) ([]Entry, error) {
	seen := make(map[string]bool)
	var entries []Entry

	for _, dir := range path {
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading preset directory %s: %w", dir, err)
		}

		for _, de := range dirEntries {
			if de.IsDir() {
				continue
			}
			fileName := de.Name()
			var name, format string
			switch {
			case strings.HasSuffix(fileName, ".preset.toml"):
				name = strings.TrimSuffix(fileName, ".preset.toml")
				format = "toml"
			case strings.HasSuffix(fileName, ".preset.json"):
				name = strings.TrimSuffix(fileName, ".preset.json")
				format = "json"
			default:
				continue
			}

			if seen[name] {
				continue
			}
			seen[name] = true

			filePath := filepath.Join(dir, fileName)
			data, err := os.ReadFile(filePath)
			if err != nil {
				return nil, fmt.Errorf("reading preset %s: %w", filePath, err)
			}
			p, err := parse(data, filePath)
			if err != nil {
				return nil, err
			}

			entries = append(entries, Entry{
				Name:        name,
				Description: p.Description,
				SourcePath:  filePath,
				Format:      format,
			})
		}
	}

	for _, p := range Builtin() {
		if seen[p.Name] {
			continue
		}
		entries = append(entries, Entry{
			Name:        p.Name,
			Description: p.Description,
			Format:      "builtin",
		})
	}

	return entries, nil
}

// Builtin returns the built-in starter presets. The API key is a
// placeholder the user replaces at create time.
func Builtin() []*Preset {
	return []*Preset{
		{
			Name:        "development",
			Description: "Development environment",
			Env: map[string]string{
				claude.EnvBaseURL:   "https://api.anthropic.com",
				claude.EnvModel:     "claude-3-5-sonnet-20241022",
				claude.EnvFastModel: "claude-3-haiku-20240307",
				claude.EnvAPIKey:    "sk-ant-api03-...",
			},
		},
	}
}
