package claude

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Settings models the settings.json document: the env block, permissions,
// the status line, and the schema reference. Field order here is the
// serialization order.
type Settings struct {
	Env         map[string]string `json:"env"`
	Permissions map[string]any    `json:"permissions"`
	StatusLine  map[string]any    `json:"statusLine"`
	Schema      string            `json:"$schema"`
}

// NewSettings builds a Settings value, defaulting the schema reference and
// enforcing the structural invariants: a non-empty env block, permissions
// containing both an allow and a deny list, and a status line declaring its
// type. Returns the violated invariant as an error.
func NewSettings(env map[string]string, permissions map[string]any, statusLine map[string]any, schema string) (*Settings, error) {
	if schema == "" {
		schema = SchemaURL
	}
	s := &Settings{
		Env:         env,
		Permissions: permissions,
		StatusLine:  statusLine,
		Schema:      schema,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseSettings decodes and validates a settings document. Unknown top-level
// keys are ignored; missing structural fields fail validation.
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings JSON: %w", err)
	}
	return NewSettings(s.Env, s.Permissions, s.StatusLine, s.Schema)
}

// Validate checks the structural invariants of the settings document.
func (s *Settings) Validate() error {
	if len(s.Env) == 0 {
		return errors.New("settings env block is missing or empty")
	}
	if s.Permissions == nil {
		return errors.New("settings permissions block is missing")
	}
	for _, key := range []string{"allow", "deny"} {
		v, ok := s.Permissions[key]
		if !ok {
			return fmt.Errorf("settings permissions missing %q list", key)
		}
		if !isList(v) {
			return fmt.Errorf("settings permissions %q must be a list", key)
		}
	}
	if s.StatusLine == nil {
		return errors.New("settings statusLine block is missing")
	}
	if _, ok := s.StatusLine["type"]; !ok {
		return errors.New("settings statusLine missing type")
	}
	return nil
}

// isList accepts both decoded JSON lists and lists constructed in Go.
func isList(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	}
	return false
}

// EncodeJSON serializes the settings document with the 2-space indent
// convention settings.json uses, ending with a newline.
func (s *Settings) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return append(data, '\n'), nil
}

// DefaultEnv returns the starter env block for a fresh settings document.
// The API key is left empty for the user to fill in.
func DefaultEnv() map[string]string {
	return map[string]string{
		EnvBaseURL:   "https://api.anthropic.com",
		EnvModel:     "claude-3-5-sonnet-20241022",
		EnvFastModel: "claude-3-haiku-20240307",
		EnvAPIKey:    "",
	}
}

// DefaultPermissions returns an empty allow/deny permission structure.
func DefaultPermissions() map[string]any {
	return map[string]any{
		"allow": []string{},
		"deny":  []string{},
	}
}

// DefaultStatusLine returns the ccline status line configuration pointing
// at the conventional install location under ~/.claude.
func DefaultStatusLine() map[string]any {
	command := "ccline"
	if home, err := os.UserHomeDir(); err == nil {
		command = filepath.Join(home, ".claude", "ccline", "ccline")
	}
	return map[string]any{
		"type":    "command",
		"command": command,
		"padding": 0,
	}
}

// DefaultSettings returns a complete starter settings document.
func DefaultSettings() *Settings {
	return &Settings{
		Env:         DefaultEnv(),
		Permissions: DefaultPermissions(),
		StatusLine:  DefaultStatusLine(),
		Schema:      SchemaURL,
	}
}
