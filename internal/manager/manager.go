// Package manager orchestrates the two documents this tool owns: the YAML
// profile document and the assistant's settings.json. It loads and caches
// both, performs profile CRUD, and runs the apply-merge that points the
// assistant at a profile.
package manager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ffreemt/claude-code-env-manager/internal/atomicfile"
	"github.com/ffreemt/claude-code-env-manager/internal/claude"
	"github.com/ffreemt/claude-code-env-manager/internal/profile"
)

// Origin reports how LoadOrInitConfig obtained the collection.
type Origin int

const (
	// OriginLoaded means the document existed (possibly empty) on disk.
	OriginLoaded Origin = iota
	// OriginInitialized means the document was missing and a fresh empty
	// one was persisted.
	OriginInitialized
)

// Manager coordinates the profile document and the settings document at a
// fixed pair of paths. It is single-threaded: the two documents have no
// locking protocol, and at most one manager is assumed to operate on a
// given pair of paths at a time.
type Manager struct {
	configPath   string
	settingsPath string

	cfg      *profile.Collection
	settings *claude.Settings
}

// New builds a Manager. Empty path arguments resolve through the
// CLAUDE_ENV_MANAGER_* env vars and then the ~/.claude defaults.
func New(configPath, settingsPath string) (*Manager, error) {
	cp, err := claude.ResolveProfilesPath(configPath)
	if err != nil {
		return nil, err
	}
	sp, err := claude.ResolveSettingsPath(settingsPath)
	if err != nil {
		return nil, err
	}
	return &Manager{configPath: cp, settingsPath: sp}, nil
}

// ConfigPath returns the profile document path.
func (m *Manager) ConfigPath() string { return m.configPath }

// SettingsPath returns the settings document path.
func (m *Manager) SettingsPath() string { return m.settingsPath }

// LoadOrInitConfig returns the profile collection, reading it on first
// access and caching it. A missing document is not an error: a fresh empty
// collection is persisted immediately and the origin reports Initialized
// so callers can tell the write happened. An existing but empty document
// yields an empty collection without a write.
func (m *Manager) LoadOrInitConfig() (*profile.Collection, Origin, error) {
	if m.cfg != nil {
		return m.cfg, OriginLoaded, nil
	}

	data, ok, err := atomicfile.Read(m.configPath)
	if err != nil {
		return nil, OriginLoaded, &ConfigError{Path: m.configPath, Err: err}
	}
	if !ok {
		cfg := profile.NewCollection()
		if err := m.SaveConfig(cfg); err != nil {
			return nil, OriginInitialized, err
		}
		return cfg, OriginInitialized, nil
	}

	cfg, err := profile.DecodeYAML(data)
	if err != nil {
		return nil, OriginLoaded, &ConfigError{Path: m.configPath, Err: err}
	}
	m.cfg = cfg
	return cfg, OriginLoaded, nil
}

// SaveConfig persists the collection as a whole document and updates the
// cache.
func (m *Manager) SaveConfig(cfg *profile.Collection) error {
	data, err := cfg.EncodeYAML()
	if err != nil {
		return &ConfigError{Path: m.configPath, Err: err}
	}
	if err := atomicfile.Write(m.configPath, data); err != nil {
		return &ConfigError{Path: m.configPath, Err: err}
	}
	m.cfg = cfg
	return nil
}

// LoadSettings returns the settings document, reading it on first access
// and caching it. Settings are externally owned, so unlike the profile
// document a missing or empty file is an error, never auto-created.
func (m *Manager) LoadSettings() (*claude.Settings, error) {
	if m.settings != nil {
		return m.settings, nil
	}

	data, ok, err := atomicfile.Read(m.settingsPath)
	if err != nil {
		return nil, &SettingsError{Path: m.settingsPath, Err: err}
	}
	if !ok {
		return nil, &SettingsError{Path: m.settingsPath, Err: errors.New("file not found")}
	}
	if len(data) == 0 {
		return nil, &SettingsError{Path: m.settingsPath, Err: errors.New("file is empty")}
	}

	s, err := claude.ParseSettings(data)
	if err != nil {
		return nil, &SettingsError{Path: m.settingsPath, Err: err}
	}
	m.settings = s
	return s, nil
}

// SaveSettings backs up the existing settings file, writes the new
// document, and updates the cache.
func (m *Manager) SaveSettings(s *claude.Settings) error {
	if _, err := atomicfile.Backup(m.settingsPath); err != nil {
		return &SettingsError{Path: m.settingsPath, Err: err}
	}
	data, err := s.EncodeJSON()
	if err != nil {
		return &SettingsError{Path: m.settingsPath, Err: err}
	}
	if err := atomicfile.Write(m.settingsPath, data); err != nil {
		return &SettingsError{Path: m.settingsPath, Err: err}
	}
	m.settings = s
	return nil
}

// ListProfiles returns the profiles in collection order.
func (m *Manager) ListProfiles() ([]*profile.Profile, error) {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Profiles, nil
}

// GetProfile returns the named profile.
func (m *Manager) GetProfile(name string) (*profile.Profile, error) {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return nil, err
	}
	p, ok := cfg.Get(name)
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}
	return p, nil
}

// CreateProfile validates the name and the full env block, then adds and
// persists a new profile. Validation runs before any document access, so a
// rejected call never touches disk. The first profile in a collection
// becomes the default.
func (m *Manager) CreateProfile(name string, env map[string]string, description string) (*profile.Profile, error) {
	if err := profile.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", profile.ErrInvalid, err)
	}
	if err := profile.ValidateEnv(env, false); err != nil {
		return nil, fmt.Errorf("%w: %w", profile.ErrInvalid, err)
	}

	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return nil, err
	}
	if _, exists := cfg.Get(name); exists {
		return nil, fmt.Errorf("profile %q: %w", name, profile.ErrExists)
	}

	p, err := profile.New(name, env, description)
	if err != nil {
		return nil, err
	}
	if err := cfg.Add(p); err != nil {
		return nil, err
	}
	if len(cfg.Profiles) == 1 {
		cfg.Default = p.Name
	}

	if err := m.SaveConfig(cfg); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProfile applies a partial update: a non-empty env is validated in
// partial mode and merged; a non-nil description (including the empty
// string) overwrites. A call with nothing to change still re-persists the
// document and leaves the profile untouched.
func (m *Manager) UpdateProfile(name string, env map[string]string, description *string) (*profile.Profile, error) {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return nil, err
	}
	p, ok := cfg.Get(name)
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}

	if len(env) > 0 {
		if err := profile.ValidateEnv(env, true); err != nil {
			return nil, fmt.Errorf("%w: %w", profile.ErrInvalid, err)
		}
		p.UpdateEnv(env)
	}
	if description != nil {
		p.SetDescription(*description)
	}

	if err := m.SaveConfig(cfg); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProfile removes the named profile and persists the collection.
// Removing the default profile moves the default to the first remaining
// profile, or clears it.
func (m *Manager) DeleteProfile(name string) (bool, error) {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return false, err
	}
	if _, ok := cfg.Get(name); !ok {
		return false, fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}

	removed := cfg.Remove(name)
	if err := m.SaveConfig(cfg); err != nil {
		return false, err
	}
	return removed, nil
}

// ApplyProfile points the assistant at the named profile: the settings env
// becomes the profile's env plus every existing settings var outside the
// managed namespace, a request timeout is ensured, settings are saved
// (with backup), and the profile becomes the collection default.
//
// The two writes are sequential, not transactional: if recording the
// default fails, the settings file has already been updated.
func (m *Manager) ApplyProfile(name string) error {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return err
	}
	p, ok := cfg.Get(name)
	if !ok {
		return fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}

	settings, err := m.LoadSettings()
	if err != nil {
		return m.applyError(name, err)
	}

	newEnv := make(map[string]string, len(p.Env)+len(settings.Env))
	for k, v := range p.Env {
		newEnv[k] = v
	}
	for k, v := range settings.Env {
		if !strings.HasPrefix(k, claude.EnvPrefix) {
			newEnv[k] = v
		}
	}
	if _, ok := newEnv[claude.EnvTimeout]; !ok {
		newEnv[claude.EnvTimeout] = claude.DefaultTimeout
	}

	settings.Env = newEnv
	if err := m.SaveSettings(settings); err != nil {
		return m.applyError(name, err)
	}

	cfg.Default = name
	if err := m.SaveConfig(cfg); err != nil {
		return m.applyError(name, err)
	}
	return nil
}

// applyError wraps any failure in the apply sequence as a settings error
// naming the profile. An inner settings error is unwrapped first so the
// path is not reported twice.
func (m *Manager) applyError(name string, err error) error {
	var se *SettingsError
	if errors.As(err, &se) {
		err = se.Err
	}
	return &SettingsError{Path: m.settingsPath, Err: fmt.Errorf("applying profile %q: %w", name, err)}
}

// CurrentProfile reports which profile the settings currently match: the
// first profile whose model equals the settings' model, or empty when none
// does. This is an advisory query; callers decide whether a load error
// matters or should be treated as "no active profile".
func (m *Manager) CurrentProfile() (string, error) {
	settings, err := m.LoadSettings()
	if err != nil {
		return "", err
	}
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return "", err
	}

	current := settings.Env[claude.EnvModel]
	for _, p := range cfg.Profiles {
		if p.Env[claude.EnvModel] == current {
			return p.Name, nil
		}
	}
	return "", nil
}

// CurrentSettings returns the settings document. Advisory like
// CurrentProfile: callers typically fall back to an empty view on error.
func (m *Manager) CurrentSettings() (*claude.Settings, error) {
	return m.LoadSettings()
}

// DefaultProfile returns the default profile name, or empty when unset.
func (m *Manager) DefaultProfile() (string, error) {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return "", err
	}
	return cfg.Default, nil
}

// SetDefaultProfile records the named profile as default and persists.
func (m *Manager) SetDefaultProfile(name string) error {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return err
	}
	if _, ok := cfg.Get(name); !ok {
		return fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}
	cfg.Default = name
	return m.SaveConfig(cfg)
}

// ValidateProfile reports whether the named profile exists and currently
// passes full validation. A missing profile is false, not an error;
// a config load failure propagates.
func (m *Manager) ValidateProfile(name string) (bool, error) {
	cfg, _, err := m.LoadOrInitConfig()
	if err != nil {
		return false, err
	}
	p, ok := cfg.Get(name)
	if !ok {
		return false, nil
	}
	return p.Validate() == nil, nil
}

// ClearCache drops both caches, forcing the next access to re-read from
// disk.
func (m *Manager) ClearCache() {
	m.cfg = nil
	m.settings = nil
}
