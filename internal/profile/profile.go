// Package profile implements the named environment profile model: the
// Profile entity, the Collection document that holds profiles, and the
// syntactic validators for names and env vars.
package profile

import (
	"fmt"
	"time"
)

// Profile is a named set of environment variables for the assistant,
// carrying the four managed keys plus any extra vars the user added.
type Profile struct {
	Name        string
	Env         map[string]string
	Description string // empty means no description
	Created     time.Time
	Modified    time.Time
}

// New constructs a Profile, enforcing the construction invariant: a
// non-empty name and a fully valid env block. Errors wrap ErrInvalid.
func New(name string, env map[string]string, description string) (*Profile, error) {
	if err := checkConstruction(name, env); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Profile{
		Name:        name,
		Env:         cloneEnv(env),
		Description: description,
		Created:     now,
		Modified:    now,
	}, nil
}

func checkConstruction(name string, env map[string]string) error {
	if name == "" {
		return fmt.Errorf("%w: %w", ErrInvalid, validationErrorf("profile name is required"))
	}
	if err := ValidateEnv(env, false); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func cloneEnv(env map[string]string) map[string]string {
	out := make(map[string]string, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

// UpdateEnv merges vars into the profile's env and bumps Modified.
func (p *Profile) UpdateEnv(vars map[string]string) {
	if p.Env == nil {
		p.Env = make(map[string]string, len(vars))
	}
	for k, v := range vars {
		p.Env[k] = v
	}
	p.touch()
}

// SetDescription overwrites the description and bumps Modified.
func (p *Profile) SetDescription(description string) {
	p.Description = description
	p.touch()
}

// touch advances Modified. If the clock has not moved past the previous
// value, Modified is forced one nanosecond forward so it strictly
// increases across updates.
func (p *Profile) touch() {
	now := time.Now()
	if !now.After(p.Modified) {
		now = p.Modified.Add(time.Nanosecond)
	}
	p.Modified = now
}

// Validate runs the full validation set: name rules, full env validation,
// and the description length limit. Unlike the construction check it also
// enforces the name pattern, so a profile loaded from an older document can
// exist in memory yet fail full validation.
func (p *Profile) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if err := ValidateEnv(p.Env, false); err != nil {
		return err
	}
	return ValidateDescription(p.Description)
}

// Doc is the serialized form of a Profile, used both in the YAML profile
// document and in json/yaml output modes. A missing description is null.
type Doc struct {
	Name        string            `yaml:"name" json:"name"`
	Env         map[string]string `yaml:"env" json:"env"`
	Description *string           `yaml:"description" json:"description"`
	Created     string            `yaml:"created" json:"created"`
	Modified    string            `yaml:"modified" json:"modified"`
}

// Doc returns the serialized form of the profile. Timestamps are RFC 3339
// with nanosecond precision so a round-trip reconstructs them exactly.
func (p *Profile) Doc() Doc {
	d := Doc{
		Name:     p.Name,
		Env:      p.Env,
		Created:  p.Created.Format(time.RFC3339Nano),
		Modified: p.Modified.Format(time.RFC3339Nano),
	}
	if p.Description != "" {
		desc := p.Description
		d.Description = &desc
	}
	return d
}

// FromDoc reconstructs a Profile from its serialized form, enforcing the
// same construction invariant as New. Absent timestamps default to now.
func FromDoc(d Doc) (*Profile, error) {
	if err := checkConstruction(d.Name, d.Env); err != nil {
		return nil, err
	}

	p := &Profile{
		Name: d.Name,
		Env:  cloneEnv(d.Env),
	}
	if d.Description != nil {
		p.Description = *d.Description
	}

	now := time.Now()
	p.Created = now
	p.Modified = now
	if d.Created != "" {
		t, err := time.Parse(time.RFC3339Nano, d.Created)
		if err != nil {
			return nil, fmt.Errorf("profile %q: parsing created timestamp: %w", d.Name, err)
		}
		p.Created = t
	}
	if d.Modified != "" {
		t, err := time.Parse(time.RFC3339Nano, d.Modified)
		if err != nil {
			return nil, fmt.Errorf("profile %q: parsing modified timestamp: %w", d.Name, err)
		}
		p.Modified = t
	}

	return p, nil
}
