package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Collection is the profile document: an ordered list of uniquely named
// profiles plus an optional default profile name.
type Collection struct {
	Profiles []*Profile
	Default  string // empty means no default
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Get returns the profile with the given name.
func (c *Collection) Get(name string) (*Profile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Add appends a profile, rejecting duplicate names.
func (c *Collection) Add(p *Profile) error {
	if _, exists := c.Get(p.Name); exists {
		return fmt.Errorf("profile %q: %w", p.Name, ErrExists)
	}
	c.Profiles = append(c.Profiles, p)
	return nil
}

// Remove deletes the named profile and reports whether it was present.
// If the removed profile was the default, the default moves to the first
// remaining profile, or clears when the collection becomes empty.
func (c *Collection) Remove(name string) bool {
	idx := -1
	for i, p := range c.Profiles {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	c.Profiles = append(c.Profiles[:idx], c.Profiles[idx+1:]...)

	if c.Default == name {
		if len(c.Profiles) > 0 {
			c.Default = c.Profiles[0].Name
		} else {
			c.Default = ""
		}
	}
	return true
}

// Names returns the profile names in collection order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// collectionDoc is the YAML document shape: the profiles list first, then
// default_profile (null when unset), matching the stored key order.
type collectionDoc struct {
	Profiles       []Doc   `yaml:"profiles"`
	DefaultProfile *string `yaml:"default_profile"`
}

// EncodeYAML serializes the collection. The output is deterministic:
// profiles in collection order, env keys alphabetical (yaml.Marshal sorts
// string map keys), default_profile last.
func (c *Collection) EncodeYAML() ([]byte, error) {
	doc := collectionDoc{
		Profiles: make([]Doc, 0, len(c.Profiles)),
	}
	for _, p := range c.Profiles {
		doc.Profiles = append(doc.Profiles, p.Doc())
	}
	if c.Default != "" {
		def := c.Default
		doc.DefaultProfile = &def
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encoding profile document: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a profile document. Empty or null content yields an
// empty collection; malformed YAML or an invalid profile entry returns an
// error.
func DecodeYAML(data []byte) (*Collection, error) {
	if len(data) == 0 {
		return NewCollection(), nil
	}

	var doc collectionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing profile document: %w", err)
	}

	c := NewCollection()
	for _, d := range doc.Profiles {
		p, err := FromDoc(d)
		if err != nil {
			return nil, err
		}
		c.Profiles = append(c.Profiles, p)
	}
	if doc.DefaultProfile != nil {
		c.Default = *doc.DefaultProfile
	}
	return c, nil
}
