// Package render formats profiles for terminal and machine output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/ffreemt/claude-code-env-manager/internal/claude"
	"github.com/ffreemt/claude-code-env-manager/internal/profile"
)

// Mode selects the output format for profile listings and details.
type Mode string

const (
	ModeTable Mode = "table"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
)

// ParseMode validates a format flag value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTable, ModeJSON, ModeYAML:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid format %q (must be table, json, or yaml)", s)
}

// Column display limits for table output.
const (
	maxURLWidth   = 30
	maxModelWidth = 20
	maxDescWidth  = 30
)

// Profiles writes the profile list in the given mode. Table mode marks
// the default profile and masks API keys; json and yaml emit the document
// forms unmasked.
func Profiles(w io.Writer, profiles []*profile.Profile, defaultName string, mode Mode, verbose bool) error {
	switch mode {
	case ModeJSON:
		return encodeJSON(w, docList(profiles))
	case ModeYAML:
		return encodeYAML(w, docList(profiles))
	}
	ProfileTable(w, profiles, defaultName, verbose)
	return nil
}

// ProfileTable writes profiles as an aligned text table. Verbose adds the
// fast model and the masked API key columns.
func ProfileTable(w io.Writer, profiles []*profile.Profile, defaultName string, verbose bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if verbose {
		fmt.Fprintln(tw, "NAME\tBASE URL\tMODEL\tFAST MODEL\tAPI KEY\tDESCRIPTION\tDEFAULT")
	} else {
		fmt.Fprintln(tw, "NAME\tBASE URL\tMODEL\tDESCRIPTION\tDEFAULT")
	}

	for _, p := range profiles {
		marker := ""
		if p.Name == defaultName {
			marker = "✓"
		}
		baseURL := truncate(p.Env[claude.EnvBaseURL], maxURLWidth)
		model := truncate(p.Env[claude.EnvModel], maxModelWidth)
		desc := truncate(p.Description, maxDescWidth)

		if verbose {
			fast := truncate(p.Env[claude.EnvFastModel], maxModelWidth)
			key := MaskAPIKey(p.Env[claude.EnvAPIKey])
			if key == "" {
				key = "(not set)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", p.Name, baseURL, model, fast, key, desc, marker)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Name, baseURL, model, desc, marker)
		}
	}
	tw.Flush()
}

// ProfileDetail writes a single profile. Table mode lists properties line
// by line with the API key masked; json and yaml emit the document form.
func ProfileDetail(w io.Writer, p *profile.Profile, mode Mode) error {
	switch mode {
	case ModeJSON:
		return encodeJSON(w, p.Doc())
	case ModeYAML:
		return encodeYAML(w, p.Doc())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	desc := p.Description
	if desc == "" {
		desc = "(none)"
	}
	fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Description:\t%s\n", desc)
	fmt.Fprintf(tw, "Created:\t%s\n", p.Created.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(tw, "Modified:\t%s\n", p.Modified.Format("2006-01-02 15:04:05"))

	required := claude.RequiredEnvKeys()
	for _, k := range required {
		v := p.Env[k]
		if k == claude.EnvAPIKey {
			v = MaskAPIKey(v)
		}
		fmt.Fprintf(tw, "%s:\t%s\n", k, v)
	}
	for _, k := range extraKeys(p.Env, required) {
		fmt.Fprintf(tw, "%s:\t%s\n", k, p.Env[k])
	}
	return tw.Flush()
}

// extraKeys returns the env keys outside the required set, sorted.
func extraKeys(env map[string]string, required []string) []string {
	isRequired := make(map[string]bool, len(required))
	for _, k := range required {
		isRequired[k] = true
	}
	extras := make([]string, 0, len(env))
	for k := range env {
		if !isRequired[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	return extras
}

// MaskAPIKey reduces an API key to its identifying prefix. Empty keys come
// back empty so callers can pick their own placeholder.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > 10 {
		key = key[:10]
	}
	return key + "..."
}

// truncate shortens a value to max characters for single-line display,
// appending "..." if truncation occurs. Newlines become spaces.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

func docList(profiles []*profile.Profile) []profile.Doc {
	docs := make([]profile.Doc, 0, len(profiles))
	for _, p := range profiles {
		docs = append(docs, p.Doc())
	}
	return docs
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
