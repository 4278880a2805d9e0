// Package analysis defines the page snapshot data model consumed by the
// evaluation pipeline. An analysis document describes the interactive surface
// of a page (its URL, title, and element descriptors); it is produced by an
// external inspection step and treated as an immutable input here.
package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// UIAnalysis is a snapshot of a page's interactive surface.
type UIAnalysis struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Elements []Element `json:"elements"`
}

// Element describes one interactive element on the page. Only Tag is
// guaranteed to be set; the remaining attributes depend on the element type.
type Element struct {
	Tag         string `json:"tag"`
	ID          string `json:"id,omitempty"`
	Text        string `json:"text,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Href        string `json:"href,omitempty"`
	InputType   string `json:"inputType,omitempty"`
}

// Format renders the analysis as indented structured text suitable for
// embedding in a prompt. The output is deterministic for a given analysis.
func (a *UIAnalysis) Format() string {
	// The field set is plain strings and slices, so marshalling cannot fail.
	out, _ := json.MarshalIndent(a, "", "  ")
	return string(out)
}

// Read parses an analysis document from YAML or JSON bytes, validating it
// against the document schema first so a malformed file fails with a clear
// error instead of producing a garbage prompt.
func Read(data []byte) (*UIAnalysis, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	a := &UIAnalysis{}
	if err := yaml.Unmarshal(data, a); err != nil {
		return nil, err
	}

	return a, nil
}

// FromFile loads an analysis document from the given path.
func FromFile(path string) (*UIAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s' for analysis: %w", path, err)
	}

	a, err := Read(data)
	if err != nil {
		absPath, absErr := filepath.Abs(path)
		if absErr != nil {
			absPath = path
		}
		return nil, fmt.Errorf("invalid analysis document '%s': %w", absPath, err)
	}

	return a, nil
}
