/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/

// Package preset provides named mesh densities, built in or loaded from
// a YAML file, for recurring simulation runs.
package preset

import (
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	kerrors "github.com/elphtools/kmesh/pkg/errors"
	"github.com/elphtools/kmesh/pkg/mesh"
)

// Preset is a named mesh density for a recurring production run.
type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Counts      [3]int `json:"counts" yaml:"counts,flow"`
	Weighted    bool   `json:"weighted" yaml:"weighted"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Spec converts the preset into a mesh spec.
func (p Preset) Spec() mesh.Spec {
	return mesh.Spec{Counts: p.Counts, Weighted: p.Weighted}
}

// file is the on-disk preset file layout.
type file struct {
	Presets []Preset `yaml:"presets"`
}

// folder performs Unicode case folding for preset name comparison.
var folder = cases.Fold()

// Builtin returns the presets shipped with the toolkit. The densities
// mirror the sample input decks of the surrounding simulation workflow;
// two-dimensional materials sample the out-of-plane axis once.
func Builtin() []Preset {
	return []Preset{
		{
			Name:        "gamma",
			Counts:      [3]int{1, 1, 1},
			Weighted:    true,
			Description: "single zone-center point",
		},
		{
			Name:        "coarse",
			Counts:      [3]int{6, 6, 1},
			Weighted:    true,
			Description: "quick convergence checks",
		},
		{
			Name:        "production",
			Counts:      [3]int{12, 12, 1},
			Weighted:    true,
			Description: "standard self-consistent runs",
		},
		{
			Name:        "dense",
			Counts:      [3]int{24, 24, 1},
			Weighted:    true,
			Description: "phonon and coupling post-processing",
		},
		{
			Name:        "bz",
			Counts:      [3]int{48, 48, 1},
			Weighted:    false,
			Description: "full Brillouin-zone scans",
		},
	}
}

// Load reads additional presets from a YAML file. Each loaded preset
// must have a name and a valid mesh spec.
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeInvalidInput, "parse preset file", err)
	}

	for _, p := range f.Presets {
		if p.Name == "" {
			return nil, kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
				"preset is missing a name", map[string]any{"path": path})
		}
		if err := p.Spec().Validate(); err != nil {
			return nil, kerrors.WrapWithContext(kerrors.ErrCodeInvalidInput,
				"invalid preset", err, map[string]any{"preset": p.Name})
		}
	}
	return f.Presets, nil
}

// Merge overlays extra presets on the built-ins. A loaded preset whose
// folded name matches a built-in replaces it; order otherwise follows
// the built-in list with extras appended.
func Merge(extra []Preset) []Preset {
	merged := Builtin()

	index := make(map[string]int, len(merged))
	for i, p := range merged {
		index[folder.String(p.Name)] = i
	}

	for _, p := range extra {
		key := folder.String(p.Name)
		if i, ok := index[key]; ok {
			merged[i] = p
			continue
		}
		index[key] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// Resolve finds a preset by name among the built-ins overlaid with
// extra. Matching is case-insensitive (Unicode case folding).
func Resolve(name string, extra []Preset) (Preset, error) {
	key := folder.String(name)
	for _, p := range Merge(extra) {
		if folder.String(p.Name) == key {
			return p, nil
		}
	}
	return Preset{}, kerrors.NewWithContext(kerrors.ErrCodeNotFound,
		"unknown preset", map[string]any{"preset": name})
}
