package config

import (
	"fmt"
	"sort"
)

// Preset is a named pattern and density.
type Preset struct {
	Pattern string
	Density int
}

var Presets = map[string]Preset{
	"calm":       {Pattern: "spiral", Density: 30},
	"storm":      {Pattern: "noise", Density: 100},
	"lattice":    {Pattern: "checker", Density: 50},
	"ripples":    {Pattern: "arcs", Density: 10},
	"wide-rings": {Pattern: "arcs", Density: 80},
	"pinwheel":   {Pattern: "star", Density: 100},
	"flare":      {Pattern: "sunburst", Density: 70},
	"snow":       {Pattern: "mirror", Density: 20},
}

// GetPreset returns the named preset.
func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return p, nil
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overwrites the pattern and density of c.
func (p Preset) Apply(c *Config) {
	c.Pattern = p.Pattern
	c.Density = p.Density
}
