package sheet

import (
	"sort"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// DefaultPreset is the preset used when none is named.
const DefaultPreset = "standard"

// PresetInfo describes a built-in layout.
type PresetInfo struct {
	Name        string
	Description string
	build       func() Config
}

var presets = map[string]PresetInfo{
	"standard": {
		Name:        "standard",
		Description: "3×2 centered block, dotted grey guidelines, portrait",
		build:       Default,
	},
	"classic": {
		Name:        "classic",
		Description: "2×3 evenly spaced, solid light-grey guidelines, landscape",
		build: func() Config {
			c := Default()
			c.Grid.Rows = 2
			c.Grid.Cols = 3
			c.Grid.Spacing = SpacingEven
			c.Grid.Orientation = OrientationLandscape
			c.Guideline.Style = GuideSolid
			c.Guideline.Color = "#c8c8c8"
			return c
		},
	},
}

// Preset returns the configuration of a built-in layout.
// An empty name selects [DefaultPreset].
func Preset(name string) (Config, error) {
	if name == "" {
		name = DefaultPreset
	}
	p, ok := presets[name]
	if !ok {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown preset %q (available: %v)", name, PresetNames())
	}
	return p.build(), nil
}

// Presets returns all built-in presets sorted by name.
func Presets() []PresetInfo {
	out := make([]PresetInfo, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresetNames returns the names of all built-in presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
