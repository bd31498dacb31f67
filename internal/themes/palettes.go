// SPDX-License-Identifier: MIT
package themes

import "github.com/thatcatcamp/forewind/internal/palette"

// Preset is a named pair of brand colors laid over the built-in base palette
type Preset struct {
	Name      string // "default", "slate", "indigo", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

var presets = map[string]*Preset{
	"default": {
		Name:      "default",
		Primary:   "#4B6279",
		Secondary: "#F05454",
	},
	"slate": {
		Name:      "slate",
		Primary:   "#64748b",
		Secondary: "#0f172a",
	},
	"indigo": {
		Name:      "indigo",
		Primary:   "#4f46e5",
		Secondary: "#f97316",
	},
	"rose": {
		Name:      "rose",
		Primary:   "#e11d48",
		Secondary: "#64748b",
	},
	"emerald": {
		Name:      "emerald",
		Primary:   "#059669",
		Secondary: "#f59e0b",
	},
	"navy": {
		Name:      "navy",
		Primary:   "#000080",
		Secondary: "#fbbf24",
	},
	"purple": {
		Name:      "purple",
		Primary:   "#a855f7",
		Secondary: "#ec4899",
	},
	"teal": {
		Name:      "teal",
		Primary:   "#14b8a6",
		Secondary: "#f87171",
	},
	"amber": {
		Name:      "amber",
		Primary:   "#f59e0b",
		Secondary: "#6366f1",
	},
	"neutral": {
		Name:      "neutral",
		Primary:   "#6b7280",
		Secondary: "#4b5563",
	},
}

var presetNames = []string{
	"default", "slate", "indigo", "rose", "emerald", "navy",
	"purple", "teal", "amber", "neutral",
}

// GetPreset returns a preset by name, or nil
func GetPreset(name string) *Preset {
	return presets[name]
}

// ListPresets returns all available presets in order
func ListPresets() []*Preset {
	var list []*Preset
	for _, name := range presetNames {
		if p := GetPreset(name); p != nil {
			list = append(list, p)
		}
	}
	return list
}

// Palette returns the base palette for the preset: the built-in base colors
// with primary and secondary replaced
func (p *Preset) Palette() *palette.Palette {
	base := palette.DefaultBase()
	base.Set("primary", palette.Literal(p.Primary))
	base.Set("secondary", palette.Literal(p.Secondary))
	return base
}
