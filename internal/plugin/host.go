// SPDX-License-Identifier: MIT
package plugin

import (
	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/themes"
	"github.com/thatcatcamp/forewind/internal/vars"
)

// Ref names a plugin registered with the host and its options
type Ref struct {
	Name    string         `mapstructure:"name" json:"name"`
	Options map[string]any `mapstructure:"options" json:"options,omitempty"`
}

// Host is the build pipeline the plugin extends
type Host interface {
	Colors() *palette.Palette
	Plugins() []Ref
	AddBase(selector string, m *vars.Map)
}

// MemoryHost is a Host that records base rules in memory
type MemoryHost struct {
	ColorSet   *palette.Palette
	PluginList []Ref
	Base       []themes.Block
}

func (h *MemoryHost) Colors() *palette.Palette {
	if h.ColorSet == nil {
		return palette.New()
	}
	return h.ColorSet
}

func (h *MemoryHost) Plugins() []Ref {
	return h.PluginList
}

// AddBase appends a rule, merging into an existing one with the same selector
func (h *MemoryHost) AddBase(selector string, m *vars.Map) {
	for i := range h.Base {
		if h.Base[i].Selector == selector {
			h.Base[i].Vars = h.Base[i].Vars.Merge(m)
			return
		}
	}
	h.Base = append(h.Base, themes.Block{Selector: selector, Vars: m})
}

// FormsRef is the forms plugin configured the way forewind requires
func FormsRef() Ref {
	return Ref{Name: "@tailwindcss/forms", Options: map[string]any{"strategy": "class"}}
}
