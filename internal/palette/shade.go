// SPDX-License-Identifier: MIT
package palette

import "fmt"

// Shade is a key within a tonal scale: one of the numeric steps or DEFAULT
type Shade string

// Default aliases the 500 shade unless a map sets it explicitly
const Default Shade = "DEFAULT"

// Shades lists the numeric steps of a scale, lightest first
var Shades = []Shade{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// ParseShade validates a shade key. "default" is accepted in any case.
func ParseShade(s string) (Shade, error) {
	if s == string(Default) || s == "default" || s == "Default" {
		return Default, nil
	}
	for _, shade := range Shades {
		if string(shade) == s {
			return shade, nil
		}
	}
	return "", fmt.Errorf("%w: unknown shade %q", ErrUnsupportedShape, s)
}

// ShadeMap is an insertion-ordered map of shade to color value
type ShadeMap struct {
	keys   []Shade
	values map[Shade]string
}

// NewShadeMap creates an empty shade map
func NewShadeMap() *ShadeMap {
	return &ShadeMap{values: make(map[Shade]string)}
}

// Set stores a value, appending the shade if it is new
func (m *ShadeMap) Set(shade Shade, value string) {
	if m.values == nil {
		m.values = make(map[Shade]string)
	}
	if _, exists := m.values[shade]; !exists {
		m.keys = append(m.keys, shade)
	}
	m.values[shade] = value
}

// Get returns the value stored for a shade
func (m *ShadeMap) Get(shade Shade) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[shade]
	return v, ok
}

// Keys returns shades in insertion order
func (m *ShadeMap) Keys() []Shade {
	if m == nil {
		return nil
	}
	keys := make([]Shade, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of shades
func (m *ShadeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Clone returns an independent copy
func (m *ShadeMap) Clone() *ShadeMap {
	clone := NewShadeMap()
	for _, k := range m.Keys() {
		clone.Set(k, m.values[k])
	}
	return clone
}

// WithDefault returns a copy whose DEFAULT is the existing DEFAULT or the 500
// value. The receiver is never modified.
func (m *ShadeMap) WithDefault() (*ShadeMap, error) {
	clone := m.Clone()
	if v, ok := clone.Get(Default); ok && v != "" {
		return clone, nil
	}
	mid, ok := clone.Get("500")
	if !ok || mid == "" {
		return nil, fmt.Errorf("%w: shade map has neither DEFAULT nor 500", ErrUnsupportedShape)
	}
	clone.Set(Default, mid)
	return clone, nil
}

func (*ShadeMap) entry() {}
