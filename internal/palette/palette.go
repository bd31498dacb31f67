// SPDX-License-Identifier: MIT

// Package palette derives tonal color scales from base colors.
//
// A Palette maps color names to an Entry, which is either a Literal color
// string or an already expanded *ShadeMap. Expand turns literals into full
// 50-950 scales and guarantees every scale carries a DEFAULT shade.
package palette

import (
	"errors"

	"github.com/thatcatcamp/forewind/internal/color"
)

var (
	// ErrInvalidColor is returned for values that cannot be parsed as colors
	ErrInvalidColor = color.ErrInvalidColor

	// ErrUnsupportedShape is returned for entries that are neither a literal
	// nor a flat shade map
	ErrUnsupportedShape = errors.New("unsupported palette shape")
)

// Entry is a palette value: a Literal or a *ShadeMap
type Entry interface {
	entry()
}

// Literal is a single color value (or keyword) stored as-is
type Literal string

func (Literal) entry() {}

// Palette is an insertion-ordered map of color name to Entry
type Palette struct {
	names   []string
	entries map[string]Entry
}

// New creates an empty palette
func New() *Palette {
	return &Palette{entries: make(map[string]Entry)}
}

// Set stores an entry, appending the name if it is new
func (p *Palette) Set(name string, e Entry) {
	if p.entries == nil {
		p.entries = make(map[string]Entry)
	}
	if _, exists := p.entries[name]; !exists {
		p.names = append(p.names, name)
	}
	p.entries[name] = e
}

// Get returns the entry stored under name
func (p *Palette) Get(name string) (Entry, bool) {
	if p == nil {
		return nil, false
	}
	e, ok := p.entries[name]
	return e, ok
}

// Delete removes a name
func (p *Palette) Delete(name string) {
	if _, ok := p.entries[name]; !ok {
		return
	}
	delete(p.entries, name)
	for i, n := range p.names {
		if n == name {
			p.names = append(p.names[:i:i], p.names[i+1:]...)
			break
		}
	}
}

// Names returns color names in insertion order
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Len returns the number of colors
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Clone returns a copy with independent shade maps
func (p *Palette) Clone() *Palette {
	clone := New()
	for _, name := range p.Names() {
		switch e := p.entries[name].(type) {
		case *ShadeMap:
			clone.Set(name, e.Clone())
		default:
			clone.Set(name, e)
		}
	}
	return clone
}

// Merge returns a new palette holding p's entries overlaid with other's.
// Names from p keep their position; new names are appended.
func (p *Palette) Merge(other *Palette) *Palette {
	merged := p.Clone()
	for _, name := range other.Names() {
		e, _ := other.Get(name)
		if m, ok := e.(*ShadeMap); ok {
			e = m.Clone()
		}
		merged.Set(name, e)
	}
	return merged
}

// FromStrings builds a palette of literals, keeping the order of names
func FromStrings(names []string, values map[string]string) *Palette {
	p := New()
	for _, name := range names {
		if v, ok := values[name]; ok {
			p.Set(name, Literal(v))
		}
	}
	return p
}
