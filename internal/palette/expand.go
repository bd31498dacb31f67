// SPDX-License-Identifier: MIT
package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thatcatcamp/forewind/internal/color"
)

// Format selects how generated shades are written
type Format int

const (
	// FormatHex writes "#rrggbb"
	FormatHex Format = iota
	// FormatChannels writes "r g b"
	FormatChannels
)

// ParseFormat maps "hex" and "channels" (or "rgb") to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hex":
		return FormatHex, nil
	case "channels", "rgb":
		return FormatChannels, nil
	default:
		return FormatHex, fmt.Errorf("unknown palette format: %s", s)
	}
}

func (f Format) String() string {
	if f == FormatChannels {
		return "channels"
	}
	return "hex"
}

// Excluded keywords are not colors to be scaled and pass through untouched
var Excluded = []string{"white", "black", "transparent", "inherit", "current"}

// IsExcluded reports whether s is one of the Excluded keywords
func IsExcluded(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Excluded {
		if s == k {
			return true
		}
	}
	return false
}

// step is one row of the derivation table: a shade and the percentage of the
// base color mixed into its anchor (white for light shades, the darkened base
// for dark ones)
type step struct {
	shade  Shade
	amount float64
}

var lightSteps = []step{
	{"50", 12},
	{"100", 30},
	{"200", 50},
	{"300", 70},
	{"400", 85},
	{"500", 100},
}

var darkSteps = []step{
	{"600", 87},
	{"700", 70},
	{"800", 54},
	{"900", 25},
	{"950", 10},
}

var varPattern = regexp.MustCompile(`var\(\s*([^)\s]+)\s*\)`)

// Build derives a full scale from one color value
func Build(value string, format Format) (*ShadeMap, error) {
	if m := varPattern.FindStringSubmatch(value); m != nil {
		return buildFromVar(value, m[1]), nil
	}

	base, err := color.Parse(value)
	if err != nil {
		return nil, err
	}
	dark := color.Multiply(base, base)

	scale := NewShadeMap()
	for _, s := range lightSteps {
		scale.Set(s.shade, formatColor(color.Mix(color.White, base, s.amount), format))
	}
	for _, s := range darkSteps {
		scale.Set(s.shade, formatColor(color.Mix(dark, base, s.amount), format))
	}
	mid, _ := scale.Get("500")
	scale.Set(Default, mid)
	return scale, nil
}

// buildFromVar maps a var(--x) reference onto var(--x-50) ... var(--x-950)
func buildFromVar(raw, name string) *ShadeMap {
	scale := NewShadeMap()
	for _, shade := range Shades {
		scale.Set(shade, fmt.Sprintf("var(%s-%s)", name, shade))
	}
	scale.Set(Default, raw)
	return scale
}

func formatColor(c color.RGB, format Format) string {
	if format == FormatChannels {
		return c.Channels()
	}
	return c.Hex()
}

// Expand resolves one entry. Literals become full scales unless they are
// excluded keywords; shade maps are copied with DEFAULT backfilled.
func Expand(e Entry, format Format) (Entry, error) {
	switch v := e.(type) {
	case Literal:
		if IsExcluded(string(v)) {
			return v, nil
		}
		return Build(string(v), format)
	case *ShadeMap:
		if v == nil {
			return nil, fmt.Errorf("%w: nil shade map", ErrUnsupportedShape)
		}
		return v.WithDefault()
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, e)
	}
}

// ExpandPalette expands every entry into a new palette. Entries named after
// an excluded keyword are copied as-is.
func ExpandPalette(p *Palette, format Format) (*Palette, error) {
	result := New()
	for _, name := range p.Names() {
		e, _ := p.Get(name)
		if IsExcluded(name) {
			if m, ok := e.(*ShadeMap); ok {
				e = m.Clone()
			}
			result.Set(name, e)
			continue
		}
		expanded, err := Expand(e, format)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		result.Set(name, expanded)
	}
	return result, nil
}
