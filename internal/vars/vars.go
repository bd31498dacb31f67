// SPDX-License-Identifier: MIT

// Package vars projects expanded palettes onto CSS custom property names.
//
// Every generated key is built by Key, so the root variables written to a
// stylesheet and the var(...) references handed to the build pipeline always
// agree.
package vars

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thatcatcamp/forewind/internal/color"
	"github.com/thatcatcamp/forewind/internal/palette"
)

// ErrInvalidSeparator is returned for separators other than "-" and "."
var ErrInvalidSeparator = errors.New("separator must be \"-\" or \".\"")

// Mode selects what a projected key maps to
type Mode int

const (
	// Literal maps keys to RGB channel strings
	Literal Mode = iota
	// Indirection maps keys to var(...) references
	Indirection
	// Verbatim maps keys to the stored values unchanged
	Verbatim
)

// ParseMode maps "literal" and "indirection" (or "var") to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return Literal, nil
	case "indirection", "var":
		return Indirection, nil
	case "verbatim", "raw":
		return Verbatim, nil
	default:
		return Literal, fmt.Errorf("unknown projection mode: %s", s)
	}
}

func (m Mode) String() string {
	switch m {
	case Indirection:
		return "indirection"
	case Verbatim:
		return "verbatim"
	default:
		return "literal"
	}
}

// Options controls a projection
type Options struct {
	Prefix    string // "color" when empty; a leading "--" is dropped
	Separator string // "-" when empty
	Mode      Mode
	Alpha     bool // wrap indirection values as rgb(var(--KEY)/<alpha-value>)
}

func (o Options) normalize() (Options, error) {
	if o.Prefix == "" {
		o.Prefix = "color"
	}
	o.Prefix = strings.TrimPrefix(o.Prefix, "--")
	if o.Separator == "" {
		o.Separator = "-"
	}
	if o.Separator != "-" && o.Separator != "." {
		return o, fmt.Errorf("%w: %q", ErrInvalidSeparator, o.Separator)
	}
	return o, nil
}

// Key builds a generated name: prefix + sep + name [+ sep + shade].
// The shade is omitted for DEFAULT and when empty.
func Key(prefix, name string, shade palette.Shade, sep string) string {
	prefix = strings.TrimPrefix(prefix, "--")
	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString(sep)
	}
	b.WriteString(name)
	if shade != "" && shade != palette.Default {
		b.WriteString(sep)
		b.WriteString(string(shade))
	}
	return b.String()
}

// Reference returns the value that points at key: var(--key), or the alpha
// aware rgb(var(--key)/<alpha-value>)
func Reference(key string, alpha bool) string {
	if alpha {
		return "rgb(var(--" + key + ")/<alpha-value>)"
	}
	return "var(--" + key + ")"
}

// Project flattens an expanded palette into generated keys, following the
// palette's name order and then each scale's shade order. Scales missing a
// DEFAULT are backfilled from 500 first. Entries named after excluded
// keywords are skipped.
func Project(p *palette.Palette, opts Options) (*Map, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	out := NewMap()
	err = walk(p, func(name string, shade palette.Shade, value string) error {
		key := Key(opts.Prefix, name, shade, opts.Separator)
		switch opts.Mode {
		case Indirection:
			out.Set(key, Reference(key, opts.Alpha))
			return nil
		case Verbatim:
			out.Set(key, value)
			return nil
		}
		v, err := channels(value)
		if err != nil {
			return fmt.Errorf("color %q shade %s: %w", name, shade, err)
		}
		out.Set(key, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RootVars returns document-root custom properties, --prefix-name[-shade],
// mapped to RGB channel strings
func RootVars(p *palette.Palette, prefix string) (*Map, error) {
	return rootVars(p, prefix, Literal)
}

// RawRootVars is RootVars without the channel conversion
func RawRootVars(p *palette.Palette, prefix string) (*Map, error) {
	return rootVars(p, prefix, Verbatim)
}

func rootVars(p *palette.Palette, prefix string, mode Mode) (*Map, error) {
	flat, err := Project(p, Options{Prefix: prefix, Mode: mode})
	if err != nil {
		return nil, err
	}
	out := NewMap()
	for _, v := range flat.Vars() {
		out.Set("--"+v.Key, v.Value)
	}
	return out, nil
}

// ThemeVars returns the nested name -> shade -> var(...) palette handed to
// the build pipeline. Literal entries receive the full shade set; excluded
// names are copied unchanged so keywords such as "white" keep working.
func ThemeVars(p *palette.Palette, opts Options) (*palette.Palette, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	out := palette.New()
	for _, name := range p.Names() {
		e, _ := p.Get(name)
		if palette.IsExcluded(name) {
			out.Set(name, e)
			continue
		}

		var shades []palette.Shade
		switch v := e.(type) {
		case palette.Literal:
			if palette.IsExcluded(string(v)) {
				out.Set(name, v)
				continue
			}
			shades = append(append([]palette.Shade{}, palette.Shades...), palette.Default)
		case *palette.ShadeMap:
			scale, err := v.WithDefault()
			if err != nil {
				return nil, fmt.Errorf("color %q: %w", name, err)
			}
			shades = scale.Keys()
		default:
			return nil, fmt.Errorf("color %q: %w: %T", name, palette.ErrUnsupportedShape, e)
		}

		scale := palette.NewShadeMap()
		for _, shade := range shades {
			scale.Set(shade, Reference(Key(opts.Prefix, name, shade, opts.Separator), opts.Alpha))
		}
		out.Set(name, scale)
	}
	return out, nil
}

// Variables converts hex, rgb and hsl values to RGB channels for use with
// alpha-aware references. Other values are copied untouched.
func Variables(m *Map) (*Map, error) {
	out := NewMap()
	for _, v := range m.Vars() {
		value := v.Value
		if looksLikeColor(value) {
			c, err := color.Parse(value)
			if err != nil {
				return nil, fmt.Errorf("variable %q: %w", v.Key, err)
			}
			value = c.Channels()
		}
		out.Set(v.Key, value)
	}
	return out, nil
}

func looksLikeColor(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "#") || strings.HasPrefix(s, "rgb") || strings.HasPrefix(s, "hsl")
}

// walk visits every (name, shade, value) of an expanded palette in order
func walk(p *palette.Palette, fn func(name string, shade palette.Shade, value string) error) error {
	for _, name := range p.Names() {
		if palette.IsExcluded(name) {
			continue
		}
		e, _ := p.Get(name)
		switch v := e.(type) {
		case palette.Literal:
			if palette.IsExcluded(string(v)) {
				continue
			}
			if err := fn(name, palette.Default, string(v)); err != nil {
				return err
			}
		case *palette.ShadeMap:
			scale, err := v.WithDefault()
			if err != nil {
				return fmt.Errorf("color %q: %w", name, err)
			}
			for _, shade := range scale.Keys() {
				value, _ := scale.Get(shade)
				if err := fn(name, shade, value); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("color %q: %w: %T", name, palette.ErrUnsupportedShape, e)
		}
	}
	return nil
}

// channels converts a color to "r g b". var() references pass through so
// scales built from another variable project cleanly.
func channels(value string) (string, error) {
	if strings.HasPrefix(strings.TrimSpace(value), "var(") {
		return value, nil
	}
	c, err := color.Parse(value)
	if err != nil {
		return "", err
	}
	return c.Channels(), nil
}
