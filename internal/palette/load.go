// SPDX-License-Identifier: MIT
package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v3"
)

// Load reads a YAML or JSON palette document, keeping key order.
//
//	primary: "#1680E4"
//	danger:
//	  50: "#fff1f2"
//	  500: "#f43f5e"
func Load(r io.Reader) (*Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON palette document
func Parse(data []byte) (*Palette, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	p := New()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return p, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: palette must be a mapping of color names", ErrUnsupportedShape)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		entry, err := entryFromNode(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		p.Set(name, entry)
	}
	return p, nil
}

func entryFromNode(n *yaml.Node) (Entry, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return Literal(n.Value), nil
	case yaml.MappingNode:
		scale := NewShadeMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			shade, err := ParseShade(n.Content[i].Value)
			if err != nil {
				return nil, err
			}
			value := n.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: shade %s must be a color string", ErrUnsupportedShape, shade)
			}
			scale.Set(shade, value.Value)
		}
		return scale, nil
	case yaml.AliasNode:
		return entryFromNode(n.Alias)
	default:
		return nil, fmt.Errorf("%w: expected a color or a map of shades", ErrUnsupportedShape)
	}
}

// FromMap builds a palette from an unordered map such as a viper section.
// Built-in names come first in their usual order, the rest alphabetically.
// Shade maps are ordered lightest first with DEFAULT last.
func FromMap(values map[string]any) (*Palette, error) {
	var names []string
	seen := make(map[string]bool)
	for _, name := range DefaultNames {
		if _, ok := values[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range values {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	p := New()
	for _, name := range names {
		switch v := values[name].(type) {
		case string:
			p.Set(name, Literal(v))
		case map[string]any:
			scale, err := shadeMapFromMap(v)
			if err != nil {
				return nil, fmt.Errorf("color %q: %w", name, err)
			}
			p.Set(name, scale)
		default:
			return nil, fmt.Errorf("color %q: %w: %T", name, ErrUnsupportedShape, v)
		}
	}
	return p, nil
}

func shadeMapFromMap(values map[string]any) (*ShadeMap, error) {
	parsed := make(map[Shade]string, len(values))
	for k, v := range values {
		shade, err := ParseShade(k)
		if err != nil {
			return nil, err
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: shade %s must be a color string", ErrUnsupportedShape, shade)
		}
		parsed[shade] = s
	}

	order := append(append([]Shade{}, Shades...), Default)
	scale := NewShadeMap()
	for _, shade := range order {
		if v, ok := parsed[shade]; ok {
			scale.Set(shade, v)
		}
	}
	return scale, nil
}

// MarshalJSON writes the shades in order
func (m *ShadeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(&buf, string(k), m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of shades, keeping order
func (m *ShadeMap) UnmarshalJSON(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		*m = *NewShadeMap()
		return nil
	}
	e, err := entryFromNode(doc.Content[0])
	if err != nil {
		return err
	}
	scale, ok := e.(*ShadeMap)
	if !ok {
		return fmt.Errorf("%w: expected a map of shades", ErrUnsupportedShape)
	}
	*m = *scale
	return nil
}

// MarshalJSON writes colors in order; literals as strings, scales as objects
func (p *Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		switch e := p.entries[name].(type) {
		case Literal:
			value, err := marshalString(string(e))
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		case *ShadeMap:
			value, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		default:
			return nil, fmt.Errorf("color %q: %w: %T", name, ErrUnsupportedShape, e)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a palette object, keeping order
func (p *Palette) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

func writePair(buf *bytes.Buffer, key, value string) error {
	k, err := marshalString(key)
	if err != nil {
		return err
	}
	v, err := marshalString(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// marshalString quotes s without escaping <, > and &, which appear in
// alpha-aware variable references
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
