// SPDX-License-Identifier: MIT

// Package output writes expanded palettes to disk or object storage as JSON,
// an ECMAScript module or a CommonJS module.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/thatcatcamp/forewind/internal/palette"
)

// Type is the serialization of an emitted palette
type Type string

const (
	TypeJSON Type = "json"
	TypeESM  Type = "esm"
	TypeCJS  Type = "cjs"
)

// ParseType validates an output type. Empty means json.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeJSON:
		return TypeJSON, nil
	case TypeESM:
		return TypeESM, nil
	case TypeCJS:
		return TypeCJS, nil
	default:
		return "", fmt.Errorf("unknown output type: %s", s)
	}
}

// Options locates the emitted file. An empty Dir disables output.
type Options struct {
	Dir  string
	Name string // "palette" when empty
	Ext  string // derived from Type when empty
	Type Type
}

// Path returns the slash separated target path, or "" when output is disabled
func (o Options) Path() string {
	if o.Dir == "" {
		return ""
	}
	name := o.Name
	if name == "" {
		name = "palette"
	}
	ext := strings.TrimPrefix(o.Ext, ".")
	if ext == "" {
		ext = "js"
		if o.Type == TypeJSON || o.Type == "" {
			ext = "json"
		}
	}
	return path.Join(o.Dir, name+"."+ext)
}

// Render serializes the palette with two space indentation
func Render(p *palette.Palette, t Type) ([]byte, error) {
	raw, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	var body bytes.Buffer
	if err := json.Indent(&body, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format palette: %w", err)
	}

	switch t {
	case "", TypeJSON:
		return body.Bytes(), nil
	case TypeCJS:
		return []byte("module.exports = " + body.String() + ";\n"), nil
	case TypeESM:
		return []byte("export const palette = " + body.String() + ";\n\nexport default palette;"), nil
	default:
		return nil, fmt.Errorf("unknown output type: %s", t)
	}
}
