// SPDX-License-Identifier: MIT
package plugin

import (
	"bytes"
	"encoding/json"

	"github.com/thatcatcamp/forewind/internal/palette"
)

// Config is the framework configuration produced by Plugin.Config
type Config struct {
	DarkMode string `json:"darkMode"`
	Theme    Theme  `json:"theme"`
}

type Theme struct {
	Extend Extend `json:"extend"`
}

// Extend holds the theme values merged into the host's defaults
type Extend struct {
	Colors   *palette.Palette    `json:"colors"`
	Padding  map[string]string   `json:"padding"`
	Margin   map[string]string   `json:"margin"`
	FontSize map[string]FontSize `json:"fontSize"`
}

// FontSize is a size with its line height, written as ["1rem", {"lineHeight": "1.5rem"}]
type FontSize struct {
	Size       string
	LineHeight string
}

func (f FontSize) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{f.Size, map[string]string{"lineHeight": f.LineHeight}})
}

// JSON renders the configuration indented, leaving <alpha-value> unescaped
func (c *Config) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newConfig(colors *palette.Palette) *Config {
	spacing := map[string]string{
		"0.25": "0.0625rem",
		"0.75": "0.1875rem",
		"1.25": "0.375rem",
	}
	margin := make(map[string]string, len(spacing))
	for k, v := range spacing {
		margin[k] = v
	}
	return &Config{
		DarkMode: "class",
		Theme: Theme{Extend: Extend{
			Colors:   colors,
			Padding:  spacing,
			Margin:   margin,
			FontSize: map[string]FontSize{"md": {Size: "1rem", LineHeight: "1.5rem"}},
		}},
	}
}
