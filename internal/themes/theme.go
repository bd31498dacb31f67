// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"

	"github.com/thatcatcamp/forewind/internal/palette"
	"github.com/thatcatcamp/forewind/internal/vars"
)

// Preprocess controls which parts of a theme are converted to RGB channels
type Preprocess string

const (
	PreprocessBoth      Preprocess = "both"
	PreprocessColors    Preprocess = "colors"
	PreprocessVariables Preprocess = "variables"
	PreprocessNone      Preprocess = "none"
)

// ParsePreprocess validates a preprocess value. Empty means both.
func ParsePreprocess(s string) (Preprocess, error) {
	switch Preprocess(s) {
	case "":
		return PreprocessBoth, nil
	case PreprocessBoth, PreprocessColors, PreprocessVariables, PreprocessNone:
		return Preprocess(s), nil
	default:
		return "", fmt.Errorf("unknown preprocess mode: %s", s)
	}
}

func (p Preprocess) colors() bool {
	return p == "" || p == PreprocessBoth || p == PreprocessColors
}

func (p Preprocess) variables() bool {
	return p == "" || p == PreprocessBoth || p == PreprocessVariables
}

// Theme is a named set of color scales and extra variables rendered under a
// data-theme selector
type Theme struct {
	Name       string
	Preprocess Preprocess
	Colors     *palette.Palette
	Variables  *vars.Map
}

// Selector returns the CSS selector the theme's variables are scoped to
func (t *Theme) Selector() string {
	name := t.Name
	if name == "" {
		name = "default"
	}
	return fmt.Sprintf(":root [data-theme='%s']", name)
}

// Block is one rendered rule: a selector and its custom properties in order
type Block struct {
	Selector string
	Vars     *vars.Map
}

// GenerateThemes renders each theme as a block holding its variables followed
// by its color root variables
func GenerateThemes(themes []*Theme) ([]Block, error) {
	blocks := make([]Block, 0, len(themes))
	for _, t := range themes {
		block, err := generateTheme(t)
		if err != nil {
			return nil, fmt.Errorf("theme %q: %w", t.Name, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func generateTheme(t *Theme) (Block, error) {
	variables := t.Variables
	if variables == nil {
		variables = vars.NewMap()
	}
	if t.Preprocess.variables() {
		converted, err := vars.Variables(variables)
		if err != nil {
			return Block{}, err
		}
		variables = converted
	}

	colors := vars.NewMap()
	if t.Colors != nil {
		var err error
		if t.Preprocess.colors() {
			expanded, expandErr := palette.ExpandPalette(t.Colors, palette.FormatHex)
			if expandErr != nil {
				return Block{}, expandErr
			}
			colors, err = vars.RootVars(expanded, "color")
		} else {
			colors, err = vars.RawRootVars(t.Colors, "color")
		}
		if err != nil {
			return Block{}, err
		}
	}

	return Block{Selector: t.Selector(), Vars: variables.Merge(colors)}, nil
}

// BodyVariables returns the page text and background variables for light and
// dark mode, taken from the frame scale. Palettes without a frame use the
// built-in one.
func BodyVariables(p *palette.Palette) (*vars.Map, error) {
	e, ok := p.Get("frame")
	if !ok {
		e, _ = palette.DefaultScales().Get("frame")
	}
	expanded, err := palette.Expand(e, palette.FormatHex)
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	frame, ok := expanded.(*palette.ShadeMap)
	if !ok {
		return nil, fmt.Errorf("frame: %w", palette.ErrUnsupportedShape)
	}

	shade := func(s palette.Shade) (string, error) {
		v, ok := frame.Get(s)
		if !ok {
			return "", fmt.Errorf("frame: missing shade %s: %w", s, palette.ErrUnsupportedShape)
		}
		return v, nil
	}
	textLight, err := shade("700")
	if err != nil {
		return nil, err
	}
	textDark, err := shade("100")
	if err != nil {
		return nil, err
	}
	bgDark, err := shade("800")
	if err != nil {
		return nil, err
	}

	m := vars.NewMap()
	m.Set("--body-text-light", textLight)
	m.Set("--body-text-dark", textDark)
	m.Set("--body-bg-light", "#ffffff")
	m.Set("--body-bg-dark", bgDark)
	return m, nil
}

// PaletteRoot renders a palette for a plain :root rule: the body variables
// followed by the channel variables of every expanded color
func PaletteRoot(p *palette.Palette, prefix string) (Block, error) {
	expanded, err := palette.ExpandPalette(p, palette.FormatHex)
	if err != nil {
		return Block{}, err
	}
	colors, err := vars.RootVars(expanded, prefix)
	if err != nil {
		return Block{}, err
	}
	body, err := BodyVariables(expanded)
	if err != nil {
		return Block{}, err
	}
	body, err = vars.Variables(body)
	if err != nil {
		return Block{}, err
	}
	return RootBlock(body.Merge(colors)), nil
}

// DefaultTheme returns the hand tuned default scales with body variables
func DefaultTheme() *Theme {
	scales := palette.DefaultScales()
	body, _ := BodyVariables(scales)
	return &Theme{
		Name:       "default",
		Preprocess: PreprocessBoth,
		Colors:     scales,
		Variables:  body,
	}
}

// PresetTheme builds a theme from a named preset. The default preset keeps
// the hand tuned scales; other presets replace primary and secondary with
// generated ones.
func PresetTheme(name string) (*Theme, error) {
	preset := GetPreset(name)
	if preset == nil {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	if preset.Name == "default" {
		return DefaultTheme(), nil
	}

	colors := palette.DefaultScales()
	colors.Set("primary", palette.Literal(preset.Primary))
	colors.Set("secondary", palette.Literal(preset.Secondary))

	body, err := BodyVariables(colors)
	if err != nil {
		return nil, err
	}
	return &Theme{
		Name:       preset.Name,
		Preprocess: PreprocessBoth,
		Colors:     colors,
		Variables:  body,
	}, nil
}
