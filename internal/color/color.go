// SPDX-License-Identifier: MIT

// Package color parses CSS color strings and implements the RGB arithmetic
// used to derive tonal scales.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ErrInvalidColor is returned when a string cannot be parsed as a color
var ErrInvalidColor = errors.New("invalid color")

// RGB is a color with 0-255 channels and a 0-1 alpha. Channels may carry
// fractions after Mix; formatting rounds them.
type RGB struct {
	R, G, B float64
	A       float64
}

var (
	White = RGB{R: 255, G: 255, B: 255, A: 1}
	Black = RGB{R: 0, G: 0, B: 0, A: 1}
)

var (
	bareHexPattern = regexp.MustCompile(`^([0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	loosePattern   = regexp.MustCompile(`^(rgba?|hsla?)\s+([^()]+)$`)
)

// Parse converts a hex (with or without #), rgb(), rgba(), hsl(), hsla() or
// named CSS color into RGB. The loose "rgb r g b" form is accepted too.
// Functional forms must be closed and every channel must be a number.
func Parse(s string) (RGB, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if input == "" {
		return RGB{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if bareHexPattern.MatchString(input) {
		input = "#" + input
	} else if m := loosePattern.FindStringSubmatch(input); m != nil {
		input = m[1] + "(" + m[2] + ")"
	}

	c, err := csscolorparser.Parse(input)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{
		R: clamp(c.R*255, 0, 255),
		G: clamp(c.G*255, 0, 255),
		B: clamp(c.B*255, 0, 255),
		A: clamp(c.A, 0, 1),
	}, nil
}

// IsColor reports whether s looks like a hex, rgb or hsl color string
func IsColor(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, prefix := range []string{"#", "rgb", "rgba", "hsl", "hsla"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Round returns the color with channels rounded half up
func (c RGB) Round() RGB {
	return RGB{R: round(c.R), G: round(c.G), B: round(c.B), A: c.A}
}

// Hex returns the color as "#rrggbb", ignoring alpha
func (c RGB) Hex() string {
	r := c.Round()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r.R), uint8(r.G), uint8(r.B))
}

// Channels returns the color as space separated channels, e.g. "22 128 228"
func (c RGB) Channels() string {
	r := c.Round()
	return fmt.Sprintf("%d %d %d", int(r.R), int(r.G), int(r.B))
}

func (c RGB) String() string {
	return c.Hex()
}

// Lightness returns the HSL lightness in the 0-1 range
func (c RGB) Lightness() float64 {
	r := c.Round()
	_, _, l := colorful.Color{R: r.R / 255, G: r.G / 255, B: r.B / 255}.Hsl()
	return l
}

// Mix blends from toward to. amount is a percentage: 0 returns from, 100
// returns to. Inputs are rounded before blending.
func Mix(from, to RGB, amount float64) RGB {
	p := amount / 100
	a := from.Round()
	b := to.Round()
	return RGB{
		R: ((b.R - a.R) * p) + a.R,
		G: ((b.G - a.G) * p) + a.G,
		B: ((b.B - a.B) * p) + a.B,
		A: ((b.A - a.A) * p) + a.A,
	}
}

// Multiply combines two colors channel by channel: floor(a*b/255)
func Multiply(a, b RGB) RGB {
	x := a.Round()
	y := b.Round()
	return RGB{
		R: math.Floor(x.R * y.R / 255),
		G: math.Floor(x.G * y.G / 255),
		B: math.Floor(x.B * y.B / 255),
		A: 1,
	}
}

func round(v float64) float64 {
	return clamp(math.Floor(v+0.5), 0, 255)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
