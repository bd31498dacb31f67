// SPDX-License-Identifier: MIT
package palette

// DefaultNames is the order of the built-in base colors
var DefaultNames = []string{
	"primary", "secondary", "tertiary", "quaternary",
	"danger", "warning", "success", "info",
}

var defaultBase = map[string]string{
	"primary":    "#4B6279",
	"secondary":  "#F05454",
	"tertiary":   "#98998F",
	"quaternary": "#97A5AC",
	"danger":     "#f43f5e",
	"warning":    "#f59e0b",
	"success":    "#10b981",
	"info":       "#0ea5e9",
}

// DefaultBase returns the built-in base palette of single colors
func DefaultBase() *Palette {
	return FromStrings(DefaultNames, defaultBase)
}

// scaleNames is the order of the hand tuned scales
var scaleNames = []string{
	"frame", "primary", "secondary", "tertiary",
	"danger", "warning", "success", "info",
}

var defaultScales = map[string][]string{
	"frame":     {"#F9FAFB", "#EEF0F2", "#D7DBE0", "#C0C7CE", "#95A1AC", "#677584", "#434D56", "#2F363C", "#24292E", "#161A1D", "#121417"},
	"primary":   {"#E3F0FC", "#CCE4FA", "#9DCBF6", "#6FB2F1", "#4099ED", "#1680E4", "#1166B6", "#0D4C87", "#09345D", "#051D33", "#03111E"},
	"secondary": {"#FFDAD4", "#FFCBC2", "#FFAD9E", "#FF8E7B", "#FF7057", "#F04E2D", "#D32F12", "#A5240D", "#7D1908", "#550E02", "#430E04"},
	"tertiary":  {"#F7F6F5", "#ECECE9", "#D8D6D0", "#C3C0B7", "#AEAA9E", "#999485", "#7D7868", "#5F5B4F", "#403D35", "#21201C", "#12110F"},
	"danger":    {"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"},
	"warning":   {"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"},
	"success":   {"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"},
	"info":      {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"},
}

// DefaultScales returns the hand tuned scales used by the default theme.
// The maps carry no DEFAULT; Expand backfills it from 500.
func DefaultScales() *Palette {
	p := New()
	for _, name := range scaleNames {
		scale := NewShadeMap()
		for i, v := range defaultScales[name] {
			scale.Set(Shades[i], v)
		}
		p.Set(name, scale)
	}
	return p
}
