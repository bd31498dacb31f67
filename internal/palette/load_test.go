// SPDX-License-Identifier: MIT
package palette

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKeepsOrder(t *testing.T) {
	doc := `
secondary: "#F05454"
primary: "#1680E4"
danger:
  500: "#f43f5e"
  50: "#fff1f2"
white: white
`
	p, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if diff := cmp.Diff([]string{"secondary", "primary", "danger", "white"}, p.Names()); diff != "" {
		t.Errorf("name order mismatch (-want +got):\n%s", diff)
	}

	danger, _ := p.Get("danger")
	scale, ok := danger.(*ShadeMap)
	if !ok {
		t.Fatalf("danger should be a shade map, got %T", danger)
	}
	if diff := cmp.Diff([]Shade{"500", "50"}, scale.Keys()); diff != "" {
		t.Errorf("shade order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON(t *testing.T) {
	p, err := Parse([]byte(`{"primary": "#1680E4", "frame": {"500": "#677584", "DEFAULT": "#677584"}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 colors, got %d", p.Len())
	}
	primary, _ := p.Get("primary")
	if primary != Literal("#1680E4") {
		t.Errorf("primary = %v", primary)
	}
}

func TestParseEmpty(t *testing.T) {
	p, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("expected empty palette, got %d colors", p.Len())
	}
}

func TestParseRejectsBadShapes(t *testing.T) {
	docs := map[string]string{
		"list at root":  "- primary\n- secondary\n",
		"unknown shade": "primary:\n  550: \"#000000\"\n",
		"nested map":    "primary:\n  500:\n    DEFAULT: \"#000000\"\n",
		"list value":    "primary:\n  - \"#000000\"\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			if !errors.Is(err, ErrUnsupportedShape) {
				t.Errorf("expected ErrUnsupportedShape, got %v", err)
			}
		})
	}
}

func TestParseAlias(t *testing.T) {
	doc := `
primary: &brand "#1680E4"
accent: *brand
`
	p, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	accent, _ := p.Get("accent")
	if accent != Literal("#1680E4") {
		t.Errorf("accent = %v, want the aliased value", accent)
	}
}

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader("info: \"#0ea5e9\"\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := p.Get("info"); !ok {
		t.Error("info should be loaded")
	}
}

func TestFromMap(t *testing.T) {
	p, err := FromMap(map[string]any{
		"zeta":    "#000000",
		"brand":   "#ff0000",
		"danger":  "#f43f5e",
		"primary": "#1680E4",
		"frame": map[string]any{
			"default": "#677584",
			"900":     "#161A1D",
			"50":      "#F9FAFB",
		},
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	if diff := cmp.Diff([]string{"primary", "danger", "brand", "frame", "zeta"}, p.Names()); diff != "" {
		t.Errorf("name order mismatch (-want +got):\n%s", diff)
	}

	frame, _ := p.Get("frame")
	if diff := cmp.Diff([]Shade{"50", "900", Default}, frame.(*ShadeMap).Keys()); diff != "" {
		t.Errorf("shade order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapRejectsNumbers(t *testing.T) {
	_, err := FromMap(map[string]any{"primary": 42})
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape, got %v", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	p := New()
	p.Set("secondary", Literal("#F05454"))
	scale := NewShadeMap()
	scale.Set("500", "rgb(var(--color-primary-500) / <alpha-value>)")
	scale.Set(Default, "rgb(var(--color-primary) / <alpha-value>)")
	p.Set("primary", scale)

	data, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}

	want := `{"secondary":"#F05454","primary":{"500":"rgb(var(--color-primary-500) / <alpha-value>)","DEFAULT":"rgb(var(--color-primary) / <alpha-value>)"}}`
	if string(data) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", data, want)
	}
}

func TestUnmarshalJSONRoundTrip(t *testing.T) {
	expanded, err := ExpandPalette(DefaultBase(), FormatChannels)
	if err != nil {
		t.Fatalf("ExpandPalette failed: %v", err)
	}
	data, err := json.Marshal(expanded)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Palette
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(expanded.Names(), decoded.Names()); diff != "" {
		t.Errorf("name order mismatch (-want +got):\n%s", diff)
	}
	again, _ := json.Marshal(&decoded)
	if string(again) != string(data) {
		t.Errorf("round trip changed output:\n%s\n%s", data, again)
	}
}
