package gamedata

import (
	"image/color"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dicegolf/internal/world"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for _, cell := range world.Cells {
		def := p.Surface(cell)
		if def == nil {
			t.Fatalf("no surface for %v", cell)
		}
		if def.ID != cell.String() {
			t.Errorf("surface for %v has ID %q", cell, def.ID)
		}
	}

	for _, id := range []string{MarkerHole, MarkerStart, MarkerBall, MarkerLanding} {
		if p.Marker(id) == nil {
			t.Errorf("marker %q not found", id)
		}
	}
}

func TestPaletteColors(t *testing.T) {
	p := MustLoadPalette()

	tests := []struct {
		cell world.Cell
		want color.RGBA
	}{
		{world.CellGrass, color.RGBA{0x11, 0x66, 0x11, 0xFF}},
		{world.CellFairway, color.RGBA{0x33, 0xAA, 0x33, 0xFF}},
		{world.CellSand, color.RGBA{0xFF, 0xAA, 0x33, 0xFF}},
		{world.CellTree, color.RGBA{0x66, 0x66, 0x66, 0xFF}},
		{world.CellWater, color.RGBA{0x33, 0x33, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		if got := RGBA(p.SurfaceColor(tt.cell)); got != tt.want {
			t.Errorf("SurfaceColor(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}

	if got := RGBA(p.MarkerColor(MarkerHole)); got != (color.RGBA{0x11, 0x11, 0x11, 0xFF}) {
		t.Errorf("MarkerColor(hole) = %v", got)
	}
	if p.MarkerColor("nope") != tcell.ColorWhite {
		t.Error("unknown marker should fall back to white")
	}
}

func TestNewPaletteMissingSurface(t *testing.T) {
	file := PaletteFile{
		Surfaces: []SurfaceDef{{ID: "grass", Symbol: "g", Glyph: ".", Color: "#116611"}},
	}

	_, err := NewPalette(file)
	if err == nil || !strings.Contains(err.Error(), "no surface defined") {
		t.Errorf("expected missing surface error, got %v", err)
	}
}

func TestNewPaletteBadColor(t *testing.T) {
	file := PaletteFile{
		Surfaces: []SurfaceDef{{ID: "grass", Symbol: "g", Color: "#GGGGGG"}},
	}

	if _, err := NewPalette(file); err == nil {
		t.Error("expected colour parse error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestGlyphRune(t *testing.T) {
	s := SurfaceDef{Glyph: "~"}
	if s.GlyphRune() != '~' {
		t.Errorf("GlyphRune() = %q", s.GlyphRune())
	}
	m := MarkerDef{}
	if m.GlyphRune() != '?' {
		t.Errorf("empty glyph should render as '?', got %q", m.GlyphRune())
	}
}
