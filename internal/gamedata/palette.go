package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dicegolf/internal/world"
)

// Marker IDs for things drawn on top of the course.
const (
	MarkerHole    = "hole"
	MarkerStart   = "start"
	MarkerBall    = "ball"
	MarkerLanding = "landing"
)

// SurfaceDef defines how a cell type is displayed.
type SurfaceDef struct {
	ID     string `json:"id"`     // Matches world.Cell.String() (e.g., "sand")
	Symbol string `json:"symbol"` // One-letter map symbol (e.g., "s")
	Name   string `json:"name"`   // Display name
	Glyph  string `json:"glyph"`  // Character drawn in the terminal
	Color  string `json:"color"`  // Hex colour
}

// MarkerDef defines how an overlay (ball, hole, landing cell) is displayed.
type MarkerDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SurfaceDef) GlyphRune() rune {
	return firstRune(s.Glyph)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MarkerDef) GlyphRune() rune {
	return firstRune(m.Glyph)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

// PaletteFile represents the structure of surfaces.json.
type PaletteFile struct {
	Surfaces []SurfaceDef `json:"surfaces"`
	Markers  []MarkerDef  `json:"markers"`
}

// Palette resolves display data for cells and markers.
type Palette struct {
	surfaces map[world.Cell]*SurfaceDef
	markers  map[string]*MarkerDef
	colors   map[string]tcell.Color
}

// NewPalette builds a palette from loaded definitions, checking that every
// cell type has a surface and every colour parses.
func NewPalette(file PaletteFile) (*Palette, error) {
	p := &Palette{
		surfaces: make(map[world.Cell]*SurfaceDef),
		markers:  make(map[string]*MarkerDef),
		colors:   make(map[string]tcell.Color),
	}

	for i := range file.Surfaces {
		def := &file.Surfaces[i]
		cell, err := world.ParseCell(def.Symbol)
		if err != nil {
			return nil, fmt.Errorf("surface %q: %w", def.ID, err)
		}
		if err := p.addColor("surface:"+def.ID, def.Color); err != nil {
			return nil, err
		}
		p.surfaces[cell] = def
	}
	for _, cell := range world.Cells {
		if p.surfaces[cell] == nil {
			return nil, fmt.Errorf("no surface defined for %v", cell)
		}
	}

	for i := range file.Markers {
		def := &file.Markers[i]
		if err := p.addColor("marker:"+def.ID, def.Color); err != nil {
			return nil, err
		}
		p.markers[def.ID] = def
	}

	return p, nil
}

func (p *Palette) addColor(key, hex string) error {
	c, err := ParseHexColor(hex)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	p.colors[key] = c
	return nil
}

// LoadPalette loads the palette from the embedded surfaces.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("surfaces.json")
	if err != nil {
		return nil, err
	}
	if len(file.Surfaces) == 0 {
		return nil, errors.New("no surfaces loaded from surfaces.json")
	}
	return NewPalette(file)
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Surface returns the display definition for a cell. Unknown cells fall back to grass.
func (p *Palette) Surface(c world.Cell) *SurfaceDef {
	if def := p.surfaces[c]; def != nil {
		return def
	}
	return p.surfaces[world.CellGrass]
}

// SurfaceColor returns the colour for a cell.
func (p *Palette) SurfaceColor(c world.Cell) tcell.Color {
	return p.colors["surface:"+p.Surface(c).ID]
}

// Marker returns the marker with the given ID, or nil if not found.
func (p *Palette) Marker(id string) *MarkerDef {
	return p.markers[id]
}

// MarkerColor returns the colour for a marker, or white if the marker is unknown.
func (p *Palette) MarkerColor(id string) tcell.Color {
	if c, ok := p.colors["marker:"+id]; ok {
		return c
	}
	return tcell.ColorWhite
}
