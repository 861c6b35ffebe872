package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dicegolf/internal/course"
	"github.com/samdwyer/dicegolf/internal/gamedata"
	"github.com/samdwyer/dicegolf/internal/world"
)

// CellWidth is the number of terminal columns one course cell occupies.
const CellWidth = 2

// Frame is everything needed to draw one screen.
type Frame struct {
	Terrain *course.Terrain  // nil while the first hole is loading
	Landing []world.Position // pending landing cells, numbered from 1
	Status  []string         // lines drawn below the course
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the course, its markers, the landing options and the status lines.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	statusY := 0
	if t := f.Terrain; t != nil {
		r.renderCourse(t)
		r.renderLanding(t, f.Landing)
		statusY = t.Height() + 1
	}

	for i, line := range f.Status {
		r.RenderMessage(line, statusY+i)
	}

	r.screen.Show()
}

func (r *Renderer) renderCourse(t *course.Terrain) {
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			cell := t.CellAt(world.Pos(x, y))
			def := r.palette.Surface(cell)
			style := r.surfaceStyle(cell)
			r.drawCell(world.Pos(x, y), def.GlyphRune(), ' ', style)
		}
	}

	if t.Start() != t.Ball() {
		r.drawMarker(t, t.Start(), gamedata.MarkerStart, false)
	}
	r.drawMarker(t, t.Hole(), gamedata.MarkerHole, true)
	r.drawMarker(t, t.Ball(), gamedata.MarkerBall, true)
}

// drawMarker draws a marker glyph over the surface at p.
func (r *Renderer) drawMarker(t *course.Terrain, p world.Position, id string, bold bool) {
	def := r.palette.Marker(id)
	if def == nil {
		return
	}
	style := r.surfaceStyle(t.CellAt(p)).
		Foreground(r.palette.MarkerColor(id)).
		Bold(bold)
	r.drawCell(p, def.GlyphRune(), ' ', style)
}

// renderLanding numbers each landing option so it can be chosen from the keyboard.
func (r *Renderer) renderLanding(t *course.Terrain, landing []world.Position) {
	def := r.palette.Marker(gamedata.MarkerLanding)
	if def == nil {
		return
	}
	style := tcell.StyleDefault.
		Background(r.palette.MarkerColor(gamedata.MarkerLanding)).
		Foreground(tcell.ColorBlack).
		Bold(true)
	for i, p := range landing {
		label := def.GlyphRune()
		if i < 9 {
			label = rune('1' + i)
		}
		r.drawCell(p, label, def.GlyphRune(), style)
	}
}

// surfaceStyle returns the appropriate style for a cell type.
func (r *Renderer) surfaceStyle(c world.Cell) tcell.Style {
	return tcell.StyleDefault.
		Background(r.palette.SurfaceColor(c)).
		Foreground(tcell.ColorWhite)
}

func (r *Renderer) drawCell(p world.Position, first, second rune, style tcell.Style) {
	sx := p.X * CellWidth
	r.screen.SetContent(sx, p.Y, first, style)
	r.screen.SetContent(sx+1, p.Y, second, style)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// CellAt maps a screen position to the course cell drawn there.
func CellAt(t *course.Terrain, sx, sy int) (world.Position, bool) {
	if t == nil || sx < 0 || sy < 0 {
		return world.Position{}, false
	}
	p := world.Pos(sx/CellWidth, sy)
	if !t.Grid().InBounds(p) {
		return world.Position{}, false
	}
	return p, true
}

// OptionLabel returns the keyboard label for landing option i.
func OptionLabel(i int) string {
	return strconv.Itoa(i + 1)
}
