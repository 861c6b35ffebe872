// Package preview renders course thumbnails as PNG images.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/samdwyer/dicegolf/internal/course"
	"github.com/samdwyer/dicegolf/internal/gamedata"
	"github.com/samdwyer/dicegolf/internal/world"
)

// PixelsPerCell is the edge length, in pixels, of one course cell.
const PixelsPerCell = 6

// Render draws the hole as it was dealt: surfaces, with the hole and the
// start cell marked. The ball's current position is not drawn.
func Render(t *course.Terrain, palette *gamedata.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.Width()*PixelsPerCell, t.Height()*PixelsPerCell))

	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			p := world.Pos(x, y)
			c := gamedata.RGBA(palette.SurfaceColor(t.CellAt(p)))
			switch p {
			case t.Hole():
				c = gamedata.RGBA(palette.MarkerColor(gamedata.MarkerHole))
			case t.Start():
				c = gamedata.RGBA(palette.MarkerColor(gamedata.MarkerStart))
			}

			for dy := 0; dy < PixelsPerCell; dy++ {
				for dx := 0; dx < PixelsPerCell; dx++ {
					img.SetRGBA(x*PixelsPerCell+dx, y*PixelsPerCell+dy, c)
				}
			}
		}
	}

	return img
}

// Encode renders the hole and writes it as PNG.
func Encode(w io.Writer, t *course.Terrain, palette *gamedata.Palette) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, Render(t, palette)); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
