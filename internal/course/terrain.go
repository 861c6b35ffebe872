// Package course holds a playable hole: the generated grid, the ball, the hole
// and the stroke history, plus the movement rules that change them.
package course

import (
	"context"
	"fmt"

	"github.com/samdwyer/dicegolf/internal/world"
)

// Terrain is one hole in play. It is owned by a single session and is not
// safe for concurrent use.
type Terrain struct {
	seed    string
	width   int
	height  int
	par     int
	grid    *world.Grid
	ball    world.Position
	hole    world.Position
	start   world.Position
	history []world.Position
}

// New generates a hole from a seed and places the ball and the hole on it.
func New(ctx context.Context, seed string, width, height int) (*Terrain, error) {
	t := &Terrain{}
	if err := t.Regenerate(ctx, seed, width, height); err != nil {
		return nil, err
	}
	return t, nil
}

// Regenerate replaces the hole in place with a freshly generated one.
// On error the terrain is left unchanged.
func (t *Terrain) Regenerate(ctx context.Context, seed string, width, height int) error {
	if width < world.MinDimension || height < world.MinDimension {
		return fmt.Errorf("terrain %dx%d: %w", width, height, world.ErrInvalidDimensions)
	}

	grid, err := world.Generate(ctx, seed, width, height)
	if err != nil {
		return fmt.Errorf("generate terrain: %w", err)
	}
	placement, err := world.Place(ctx, grid, seed)
	if err != nil {
		return fmt.Errorf("place ball and hole: %w", err)
	}

	*t = Terrain{
		seed:    seed,
		width:   width,
		height:  height,
		par:     Par(height),
		grid:    grid,
		ball:    placement.Ball,
		hole:    placement.Hole,
		start:   placement.Ball,
		history: nil,
	}
	return nil
}

// Par returns the target stroke count for a hole of the given height.
func Par(height int) int {
	return height/5 + 1
}

// Seed returns the seed the hole was generated from.
func (t *Terrain) Seed() string { return t.seed }

// Width returns the number of columns.
func (t *Terrain) Width() int { return t.width }

// Height returns the number of rows.
func (t *Terrain) Height() int { return t.height }

// Par returns the hole's par.
func (t *Terrain) Par() int { return t.par }

// Ball returns the ball's current position.
func (t *Terrain) Ball() world.Position { return t.ball }

// Hole returns the hole's position.
func (t *Terrain) Hole() world.Position { return t.hole }

// Start returns where the ball was first placed.
func (t *Terrain) Start() world.Position { return t.start }

// Grid returns the hole's grid. Callers must not modify it.
func (t *Terrain) Grid() *world.Grid { return t.grid }

// CellAt returns the cell at p; off-grid positions read as impassable.
func (t *Terrain) CellAt(p world.Position) world.Cell {
	return t.grid.At(p)
}

// History returns a copy of the positions the ball was hit from, in order.
func (t *Terrain) History() []world.Position {
	return append([]world.Position(nil), t.history...)
}

// Strokes returns the number of strokes taken.
func (t *Terrain) Strokes() int {
	return len(t.history)
}

// Finished reports whether the ball is in the hole.
func (t *Terrain) Finished() bool {
	return t.ball == t.hole
}

// Distance returns the Manhattan distance from the ball to the hole.
// It is feedback only and plays no part in move legality.
func (t *Terrain) Distance() int {
	return t.ball.Manhattan(t.hole)
}

// StrokeLog returns every position the ball has occupied, start first and the
// current position last. Consecutive pairs are the individual strokes.
func (t *Terrain) StrokeLog() []world.Position {
	positions := make([]world.Position, 0, len(t.history)+1)
	positions = append(positions, t.history...)
	return append(positions, t.ball)
}
