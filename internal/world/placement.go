package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dicegolf/internal/rng"
	"github.com/samdwyer/dicegolf/internal/telemetry"
)

const (
	// MinDimension is the smallest width or height a playable course may have;
	// smaller grids cannot hold the fallback corners and their neighbourhoods.
	MinDimension = 3

	placementAttempts = 100
	placementSuffix   = "_placement"
)

// Placement holds the resolved start (ball) and goal (hole) cells.
type Placement struct {
	Ball     Position
	Hole     Position
	Fallback bool // true if either position came from a fixed corner
}

// Place chooses ball and hole positions on a generated grid and forces each
// position and its 8-neighbourhood to fairway. It draws from its own stream,
// seeded with seed+"_placement", so placement never perturbs terrain shape.
func Place(ctx context.Context, g *Grid, seed string) (Placement, error) {
	if g.Width < MinDimension || g.Height < MinDimension {
		return Placement{}, fmt.Errorf("place on %dx%d: %w", g.Width, g.Height, ErrInvalidDimensions)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "terrain.place")
	defer span.End()

	r := rng.New(seed + placementSuffix)

	ball, ballFound := FindBallPosition(g, r)
	hole, holeFound := FindHolePosition(g, r)

	ForceFairway(g, ball)
	ForceFairway(g, hole)

	span.SetAttributes(
		attribute.Int("ball.x", ball.X),
		attribute.Int("ball.y", ball.Y),
		attribute.Int("hole.x", hole.X),
		attribute.Int("hole.y", hole.Y),
		attribute.Bool("ball.fallback", !ballFound),
		attribute.Bool("hole.fallback", !holeFound),
	)

	return Placement{
		Ball:     ball,
		Hole:     hole,
		Fallback: !ballFound || !holeFound,
	}, nil
}

// FindBallPosition picks a random column and scans the bottom band upward for a
// fairway cell, trying up to 100 columns. If none is found it returns (1, H-2)
// and false.
func FindBallPosition(g *Grid, r *rng.Random) (Position, bool) {
	top := bottomBandTop(g.Height)
	for i := 0; i < placementAttempts; i++ {
		x := r.IntRange(0, g.Width-1)
		for y := g.Height - 1; y >= top; y-- {
			if g.Cells[y][x] == CellFairway {
				return Pos(x, y), true
			}
		}
	}
	return Pos(1, g.Height-2), false
}

// FindHolePosition picks a random column and scans the top band downward for a
// fairway cell, trying up to 100 columns. If none is found it returns (W-2, 1)
// and false.
func FindHolePosition(g *Grid, r *rng.Random) (Position, bool) {
	bottom := topBandBottom(g.Height)
	for i := 0; i < placementAttempts; i++ {
		x := r.IntRange(0, g.Width-1)
		for y := 0; y < bottom; y++ {
			if g.Cells[y][x] == CellFairway {
				return Pos(x, y), true
			}
		}
	}
	return Pos(g.Width-2, 1), false
}

// bottomBandTop returns the first row of the bottom 10% band.
func bottomBandTop(height int) int {
	return height * 9 / 10
}

// topBandBottom returns the row just below the top 10% band. The band always
// holds at least one row.
func topBandBottom(height int) int {
	return max(1, height/10)
}

// ForceFairway sets a position and all eight of its neighbours to fairway.
// Off-grid neighbours are skipped.
func ForceFairway(g *Grid, p Position) {
	g.Set(p, CellFairway)
	for _, n := range p.Neighbours() {
		g.Set(n, CellFairway)
	}
}
