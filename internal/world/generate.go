package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dicegolf/internal/rng"
	"github.com/samdwyer/dicegolf/internal/telemetry"
)

const (
	// Default course dimensions
	DefaultWidth  = 10
	DefaultHeight = 15

	// Blob growth parameters
	minFairwaySize   = 10
	maxFairwaySize   = 30
	minHazardSize    = 10
	maxHazardSize    = 20
	cardinalGrowth   = 0.7
	diagonalGrowth   = 0.4 // trees only
	bottomFairways   = 2
	sandThreshold    = 0.33
	treeThreshold    = 0.66
	middleBlobDivide = 6
	hazardBlobDivide = 2
)

var (
	cardinalOffsets = []Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets = []Position{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

// Generate builds a width×height course from a seed. The result depends only on
// its arguments: the same seed and size always yield the same grid.
//
// Fairway blobs are laid first (one in the top quarter, height/6 in the middle
// half, two in the bottom quarter), then height/2 hazard blobs of sand, tree or
// water. Later blobs overwrite earlier ones.
func Generate(ctx context.Context, seed string, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "terrain.generate")
	defer span.End()

	startTime := time.Now()

	g := NewGrid(width, height, CellGrass)
	r := rng.New(seed)
	p := &painter{grid: g, rnd: r}

	// Top quarter
	p.fairway(r.IntRange(0, width-1), r.IntRange(0, height/4))

	// Middle half
	for i := 0; i < height/middleBlobDivide; i++ {
		p.fairway(r.IntRange(0, width-1), r.IntRange(height/4, 3*height/4))
	}

	// Bottom quarter
	for i := 0; i < bottomFairways; i++ {
		p.fairway(r.IntRange(0, width-1), r.IntRange(3*height/4, height-1))
	}

	hazards := height / hazardBlobDivide
	for i := 0; i < hazards; i++ {
		x := r.IntRange(0, width-1)
		y := r.IntRange(0, height-1)
		cell := hazardCell(r.Float64())
		p.paint(x, y, r.IntRange(minHazardSize, maxHazardSize), cell)
	}

	span.SetAttributes(
		attribute.String("terrain.seed", seed),
		attribute.Int("terrain.width", width),
		attribute.Int("terrain.height", height),
		attribute.Int("terrain.hazard_blobs", hazards),
		attribute.Int("terrain.fairway_cells", g.Count(CellFairway)),
		attribute.Int64("terrain.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return g, nil
}

// hazardCell maps a uniform draw to sand, tree or water in roughly equal thirds.
func hazardCell(v float64) Cell {
	switch {
	case v < sandThreshold:
		return CellSand
	case v < treeThreshold:
		return CellTree
	default:
		return CellWater
	}
}

// painter grows blobs on a grid from a shared random stream.
type painter struct {
	grid *Grid
	rnd  *rng.Random
}

// fairway paints a fairway blob of random size centred on (x, y).
func (p *painter) fairway(x, y int) {
	p.paint(x, y, p.rnd.IntRange(minFairwaySize, maxFairwaySize), CellFairway)
}

// paint grows a blob of up to size cells from (cx, cy) using a shuffled,
// de-duplicated candidate stack, then smooths it with a dilate/erode pass.
// Trees skip the smoothing and also grow diagonally.
func (p *painter) paint(cx, cy, size int, cell Cell) {
	stack := []Position{{cx, cy}}
	count := 0

	for len(stack) > 0 && count < size {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.grid.InBounds(pos) {
			continue
		}

		p.grid.Cells[pos.Y][pos.X] = cell
		count++

		for _, d := range cardinalOffsets {
			if p.rnd.Chance(cardinalGrowth) {
				stack = append(stack, pos.Add(d.X, d.Y))
			}
		}
		if cell == CellTree {
			for _, d := range diagonalOffsets {
				if p.rnd.Chance(diagonalGrowth) {
					stack = append(stack, pos.Add(d.X, d.Y))
				}
			}
		}

		p.rnd.Shuffle(len(stack), func(i, j int) { stack[i], stack[j] = stack[j], stack[i] })
		stack = dedupe(stack)
	}

	if cell != CellTree {
		dilate(p.grid, cell)
		erode(p.grid, cell)
	}
}

// dedupe removes repeated positions in place, keeping the first occurrence.
func dedupe(stack []Position) []Position {
	seen := make(map[Position]struct{}, len(stack))
	out := stack[:0]
	for _, pos := range stack {
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, pos)
	}
	return out
}

// dilate turns every cell 8-adjacent to a cell of the given type into that type.
func dilate(g *Grid, cell Cell) {
	src := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if src.Cells[y][x] != cell {
				continue
			}
			for _, n := range Pos(x, y).Neighbours() {
				g.Set(n, cell)
			}
		}
	}
}

// erode reverts to grass every cell of the given type that is not fully
// surrounded by its own type. Off-grid neighbours never count, so cells on the
// border always erode.
func erode(g *Grid, cell Cell) {
	src := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if src.Cells[y][x] != cell {
				continue
			}
			same := 0
			for _, n := range Pos(x, y).Neighbours() {
				if src.InBounds(n) && src.Cells[n.Y][n.X] == cell {
					same++
				}
			}
			if same < len(neighbourOffsets) {
				g.Cells[y][x] = CellGrass
			}
		}
	}
}
