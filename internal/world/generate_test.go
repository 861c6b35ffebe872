package world

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/dicegolf/internal/rng"
)

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		seed          string
		width, height int
	}{
		{"abc", 10, 15},
		{"not00set", DefaultWidth, DefaultHeight},
		{"", 7, 9},
		{"wide-one", 40, 12},
		{"tall-one", 12, 60},
	}

	for _, tt := range tests {
		g1, err := Generate(ctx, tt.seed, tt.width, tt.height)
		if err != nil {
			t.Fatalf("Generate(%q): %v", tt.seed, err)
		}
		g2, err := Generate(ctx, tt.seed, tt.width, tt.height)
		if err != nil {
			t.Fatalf("Generate(%q): %v", tt.seed, err)
		}

		if g1.Width != tt.width || g1.Height != tt.height {
			t.Errorf("Generate(%q) size = %dx%d, want %dx%d", tt.seed, g1.Width, g1.Height, tt.width, tt.height)
		}

		for y := 0; y < g1.Height; y++ {
			for x := 0; x < g1.Width; x++ {
				if g1.Cells[y][x] != g2.Cells[y][x] {
					t.Errorf("seed %q: cell mismatch at (%d,%d): %v != %v", tt.seed, x, y, g1.Cells[y][x], g2.Cells[y][x])
				}
			}
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	g1, err := Generate(ctx, "seed-one", 20, 30)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	g2, err := Generate(ctx, "seed-two", 20, 30)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if g1.Equal(g2) {
		t.Error("courses with different seeds should not be identical")
	}
}

func TestGenerateOnlyKnownCells(t *testing.T) {
	g, err := Generate(context.Background(), "cells", 25, 40)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	known := make(map[Cell]bool)
	for _, c := range Cells {
		known[c] = true
	}
	for y, row := range g.Cells {
		for x, c := range row {
			if !known[c] {
				t.Fatalf("unknown cell %q at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 10},
		{10, 0},
		{-1, 5},
	}

	for _, tt := range tests {
		_, err := Generate(context.Background(), "abc", tt.width, tt.height)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Generate(%d, %d) error = %v, want ErrInvalidDimensions", tt.width, tt.height, err)
		}
	}
}

func TestHazardCell(t *testing.T) {
	tests := []struct {
		v    float64
		want Cell
	}{
		{0, CellSand},
		{0.32, CellSand},
		{0.33, CellTree},
		{0.65, CellTree},
		{0.66, CellWater},
		{0.99, CellWater},
	}

	for _, tt := range tests {
		if got := hazardCell(tt.v); got != tt.want {
			t.Errorf("hazardCell(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	stack := []Position{{1, 1}, {2, 2}, {1, 1}, {3, 3}, {2, 2}}
	got := dedupe(stack)
	want := []Position{{1, 1}, {2, 2}, {3, 3}}

	if len(got) != len(want) {
		t.Fatalf("dedupe() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedupe()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDilateThenErodeKeepsInteriorCell(t *testing.T) {
	g := NewGrid(5, 5, CellGrass)
	g.Set(Pos(2, 2), CellFairway)

	dilate(g, CellFairway)
	if got := g.Count(CellFairway); got != 9 {
		t.Fatalf("after dilate: %d fairway cells, want 9", got)
	}

	erode(g, CellFairway)
	if got := g.Count(CellFairway); got != 1 {
		t.Fatalf("after erode: %d fairway cells, want 1", got)
	}
	if g.At(Pos(2, 2)) != CellFairway {
		t.Error("centre cell should survive dilate/erode")
	}
}

func TestErodeRemovesBorderCells(t *testing.T) {
	g := NewGrid(5, 5, CellGrass)
	g.Set(Pos(0, 0), CellWater)

	dilate(g, CellWater)
	erode(g, CellWater)

	if got := g.Count(CellWater); got != 0 {
		t.Errorf("border blob should erode away, %d water cells remain", got)
	}
}

func TestPaintTreeSkipsSmoothing(t *testing.T) {
	g := NewGrid(9, 9, CellGrass)
	p := &painter{grid: g, rnd: rng.New("trees")}

	p.paint(4, 4, 1, CellTree)

	// A one-cell tree blob is left exactly as painted.
	if got := g.Count(CellTree); got != 1 {
		t.Errorf("tree blob of size 1 painted %d cells, want 1", got)
	}
	if g.At(Pos(4, 4)) != CellTree {
		t.Error("tree blob centre not painted")
	}
}

func TestPaintRespectsSize(t *testing.T) {
	g := NewGrid(30, 30, CellGrass)
	p := &painter{grid: g, rnd: rng.New("sized")}

	p.paint(15, 15, 12, CellTree)

	if got := g.Count(CellTree); got > 12 {
		t.Errorf("tree blob painted %d cells, want at most 12", got)
	}
}

func TestPaintOffGridCentre(t *testing.T) {
	g := NewGrid(5, 5, CellGrass)
	p := &painter{grid: g, rnd: rng.New("off")}

	p.paint(-3, -3, 20, CellSand)

	if got := g.Count(CellSand); got != 0 {
		t.Errorf("off-grid blob painted %d cells, want 0", got)
	}
}
