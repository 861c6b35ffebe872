package world

import (
	"encoding/json"
	"testing"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		input string
		want  Cell
		valid bool
	}{
		{"g", CellGrass, true},
		{"f", CellFairway, true},
		{"s", CellSand, true},
		{"t", CellTree, true},
		{"w", CellWater, true},
		{"b", CellGrass, false},
		{"", CellGrass, false},
		{"gg", CellGrass, false},
	}

	for _, tt := range tests {
		got, err := ParseCell(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseCell(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseCell(%q) should be invalid, got no error", tt.input)
		}
		if tt.valid && got != tt.want {
			t.Errorf("ParseCell(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCellIsPassable(t *testing.T) {
	tests := []struct {
		cell Cell
		want bool
	}{
		{CellGrass, true},
		{CellFairway, true},
		{CellSand, true},
		{CellTree, false},
		{CellWater, false},
	}

	for _, tt := range tests {
		if got := tt.cell.IsPassable(); got != tt.want {
			t.Errorf("%v.IsPassable() = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestGridAtOffGrid(t *testing.T) {
	g := NewGrid(3, 3, CellGrass)
	if g.At(Pos(-1, 0)).IsPassable() {
		t.Error("off-grid cells must read as impassable")
	}
	g.Set(Pos(5, 5), CellWater) // ignored
	if g.Count(CellWater) != 0 {
		t.Error("Set off grid should be ignored")
	}
}

func TestParseGrid(t *testing.T) {
	rows := []string{"gfs", "tww"}
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("ParseGrid size = %dx%d, want 3x2", g.Width, g.Height)
	}
	if g.At(Pos(2, 0)) != CellSand || g.At(Pos(0, 1)) != CellTree {
		t.Errorf("ParseGrid cells wrong: %v", g)
	}
	if g.String() != "gfs\ntww" {
		t.Errorf("String() = %q", g.String())
	}

	if _, err := ParseGrid([]string{"gg", "g"}); err == nil {
		t.Error("ragged rows should fail")
	}
	if _, err := ParseGrid([]string{"gx"}); err == nil {
		t.Error("unknown symbols should fail")
	}
}

func TestPositionJSON(t *testing.T) {
	data, err := json.Marshal(Pos(3, 7))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[3,7]" {
		t.Errorf("Marshal = %s, want [3,7]", data)
	}

	var p Position
	if err := json.Unmarshal([]byte("[4,2]"), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p != Pos(4, 2) {
		t.Errorf("Unmarshal = %v, want (4,2)", p)
	}
}

func TestManhattan(t *testing.T) {
	if got := Pos(1, 1).Manhattan(Pos(4, -3)); got != 7 {
		t.Errorf("Manhattan = %d, want 7", got)
	}
}
