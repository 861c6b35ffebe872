// Package world provides course terrain generation and ball/hole placement.
package world

import "fmt"

// Cell represents a single terrain cell. The value doubles as the cell's
// one-letter symbol in serialized maps.
type Cell byte

const (
	// CellGrass is the default rough surrounding everything else.
	CellGrass Cell = 'g'
	// CellFairway is the preferred surface; it widens the next roll.
	CellFairway Cell = 'f'
	// CellSand is a hazard that can be landed on but shortens the next roll.
	CellSand Cell = 's'
	// CellTree blocks landing.
	CellTree Cell = 't'
	// CellWater blocks landing.
	CellWater Cell = 'w'
)

// Cells lists every cell type in a stable order.
var Cells = []Cell{CellGrass, CellFairway, CellSand, CellTree, CellWater}

// IsPassable returns true if the ball may land on the cell.
func (c Cell) IsPassable() bool {
	return c != CellTree && c != CellWater
}

// Symbol returns the cell's one-letter map symbol.
func (c Cell) Symbol() string {
	return string(rune(c))
}

// String returns the cell's name.
func (c Cell) String() string {
	switch c {
	case CellGrass:
		return "grass"
	case CellFairway:
		return "fairway"
	case CellSand:
		return "sand"
	case CellTree:
		return "tree"
	case CellWater:
		return "water"
	default:
		return "unknown"
	}
}

// ParseCell converts a one-letter map symbol into a Cell.
func ParseCell(symbol string) (Cell, error) {
	if len(symbol) == 1 {
		c := Cell(symbol[0])
		for _, known := range Cells {
			if c == known {
				return c, nil
			}
		}
	}
	return CellGrass, fmt.Errorf("unknown cell symbol %q", symbol)
}
