package world

import (
	"errors"
	"strings"
)

// ErrInvalidDimensions is returned when a grid is requested with an unusable size.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Grid is a height-major rectangle of cells: Cells[y][x].
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// NewGrid creates a grid filled with the given cell.
func NewGrid(width, height int, fill Cell) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at the given position. Off-grid positions read as trees
// so callers treat them as impassable.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return CellTree
	}
	return g.Cells[p.Y][p.X]
}

// Set paints a cell. Off-grid positions are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if g.InBounds(p) {
		g.Cells[p.Y][p.X] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.Height)
	for y := range cells {
		cells[y] = append([]Cell(nil), g.Cells[y]...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Equal reports whether two grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells of the given type the grid holds.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Rows returns the grid as symbol strings, one per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y, row := range g.Cells {
		var b strings.Builder
		b.Grow(len(row))
		for _, c := range row {
			b.WriteByte(byte(c))
		}
		rows[y] = b.String()
	}
	return rows
}

// String renders the grid as newline-separated symbol rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// ParseGrid builds a grid from symbol rows as produced by Rows.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows), CellGrass)
	for y, row := range rows {
		if len(row) != width {
			return nil, ErrInvalidDimensions
		}
		for x := 0; x < width; x++ {
			c, err := ParseCell(row[x : x+1])
			if err != nil {
				return nil, err
			}
			g.Cells[y][x] = c
		}
	}
	return g, nil
}
