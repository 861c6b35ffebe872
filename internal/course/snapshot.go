package course

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dicegolf/internal/world"
)

// ErrInvalidSnapshot is returned when a snapshot cannot be turned back into a terrain.
var ErrInvalidSnapshot = errors.New("invalid terrain snapshot")

// Snapshot is the serialisable form of a terrain: the payload a server hands
// a client, and the stroke history a client hands back for storage.
type Snapshot struct {
	Map           [][]string       `json:"map"`
	BallPosition  world.Position   `json:"ball_position"`
	HolePosition  world.Position   `json:"hole_position"`
	StartPosition world.Position   `json:"start_position"`
	Par           int              `json:"par"`
	Seed          string           `json:"seed"`
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	History       []world.Position `json:"history,omitempty"`
}

// Snapshot captures the terrain's current state.
func (t *Terrain) Snapshot() Snapshot {
	m := make([][]string, t.height)
	for y := range m {
		m[y] = make([]string, t.width)
		for x := range m[y] {
			m[y][x] = t.grid.Cells[y][x].Symbol()
		}
	}

	return Snapshot{
		Map:           m,
		BallPosition:  t.ball,
		HolePosition:  t.hole,
		StartPosition: t.start,
		Par:           t.par,
		Seed:          t.seed,
		Width:         t.width,
		Height:        t.height,
		History:       t.History(),
	}
}

// FromSnapshot rebuilds a terrain from a snapshot without regenerating it.
func FromSnapshot(s Snapshot) (*Terrain, error) {
	if s.Width < world.MinDimension || s.Height < world.MinDimension || len(s.Map) != s.Height {
		return nil, fmt.Errorf("%w: map is %d rows for %dx%d", ErrInvalidSnapshot, len(s.Map), s.Width, s.Height)
	}

	grid := world.NewGrid(s.Width, s.Height, world.CellGrass)
	for y, row := range s.Map {
		if len(row) != s.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSnapshot, y, len(row), s.Width)
		}
		for x, symbol := range row {
			c, err := world.ParseCell(symbol)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d): %v", ErrInvalidSnapshot, x, y, err)
			}
			grid.Cells[y][x] = c
		}
	}

	for _, p := range []world.Position{s.BallPosition, s.HolePosition, s.StartPosition} {
		if !grid.InBounds(p) {
			return nil, fmt.Errorf("%w: position %v off grid", ErrInvalidSnapshot, p)
		}
	}
	if !grid.At(s.BallPosition).IsPassable() {
		return nil, fmt.Errorf("%w: ball on %v", ErrInvalidSnapshot, grid.At(s.BallPosition))
	}

	par := s.Par
	if par <= 0 {
		par = Par(s.Height)
	}

	return &Terrain{
		seed:    s.Seed,
		width:   s.Width,
		height:  s.Height,
		par:     par,
		grid:    grid,
		ball:    s.BallPosition,
		hole:    s.HolePosition,
		start:   s.StartPosition,
		history: append([]world.Position(nil), s.History...),
	}, nil
}
