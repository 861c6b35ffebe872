package world

import (
	"encoding/json"
	"fmt"
)

// Position is a cell coordinate on the grid. X grows to the right, Y grows downward.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the taxicab distance between two positions.
func (p Position) Manhattan(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Neighbours returns the eight surrounding positions, ignoring grid bounds.
func (p Position) Neighbours() []Position {
	out := make([]Position, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		out = append(out, p.Add(d.X, d.Y))
	}
	return out
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MarshalJSON encodes the position as an [x, y] pair.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON decodes an [x, y] pair.
func (p *Position) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode position: %w", err)
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// neighbourOffsets are the 8-neighbourhood offsets.
var neighbourOffsets = []Position{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
