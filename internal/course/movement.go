package course

import (
	"math"

	"github.com/samdwyer/dicegolf/internal/world"
)

// diagonal is the per-axis component of a unit diagonal.
const diagonal = 0.707

// directions lists the eight shot directions: NW, N, NE, W, E, SW, S, SE.
var directions = [8][2]float64{
	{-diagonal, -diagonal}, {0, -1}, {diagonal, -diagonal},
	{-1, 0}, {1, 0},
	{-diagonal, diagonal}, {0, 1}, {diagonal, diagonal},
}

// LandingPositions returns the cells the ball can reach with the given roll,
// in direction order. Targets off the grid or on trees or water are dropped.
// Diagonal reach is normalised so a roll of R travels about R cells in every
// direction.
func (t *Terrain) LandingPositions(roll int) []world.Position {
	out := make([]world.Position, 0, len(directions))
	for _, d := range directions {
		target := t.ball.Add(scale(d[0], roll), scale(d[1], roll))
		if !t.grid.InBounds(target) {
			continue
		}
		if t.grid.At(target).IsPassable() {
			out = append(out, target)
		}
	}
	return out
}

// scale multiplies a direction component by the roll, rounding away from zero.
func scale(component float64, roll int) int {
	v := component * float64(roll)
	if component > 0 {
		return int(math.Ceil(v))
	}
	return int(math.Floor(v))
}

// CanLand reports whether target is a legal landing cell for the roll.
func (t *Terrain) CanLand(roll int, target world.Position) bool {
	for _, p := range t.LandingPositions(roll) {
		if p == target {
			return true
		}
	}
	return false
}

// MoveBall moves the ball to target if it is a legal landing cell for the roll,
// recording the previous position as a stroke. It returns false and leaves the
// terrain untouched otherwise.
func (t *Terrain) MoveBall(roll int, target world.Position) bool {
	if !t.CanLand(roll, target) {
		return false
	}
	t.history = append(t.history, t.ball)
	t.ball = target
	return true
}

// WasteStroke records a stroke without moving the ball. It is used when a roll
// leaves no legal landing cell.
func (t *Terrain) WasteStroke() {
	t.history = append(t.history, t.ball)
}
