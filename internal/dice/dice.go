// Package dice provides the shot die: a turn-gated roller whose range depends
// on the surface the ball last landed on.
package dice

import (
	"time"

	"github.com/samdwyer/dicegolf/internal/world"
)

const (
	// DefaultMaxRoll is the roll range a fresh hole starts with.
	DefaultMaxRoll = 8

	fairwayMaxRoll  = 8
	sandMaxRoll     = 2
	baselineMaxRoll = 6
)

// Source is the random source a Dice draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Roll is the outcome of a single roll or putt.
type Roll struct {
	Result    int
	Timestamp time.Time
}

// Dice tracks the current roll range, the last roll and the turn lock.
//
// Rolling and putting lock the dice; the owner unlocks them once the roll has
// been resolved by a move or a wasted stroke.
type Dice struct {
	maxRoll  int
	lastRoll *Roll
	locked   bool
	src      Source
	now      func() time.Time
}

// New creates unlocked dice with the given starting range.
func New(initialMaxRoll int, src Source) *Dice {
	d := &Dice{src: src, now: time.Now}
	d.Reset(initialMaxRoll)
	return d
}

// MaxRoll returns the largest value the next roll can produce.
func (d *Dice) MaxRoll() int {
	return d.maxRoll
}

// LastRoll returns the most recent roll, if any.
func (d *Dice) LastRoll() (Roll, bool) {
	if d.lastRoll == nil {
		return Roll{}, false
	}
	return *d.lastRoll, true
}

// Locked reports whether rolling is currently forbidden.
func (d *Dice) Locked() bool {
	return d.locked
}

// Roll draws a value in [1, MaxRoll] and locks the dice.
// It returns false, without rolling, if the dice are locked.
func (d *Dice) Roll() (Roll, bool) {
	if d.locked {
		return Roll{}, false
	}
	return d.record(d.src.Intn(d.maxRoll) + 1), true
}

// Putt produces a roll of exactly 1 regardless of MaxRoll and locks the dice.
// It returns false, without rolling, if the dice are locked.
func (d *Dice) Putt() (Roll, bool) {
	if d.locked {
		return Roll{}, false
	}
	return d.record(1), true
}

func (d *Dice) record(result int) Roll {
	roll := Roll{Result: result, Timestamp: d.now()}
	d.lastRoll = &roll
	d.locked = true
	return roll
}

// Unlock allows the next roll.
func (d *Dice) Unlock() {
	d.locked = false
}

// Lock forbids rolling until Unlock or Reset.
func (d *Dice) Lock() {
	d.locked = true
}

// SetMaxRoll changes the roll range. Values below 1 are raised to 1.
func (d *Dice) SetMaxRoll(n int) {
	d.maxRoll = max(1, n)
}

// Land unlocks the dice and derives the next roll range from the cell the ball
// came to rest on.
func (d *Dice) Land(cell world.Cell) {
	d.Unlock()
	d.SetMaxRoll(MaxRollFor(cell))
}

// Reset returns the dice to unlocked, with no last roll and the given range.
func (d *Dice) Reset(initialMaxRoll int) {
	d.SetMaxRoll(initialMaxRoll)
	d.lastRoll = nil
	d.locked = false
}

// MaxRollFor returns the roll range granted by landing on a cell:
// sand slows the next shot, fairway gives the widest range, anything else is baseline.
func MaxRollFor(cell world.Cell) int {
	switch cell {
	case world.CellSand:
		return sandMaxRoll
	case world.CellFairway:
		return fairwayMaxRoll
	default:
		return baselineMaxRoll
	}
}
