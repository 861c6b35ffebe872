// Package rng provides a deterministic pseudo-random stream derived from a string seed.
//
// The stream is a Park–Miller minimal standard generator. Two Random values built from
// the same seed produce identical sequences, and no Random ever touches the global
// math/rand source, so independent generations never interfere with each other.
package rng

const (
	multiplier = 16807
	modulus    = 2147483647
)

// Random is a seeded Park–Miller stream. The zero value is not usable; call New.
type Random struct {
	state int64
}

// New creates a stream from an arbitrary string seed.
func New(seed string) *Random {
	return &Random{state: hashSeed(seed)}
}

// hashSeed folds the seed into a 32-bit integer (hash*31 + code unit, wrapping),
// takes its absolute value and reduces it into the generator's state range.
// A zero state would lock the generator at zero, so it is replaced with 1.
func hashSeed(seed string) int64 {
	var h int32
	for _, c := range utf16Units(seed) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	v %= modulus
	if v == 0 {
		v = 1
	}
	return v
}

// utf16Units returns the UTF-16 code units of s so seeds hash the same way
// browser clients hash them.
func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

// Float64 returns the next value in [0, 1).
func (r *Random) Float64() float64 {
	r.state = (r.state * multiplier) % modulus
	return float64(r.state-1) / float64(modulus-1)
}

// IntRange returns an integer in [min, max]. It consumes exactly one value from the stream.
func (r *Random) IntRange(min, max int) int {
	return int(r.Float64()*float64(max-min+1)) + min
}

// Chance reports whether the next value falls below p.
func (r *Random) Chance(p float64) bool {
	return r.Float64() < p
}

// Shuffle performs a Fisher–Yates shuffle of n elements, consuming n-1 values.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(r.Float64() * float64(i+1))
		swap(i, j)
	}
}
