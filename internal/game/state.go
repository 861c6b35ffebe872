// Package game provides hole sessions, the turn loop and the terminal front end.
package game

// State represents where a session is in its turn cycle.
type State int

const (
	// StateEmpty means no hole has been loaded yet.
	StateEmpty State = iota
	// StateReady means the dice are unlocked and a roll or putt is allowed.
	StateReady
	// StateAiming means a roll is pending and the player must pick a landing cell.
	StateAiming
	// StateFinished means the ball is in the hole; no more rolls this hole.
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	case StateAiming:
		return "aiming"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
