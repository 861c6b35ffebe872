package game

import "github.com/samdwyer/dicegolf/internal/world"

// EventType identifies a session change.
type EventType int

const (
	// EventLoaded fires when a hole is initialised or regenerated.
	EventLoaded EventType = iota
	// EventRolled fires after a roll or putt produced a landing set.
	EventRolled
	// EventMoved fires after the ball moved.
	EventMoved
	// EventMoveRejected fires when a requested target was not a legal landing cell.
	EventMoveRejected
	// EventStrokeWasted fires when a roll had no legal landing cell.
	EventStrokeWasted
	// EventFinished fires when the ball drops into the hole.
	EventFinished
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventLoaded:
		return "loaded"
	case EventRolled:
		return "rolled"
	case EventMoved:
		return "moved"
	case EventMoveRejected:
		return "move_rejected"
	case EventStrokeWasted:
		return "stroke_wasted"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event describes one change to a session. Fields that do not apply to the
// event type are left zero.
type Event struct {
	Type    EventType
	Roll    int
	From    world.Position
	To      world.Position
	Strokes int
}

// Listener receives session events synchronously, in order.
type Listener func(Event)
