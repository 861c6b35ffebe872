package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dicegolf/internal/course"
	"github.com/samdwyer/dicegolf/internal/dice"
	"github.com/samdwyer/dicegolf/internal/telemetry"
	"github.com/samdwyer/dicegolf/internal/world"
)

// ErrNoTerrain is returned when a session operation needs a hole but none is loaded.
var ErrNoTerrain = errors.New("no terrain loaded")

// Session owns one hole and its dice and runs the turn cycle:
// roll, pick a landing cell, move, adjust the dice, check for the hole.
//
// A session is driven by one caller at a time; it holds no locks.
type Session struct {
	terrain        *course.Terrain
	dice           *dice.Dice
	initialMaxRoll int
	landing        []world.Position
	listeners      []Listener
}

// NewSession creates an empty session around the given dice.
// initialMaxRoll is restored on the dice every time a hole is loaded.
func NewSession(d *dice.Dice, initialMaxRoll int) *Session {
	return &Session{
		dice:           d,
		initialMaxRoll: initialMaxRoll,
	}
}

// Subscribe registers a listener for session events.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}

// Init generates a new hole and resets the dice.
func (s *Session) Init(ctx context.Context, seed string, width, height int) error {
	t, err := course.New(ctx, seed, width, height)
	if err != nil {
		return fmt.Errorf("init hole: %w", err)
	}
	s.Load(t)
	return nil
}

// Regenerate re-seeds the current hole in place and resets the dice.
func (s *Session) Regenerate(ctx context.Context, seed string, width, height int) error {
	if s.terrain == nil {
		return s.Init(ctx, seed, width, height)
	}
	if err := s.terrain.Regenerate(ctx, seed, width, height); err != nil {
		return fmt.Errorf("regenerate hole: %w", err)
	}
	s.reset()
	return nil
}

// Load adopts an already built hole, for example one fetched from a server,
// and resets the dice.
func (s *Session) Load(t *course.Terrain) {
	s.terrain = t
	s.reset()
}

func (s *Session) reset() {
	s.dice.Reset(s.initialMaxRoll)
	s.landing = nil
	if s.terrain.Finished() {
		s.dice.Lock()
	}
	s.emit(Event{Type: EventLoaded, To: s.terrain.Ball(), Strokes: s.terrain.Strokes()})
}

// Terrain returns the loaded hole, or nil.
func (s *Session) Terrain() *course.Terrain {
	return s.terrain
}

// Dice returns the session's dice.
func (s *Session) Dice() *dice.Dice {
	return s.dice
}

// State returns where the session is in its turn cycle.
func (s *Session) State() State {
	switch {
	case s.terrain == nil:
		return StateEmpty
	case s.terrain.Finished():
		return StateFinished
	case s.dice.Locked():
		return StateAiming
	default:
		return StateReady
	}
}

// Roll rolls the dice and computes the landing set. It returns false, and
// does nothing, if no hole is loaded, the dice are locked or the hole is
// finished. A roll with no legal landing cell costs a stroke and unlocks the
// dice for another try.
func (s *Session) Roll(ctx context.Context) (int, bool) {
	return s.shoot(ctx, "session.roll", s.dice.Roll)
}

// Putt is Roll with the result fixed at 1.
func (s *Session) Putt(ctx context.Context) (int, bool) {
	return s.shoot(ctx, "session.putt", s.dice.Putt)
}

func (s *Session) shoot(ctx context.Context, name string, throw func() (dice.Roll, bool)) (int, bool) {
	if s.terrain == nil || s.terrain.Finished() {
		return 0, false
	}
	roll, ok := throw()
	if !ok {
		return 0, false
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, name)
	defer span.End()

	s.landing = s.terrain.LandingPositions(roll.Result)
	span.SetAttributes(
		attribute.Int("roll.result", roll.Result),
		attribute.Int("roll.max", s.dice.MaxRoll()),
		attribute.Int("landing.count", len(s.landing)),
	)
	s.emit(Event{Type: EventRolled, Roll: roll.Result, From: s.terrain.Ball(), Strokes: s.terrain.Strokes()})

	if len(s.landing) == 0 {
		s.terrain.WasteStroke()
		s.landing = nil
		s.dice.Unlock()
		span.AddEvent("stroke.wasted")
		s.emit(Event{Type: EventStrokeWasted, Roll: roll.Result, From: s.terrain.Ball(), To: s.terrain.Ball(), Strokes: s.terrain.Strokes()})
	}

	return roll.Result, true
}

// LandingPositions returns a copy of the pending landing set.
func (s *Session) LandingPositions() []world.Position {
	return slices.Clone(s.landing)
}

// IsLanding reports whether p is in the pending landing set.
func (s *Session) IsLanding(p world.Position) bool {
	return slices.Contains(s.landing, p)
}

// MoveTo plays the pending roll to target. On success the dice unlock with a
// range set by the cell landed on, or stay locked if the ball is in the hole.
// It returns false, changing nothing, when there is no pending roll or target
// is not a legal landing cell.
func (s *Session) MoveTo(ctx context.Context, target world.Position) bool {
	if s.terrain == nil || s.terrain.Finished() || !s.dice.Locked() {
		return false
	}
	roll, ok := s.dice.LastRoll()
	if !ok {
		return false
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.move", trace.WithAttributes(
		attribute.Int("roll.result", roll.Result),
		attribute.Int("target.x", target.X),
		attribute.Int("target.y", target.Y),
	))
	defer span.End()

	from := s.terrain.Ball()
	if !s.terrain.MoveBall(roll.Result, target) {
		span.AddEvent("move.rejected")
		s.emit(Event{Type: EventMoveRejected, Roll: roll.Result, From: from, To: target, Strokes: s.terrain.Strokes()})
		return false
	}

	cell := s.terrain.CellAt(target)
	s.landing = nil
	s.dice.Land(cell)
	span.SetAttributes(
		attribute.String("landed.cell", cell.String()),
		attribute.Int("strokes", s.terrain.Strokes()),
		attribute.Int("distance", s.terrain.Distance()),
	)
	s.emit(Event{Type: EventMoved, Roll: roll.Result, From: from, To: target, Strokes: s.terrain.Strokes()})

	if s.terrain.Finished() {
		s.dice.Lock()
		span.AddEvent("hole.finished")
		s.emit(Event{Type: EventFinished, To: target, Strokes: s.terrain.Strokes()})
	}
	return true
}

// Finished reports whether the ball is in the hole.
func (s *Session) Finished() bool {
	return s.terrain != nil && s.terrain.Finished()
}

// Strokes returns the strokes taken on the current hole.
func (s *Session) Strokes() int {
	if s.terrain == nil {
		return 0
	}
	return s.terrain.Strokes()
}

// Distance returns the Manhattan distance from ball to hole.
func (s *Session) Distance() int {
	if s.terrain == nil {
		return 0
	}
	return s.terrain.Distance()
}

// Par returns the current hole's par.
func (s *Session) Par() int {
	if s.terrain == nil {
		return 0
	}
	return s.terrain.Par()
}

// StrokeLog returns the ball's path for the current hole.
func (s *Session) StrokeLog() ([]world.Position, error) {
	if s.terrain == nil {
		return nil, ErrNoTerrain
	}
	return s.terrain.StrokeLog(), nil
}
