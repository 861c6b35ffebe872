package game

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dicegolf/internal/course"
	"github.com/samdwyer/dicegolf/internal/telemetry"
)

// ErrStaleLoad is returned by Loader.Load when a newer load superseded it.
var ErrStaleLoad = errors.New("terrain load superseded")

// Fetcher produces a hole for a seed and size, locally or from a remote service.
type Fetcher func(ctx context.Context, seed string, width, height int) (*course.Terrain, error)

// LocalFetcher generates holes in-process.
func LocalFetcher(ctx context.Context, seed string, width, height int) (*course.Terrain, error) {
	return course.New(ctx, seed, width, height)
}

// Loader runs hole fetches with last-request-wins semantics: starting a load
// cancels the one in flight, and a superseded load never returns its result.
type Loader struct {
	fetch Fetcher

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	loading bool
}

// NewLoader creates a loader around a fetcher.
func NewLoader(fetch Fetcher) *Loader {
	return &Loader{fetch: fetch}
}

// Loading reports whether a load is in flight.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Load fetches a hole, blocking until it arrives. It returns ErrStaleLoad if
// another Load started before this one finished.
func (l *Loader) Load(ctx context.Context, seed string, width, height int) (*course.Terrain, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.load")
	defer span.End()
	span.SetAttributes(
		attribute.String("terrain.seed", seed),
		attribute.Int("terrain.width", width),
		attribute.Int("terrain.height", height),
	)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.loading = true
	l.mu.Unlock()

	t, err := l.fetch(ctx, seed, width, height)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		span.AddEvent("load.stale")
		return nil, ErrStaleLoad
	}
	cancel()
	l.cancel = nil
	l.loading = false
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return t, nil
}
