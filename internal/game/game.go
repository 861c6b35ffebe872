package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dicegolf/internal/course"
	"github.com/samdwyer/dicegolf/internal/dice"
	"github.com/samdwyer/dicegolf/internal/gamedata"
	"github.com/samdwyer/dicegolf/internal/telemetry"
	"github.com/samdwyer/dicegolf/internal/ui"
)

// loadResult carries a finished hole fetch back to the event loop.
type loadResult struct {
	token   int
	seed    string
	terrain *course.Terrain
	err     error
}

// Game is the terminal front end: it draws a session and turns key presses
// and mouse clicks into session operations.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	session   *Session
	loader    *Loader
	cfg       Config
	seeds     *rand.Rand
	seed      string
	loadToken int
	message   string
	running   bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to the given screen.
func NewWithScreen(cfg Config, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}

	diceSeed := cfg.DiceSeed
	if diceSeed == 0 {
		diceSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(diceSeed))

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  NewSession(dice.New(cfg.InitialMaxRoll, rng), cfg.InitialMaxRoll),
		loader:   NewLoader(LocalFetcher),
		cfg:      cfg,
		seeds:    rng,
		running:  true,
	}
	g.session.Subscribe(g.onEvent)
	return g, nil
}

// Session returns the session the game drives.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	initCtx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Seed
	if seed == "" {
		seed = RandomSeed(g.seeds)
	}
	initSpan.SetAttributes(
		attribute.String("hole.seed", seed),
		attribute.Int("hole.width", g.cfg.Width),
		attribute.Int("hole.height", g.cfg.Height),
	)
	g.startLoad(initCtx, seed)
	initSpan.End()

	for g.running {
		g.render()

		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		g.handleEvent(ctx, ev)
	}

	g.screen.Close()
	return nil
}

// startLoad fetches a hole in the background. Only the most recent load is
// applied; older results are dropped when they arrive.
func (g *Game) startLoad(ctx context.Context, seed string) {
	g.loadToken++
	token := g.loadToken
	g.message = "Loading hole " + seed + "..."

	go func() {
		t, err := g.loader.Load(ctx, seed, g.cfg.Width, g.cfg.Height)
		if errors.Is(err, ErrStaleLoad) {
			return
		}
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(loadResult{token: token, seed: seed, terrain: t, err: err}))
	}()
}

// applyLoad installs a finished load unless a newer one has been started.
func (g *Game) applyLoad(res loadResult) {
	if res.token != g.loadToken {
		return
	}
	if res.err != nil {
		g.message = "Could not load hole: " + res.err.Error()
		return
	}
	g.seed = res.seed
	g.session.Load(res.terrain)
}

// loading reports whether input that needs a hole should be ignored.
func (g *Game) loading() bool {
	return g.loader.Loading() || g.session.Terrain() == nil
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventInterrupt:
		if res, ok := ev.Data().(loadResult); ok {
			g.applyLoad(res)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	switch {
	case r == 'q' || r == 'Q':
		g.running = false
	case r == 'n':
		g.startLoad(ctx, RandomSeed(g.seeds))
	case g.loading():
		g.message = "Still loading..."
	case r == 'r':
		if _, ok := g.session.Roll(ctx); !ok {
			g.message = g.blockedMessage()
		}
	case r == 'p':
		if _, ok := g.session.Putt(ctx); !ok {
			g.message = g.blockedMessage()
		}
	case r == 'x':
		if err := g.session.Regenerate(ctx, g.seed, g.cfg.Width, g.cfg.Height); err != nil {
			g.message = err.Error()
		}
	case r >= '1' && r <= '9':
		g.chooseLanding(ctx, int(r-'1'))
	}
}

// handleMouseEvent moves the ball to a clicked landing cell.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 || g.loading() {
		return
	}
	x, y := ev.Position()
	if p, ok := ui.CellAt(g.session.Terrain(), x, y); ok {
		g.session.MoveTo(ctx, p)
	}
}

// chooseLanding plays the pending roll to the i-th landing option.
func (g *Game) chooseLanding(ctx context.Context, i int) {
	landing := g.session.LandingPositions()
	if i >= len(landing) {
		g.message = "No landing option " + ui.OptionLabel(i)
		return
	}
	g.session.MoveTo(ctx, landing[i])
}

func (g *Game) blockedMessage() string {
	if g.session.Finished() {
		return "Hole finished. Press n for a new hole."
	}
	return "Pick a landing cell first."
}

// onEvent turns session events into the status message.
func (g *Game) onEvent(ev Event) {
	switch ev.Type {
	case EventLoaded:
		g.message = "New hole. Press r to roll or p to putt."
	case EventRolled:
		g.message = fmt.Sprintf("Rolled %d. Pick a numbered cell.", ev.Roll)
	case EventStrokeWasted:
		g.message = fmt.Sprintf("Rolled %d: nowhere to land. Stroke lost, roll again.", ev.Roll)
	case EventMoveRejected:
		g.message = fmt.Sprintf("Can't land on %v with a %d.", ev.To, ev.Roll)
	case EventMoved:
		g.message = fmt.Sprintf("Landed on %v. Roll again.", g.session.Terrain().CellAt(ev.To))
	case EventFinished:
		g.message = fmt.Sprintf("In the hole in %d (par %d)!", ev.Strokes, g.session.Par())
	}
}

// render draws the current frame.
func (g *Game) render() {
	g.renderer.Render(ui.Frame{
		Terrain: g.session.Terrain(),
		Landing: g.session.LandingPositions(),
		Status:  g.statusLines(),
	})
}

func (g *Game) statusLines() []string {
	lines := []string{g.message}
	if t := g.session.Terrain(); t != nil {
		d := g.session.Dice()
		lines = append(lines,
			fmt.Sprintf("Hole %s  Par %d  Strokes %d  Distance %d", t.Seed(), t.Par(), t.Strokes(), t.Distance()),
			fmt.Sprintf("Dice 1-%d  %s", d.MaxRoll(), g.session.State()),
		)
	}
	lines = append(lines, strings.Join([]string{"r roll", "p putt", "1-8/click move", "x restart", "n new hole", "q quit"}, "  "))
	return lines
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
