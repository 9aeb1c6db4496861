package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/labymap"
	"github.com/samdwyer/labyrinth/internal/labyrinth"
	"github.com/samdwyer/labyrinth/internal/telemetry"
	"github.com/samdwyer/labyrinth/internal/ui"
)

// Game drives a Session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	view     *labymap.Map
	running  bool
	aiming   bool // next arrow key fires instead of moving
}

// New loads the configured level and opens the terminal.
func New(ctx context.Context, cfg Config) (*Game, error) {
	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, err
	}
	def := registry.GetByID(cfg.Level)
	if def == nil {
		return nil, fmt.Errorf("unknown level %q", cfg.Level)
	}

	session, err := NewSession(ctx, def)
	if err != nil {
		return nil, err
	}
	view, err := labymap.New(session.Labyrinth())
	if err != nil {
		return nil, err
	}
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		session:  session,
		view:     view,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.String("level.id", g.session.Level.ID),
	)

	defer g.screen.Close()

	for g.running {
		if err := g.renderer.Render(ctx, g.view, g.session.Player(), g.statusLines()); err != nil {
			return err
		}
		g.handleInput(ctx)
	}

	span.SetAttributes(
		attribute.String("outcome", g.session.State().String()),
		attribute.Int("turns", g.session.Turns()),
	)
	return nil
}

// statusLines describes the player and the last action.
func (g *Game) statusLines() []string {
	p := g.session.Player()
	treasure := "no"
	if p.HasTreasure {
		treasure = "yes"
	}
	l := g.session.Labyrinth()

	help := "arrows: move  f+arrow: shoot  t: take  q: quit"
	if g.aiming {
		help = "Shoot which way? (arrow key)"
	}
	if g.session.State() == StateEscaped {
		help = "Press any key to leave."
	}

	return []string{
		fmt.Sprintf("%s  Bullets: %d  Treasure: %s  Explored: %d/%d  Deaths: %d",
			g.session.Level.Name, p.Bullets, treasure, g.session.Visited(), l.Width()*l.Height(), p.Deaths),
		g.session.LastMessage,
		help,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if g.session.State() == StateEscaped {
		g.running = false
		return
	}

	var err error
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		if g.aiming {
			g.aiming = false
			return
		}
		g.running = false

	case tcell.KeyUp:
		err = g.act(ctx, labyrinth.North)
	case tcell.KeyDown:
		err = g.act(ctx, labyrinth.South)
	case tcell.KeyLeft:
		err = g.act(ctx, labyrinth.West)
	case tcell.KeyRight:
		err = g.act(ctx, labyrinth.East)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'f', 'F':
			g.aiming = true
		case 't', 'T':
			err = g.session.Take(ctx)
		case 'q', 'Q':
			g.running = false
		}
	}

	// Errors are reported to the player and play continues.
	if err != nil {
		g.session.LastMessage = "Error: " + err.Error()
	}
}

// act moves or, after 'f', shoots in direction d.
func (g *Game) act(ctx context.Context, d labyrinth.Direction) error {
	if g.aiming {
		g.aiming = false
		return g.session.Shoot(ctx, d)
	}
	return g.session.Move(ctx, d)
}
