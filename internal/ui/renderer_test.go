package ui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/labymap"
	"github.com/samdwyer/labyrinth/internal/labyrinth"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(80, 24)

	theme, err := gamedata.LoadTheme()
	if err != nil {
		t.Fatalf("LoadTheme() error: %v", err)
	}
	return NewRenderer(screen, theme)
}

func TestScreenX(t *testing.T) {
	tests := []struct {
		mx, want int
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 4},
		{4, 6},
	}
	for _, tt := range tests {
		if got := ScreenX(tt.mx); got != tt.want {
			t.Errorf("ScreenX(%d) = %d, want %d", tt.mx, got, tt.want)
		}
	}
}

func TestRenderDrawsMapAndPlayer(t *testing.T) {
	r := newTestRenderer(t)

	l, err := labyrinth.New(2, 1)
	if err != nil {
		t.Fatalf("labyrinth.New error: %v", err)
	}
	if err := l.SetInhabitant(labyrinth.Coordinate{X: 0, Y: 0}, labyrinth.Minotaur); err != nil {
		t.Fatalf("SetInhabitant error: %v", err)
	}
	if err := l.SetItem(labyrinth.Coordinate{X: 1, Y: 0}, labyrinth.Treasure); err != nil {
		t.Fatalf("SetItem error: %v", err)
	}
	m, err := labymap.New(l)
	if err != nil {
		t.Fatalf("labymap.New error: %v", err)
	}
	player := entity.NewPlayer(labyrinth.Coordinate{X: 1, Y: 0}, 0)

	if err := r.Render(context.Background(), m, player, []string{"Hello"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	rows := []string{
		"┌──┬──┐",
		"│M │&T│",
		"└──┴──┘",
	}
	for y, row := range rows {
		x := 0
		for _, want := range row {
			if got, _ := r.screen.Content(x, y); got != want {
				t.Errorf("Content(%d, %d) = %q, want %q", x, y, got, want)
			}
			x++
		}
	}

	if got, _ := r.screen.Content(0, 4); got != 'H' {
		t.Errorf("status line starts with %q, want 'H'", got)
	}
	if got, style := r.screen.Content(1, 1); got == 'M' {
		fg, _, _ := style.Decompose()
		if fg != r.theme.InhabitantColor(labyrinth.Minotaur) {
			t.Errorf("minotaur color = %v, want theme color", fg)
		}
	}
}

func TestRenderHighlightsExit(t *testing.T) {
	r := newTestRenderer(t)

	l, err := labyrinth.New(1, 1)
	if err != nil {
		t.Fatalf("labyrinth.New error: %v", err)
	}
	if err := l.SetExit(labyrinth.Coordinate{}, labyrinth.East); err != nil {
		t.Fatalf("SetExit error: %v", err)
	}
	m, err := labymap.New(l)
	if err != nil {
		t.Fatalf("labymap.New error: %v", err)
	}

	if err := r.Render(context.Background(), m, nil, nil); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// The exit is the midpoint of the east border, map (2, 1)
	got, style := r.screen.Content(ScreenX(2), 1)
	if got != ' ' {
		t.Errorf("exit glyph = %q, want ' '", got)
	}
	_, bg, _ := style.Decompose()
	if bg != r.theme.Exit {
		t.Errorf("exit background = %v, want %v", bg, r.theme.Exit)
	}
}
