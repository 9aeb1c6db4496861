package ui

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/labymap"
	"github.com/samdwyer/labyrinth/internal/labyrinth"
	"github.com/samdwyer/labyrinth/internal/telemetry"
)

// legendGap is the number of blank columns between the map and the legend.
const legendGap = 4

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// ScreenX returns the screen column of map column mx. Even map columns are
// one character wide, odd ones two.
func ScreenX(mx int) int {
	return mx/2*3 + mx%2
}

// Render refreshes the map from its labyrinth and draws it with the player
// on top, followed by the status lines. The legend is drawn to the right.
func (r *Renderer) Render(ctx context.Context, m *labymap.Map, player *entity.Player, status []string) error {
	tracer := telemetry.Tracer("ui")
	_, span := tracer.Start(ctx, "map.refresh")
	span.SetAttributes(
		attribute.Int("map.width", m.Width()),
		attribute.Int("map.height", m.Height()),
	)
	err := m.Refresh()
	if err != nil {
		span.RecordError(err)
	}
	span.End()
	if err != nil {
		return err
	}

	r.screen.Clear()

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			cell, err := m.Cell(labyrinth.Coordinate{X: x, Y: y})
			if err != nil {
				return err
			}
			r.drawCell(ScreenX(x), y, x%2 == 1, cell)
		}
	}

	if player != nil {
		pc, err := m.LabyrinthToMap(player.Room)
		if err != nil {
			return err
		}
		playerStyle := tcell.StyleDefault.Foreground(r.theme.Player).Bold(true)
		r.screen.SetContent(ScreenX(pc.X), pc.Y, player.Symbol, playerStyle)
	}

	mapRight := ScreenX(m.Width()-1) + 1
	legendStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, line := range strings.Split(strings.TrimRight(labymap.Legend(), "\n"), "\n") {
		r.drawText(mapRight+legendGap, i, line, legendStyle)
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range status {
		r.drawText(0, m.Height()+1+i, line, textStyle)
	}

	r.screen.Show()
	return nil
}

// drawCell draws one map cell at screen position (x, y).
func (r *Renderer) drawCell(x, y int, wide bool, cell labymap.Cell) {
	if cell.Kind == labymap.CellRoom {
		r.screen.SetContent(x, y, labymap.InhabitantGlyph(cell.Inhabitant),
			tcell.StyleDefault.Foreground(r.theme.InhabitantColor(cell.Inhabitant)))
		r.screen.SetContent(x+1, y, labymap.ItemGlyph(cell.Item),
			tcell.StyleDefault.Foreground(r.theme.ItemColor(cell.Item)))
		return
	}

	style := tcell.StyleDefault.Foreground(r.theme.Wall)
	if cell.Exit {
		style = tcell.StyleDefault.Background(r.theme.Exit)
	}
	r.screen.SetContent(x, y, labymap.BorderGlyph(cell.Pattern()), style)
	if wide {
		fill := ' '
		if cell.East {
			fill = '─'
		}
		r.screen.SetContent(x+1, y, fill, style)
	}
}

// drawText writes a line of text starting at (x, y).
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
