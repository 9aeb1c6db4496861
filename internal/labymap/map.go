// Package labymap derives a renderable, double-resolution view of a labyrinth.
//
// A labyrinth of w x h rooms maps onto a grid of (2w+1) x (2h+1) cells. A
// cell is a room cell when both of its coordinates are odd; every other cell
// is a border cell drawn with a box-drawing character.
package labymap

import (
	"fmt"
	"strings"

	"github.com/samdwyer/labyrinth/internal/labyrinth"
)

// CellKind tells room cells from border cells.
type CellKind int

const (
	CellBorder CellKind = iota
	CellRoom
)

// Cell is one cell of the map.
type Cell struct {
	Kind CellKind

	// Border cells: line segments leaving the cell center, and whether the
	// cell is the labyrinth exit.
	North, East, South, West bool
	Exit                     bool

	// Room cells: mirror of the labyrinth room.
	Inhabitant labyrinth.Inhabitant
	Item       labyrinth.Item
}

// Pattern returns the border pattern of the cell.
func (c Cell) Pattern() uint8 {
	return Pattern(c.North, c.East, c.South, c.West)
}

// Glyph returns the text drawn for the cell: one rune for a border, two for
// a room.
func (c Cell) Glyph() string {
	if c.Kind == CellRoom {
		return RoomGlyph(c.Inhabitant, c.Item)
	}
	return string(BorderGlyph(c.Pattern()))
}

// Map is a view of a labyrinth. The labyrinth is owned by the caller, must
// outlive the map, and must not be changed during Refresh.
type Map struct {
	lab *labyrinth.Labyrinth

	width  int
	height int

	mapWidth  int
	mapHeight int
	cells     []Cell
}

// New creates a map of l and fills it from the labyrinth's current state.
func New(l *labyrinth.Labyrinth) (*Map, error) {
	if l == nil {
		return nil, fmt.Errorf("new map: nil labyrinth: %w", labyrinth.ErrInvalidArgument)
	}
	m := &Map{
		lab:       l,
		width:     l.Width(),
		height:    l.Height(),
		mapWidth:  2*l.Width() + 1,
		mapHeight: 2*l.Height() + 1,
	}
	m.cells = make([]Cell, m.mapWidth*m.mapHeight)
	if err := m.Refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Width returns the number of map columns.
func (m *Map) Width() int {
	return m.mapWidth
}

// Height returns the number of map rows.
func (m *Map) Height() int {
	return m.mapHeight
}

// Labyrinth returns the labyrinth the map is drawn from.
func (m *Map) Labyrinth() *labyrinth.Labyrinth {
	return m.lab
}

// withinMap reports whether c addresses a map cell.
func (m *Map) withinMap(c labyrinth.Coordinate) bool {
	return c.X >= 0 && c.X < m.mapWidth && c.Y >= 0 && c.Y < m.mapHeight
}

// IsRoom reports whether map coordinate c is a room cell.
func (m *Map) IsRoom(c labyrinth.Coordinate) bool {
	return m.withinMap(c) && c.X%2 == 1 && c.Y%2 == 1
}

// LabyrinthToMap converts a labyrinth coordinate to its room cell.
func (m *Map) LabyrinthToMap(c labyrinth.Coordinate) (labyrinth.Coordinate, error) {
	if c.X < 0 || c.X >= m.width || c.Y < 0 || c.Y >= m.height {
		return labyrinth.Coordinate{}, fmt.Errorf("labyrinth to map: room %v outside %dx%d labyrinth: %w",
			c, m.width, m.height, labyrinth.ErrInvalidArgument)
	}
	return labyrinth.Coordinate{X: 2*c.X + 1, Y: 2*c.Y + 1}, nil
}

// MapToLabyrinth converts a room cell to its labyrinth coordinate.
func (m *Map) MapToLabyrinth(c labyrinth.Coordinate) (labyrinth.Coordinate, error) {
	if !m.withinMap(c) {
		return labyrinth.Coordinate{}, fmt.Errorf("map to labyrinth: cell %v outside %dx%d map: %w",
			c, m.mapWidth, m.mapHeight, labyrinth.ErrDomain)
	}
	if !m.IsRoom(c) {
		return labyrinth.Coordinate{}, fmt.Errorf("map to labyrinth: cell %v is a border: %w",
			c, labyrinth.ErrLogic)
	}
	return labyrinth.Coordinate{X: (c.X - 1) / 2, Y: (c.Y - 1) / 2}, nil
}

// Cell returns the map cell at c.
func (m *Map) Cell(c labyrinth.Coordinate) (Cell, error) {
	if !m.withinMap(c) {
		return Cell{}, fmt.Errorf("cell %v outside %dx%d map: %w", c, m.mapWidth, m.mapHeight, labyrinth.ErrDomain)
	}
	return *m.cell(c.X, c.Y), nil
}

func (m *Map) cell(x, y int) *Cell {
	return &m.cells[y*m.mapWidth+x]
}

// Refresh recomputes every cell from the labyrinth.
func (m *Map) Refresh() error {
	m.resetBorders()

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if err := m.refreshRoom(labyrinth.Coordinate{X: x, Y: y}); err != nil {
				return fmt.Errorf("refresh map: %w", err)
			}
		}
	}
	return nil
}

// resetBorders tags every cell and leaves each border cell with only the
// segments that a fully walled labyrinth would draw.
func (m *Map) resetBorders() {
	for y := 0; y < m.mapHeight; y++ {
		for x := 0; x < m.mapWidth; x++ {
			c := m.cell(x, y)
			if x%2 == 1 && y%2 == 1 {
				*c = Cell{Kind: CellRoom}
				continue
			}
			*c = Cell{Kind: CellBorder, North: true, East: true, South: true, West: true}

			// Nothing is drawn past the outer ring.
			if y == 0 {
				c.North = false
			}
			if y == m.mapHeight-1 {
				c.South = false
			}
			if x == 0 {
				c.West = false
			}
			if x == m.mapWidth-1 {
				c.East = false
			}

			// Cells between rooms are plain wall segments, not junctions.
			if x%2 == 1 {
				c.North, c.South = false, false
			}
			if y%2 == 1 {
				c.East, c.West = false, false
			}
		}
	}
}

// refreshRoom opens the borders of room c that lead east or south to another
// room, opens any exit side, and copies the room contents.
func (m *Map) refreshRoom(c labyrinth.Coordinate) error {
	for _, d := range labyrinth.Directions {
		border, err := m.lab.DirectionCheck(c, d)
		if err != nil {
			return err
		}
		switch {
		case border == labyrinth.BorderExit:
			if err := m.openBorder(c, d, true); err != nil {
				return err
			}
		case border == labyrinth.BorderRoom && (d == labyrinth.East || d == labyrinth.South):
			// West and north connections are opened from the neighbor.
			if err := m.openBorder(c, d, false); err != nil {
				return err
			}
		}
	}

	inh, err := m.lab.Inhabitant(c)
	if err != nil {
		return err
	}
	itm, err := m.lab.Item(c)
	if err != nil {
		return err
	}
	mc, err := m.LabyrinthToMap(c)
	if err != nil {
		return err
	}
	cell := m.cell(mc.X, mc.Y)
	cell.Inhabitant = inh
	cell.Item = itm
	return nil
}

// openBorder clears the three border cells along side d of room c: the
// midpoint and the junction at each end.
func (m *Map) openBorder(c labyrinth.Coordinate, d labyrinth.Direction, exit bool) error {
	center, err := m.LabyrinthToMap(c)
	if err != nil {
		return err
	}
	mid := center.Step(d)
	midCell := m.cell(mid.X, mid.Y)
	midCell.Exit = exit

	switch d {
	case labyrinth.East, labyrinth.West:
		midCell.North, midCell.South = false, false
		m.cell(mid.X, mid.Y-1).South = false
		m.cell(mid.X, mid.Y+1).North = false
	case labyrinth.North, labyrinth.South:
		midCell.East, midCell.West = false, false
		m.cell(mid.X-1, mid.Y).East = false
		m.cell(mid.X+1, mid.Y).West = false
	}
	return nil
}

// Render draws the map as text, one map row per line. Even columns are one
// character wide and odd columns two, so room cells fit their two glyphs.
func (m *Map) Render() string {
	var b strings.Builder
	for y := 0; y < m.mapHeight; y++ {
		for x := 0; x < m.mapWidth; x++ {
			c := m.cell(x, y)
			if c.Kind == CellRoom {
				b.WriteString(RoomGlyph(c.Inhabitant, c.Item))
				continue
			}
			b.WriteRune(BorderGlyph(c.Pattern()))
			if x%2 == 1 {
				if c.East {
					b.WriteRune('─')
				} else {
					b.WriteRune(' ')
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display refreshes the map and renders it.
func (m *Map) Display() (string, error) {
	if err := m.Refresh(); err != nil {
		return "", err
	}
	return m.Render(), nil
}
