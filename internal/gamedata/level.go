package gamedata

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/labyrinth/internal/labyrinth"
	"github.com/samdwyer/labyrinth/internal/telemetry"
)

// RoomRef is a room coordinate in level JSON.
type RoomRef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Coordinate converts the reference to a labyrinth coordinate.
func (r RoomRef) Coordinate() labyrinth.Coordinate {
	return labyrinth.Coordinate{X: r.X, Y: r.Y}
}

// ConnectionDef joins two adjacent rooms.
type ConnectionDef struct {
	From RoomRef `json:"from"`
	To   RoomRef `json:"to"`
}

// ExitDef places the exit on one side of a room.
type ExitDef struct {
	Room      RoomRef `json:"room"`
	Direction string  `json:"direction"` // "north", "east", "south" or "west"
}

// PlacementDef puts an inhabitant or an item in a room.
type PlacementDef struct {
	Room RoomRef `json:"room"`
	Kind string  `json:"kind"`
}

// LevelDef defines a labyrinth layout loaded from JSON.
type LevelDef struct {
	ID          string          `json:"id"`          // Unique identifier (e.g., "snake")
	Name        string          `json:"name"`        // Display name
	Width       int             `json:"width"`       // Rooms per row
	Height      int             `json:"height"`      // Rows
	Bullets     int             `json:"bullets"`     // Bullets the player starts with
	Connections []ConnectionDef `json:"connections"` // Walls to break
	Spawn1      RoomRef         `json:"spawn1"`      // Initial spawn
	Spawn2      RoomRef         `json:"spawn2"`      // Respawn after death
	Exit        *ExitDef        `json:"exit"`        // Optional
	Inhabitants []PlacementDef  `json:"inhabitants"`
	Items       []PlacementDef  `json:"items"`
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}

var directionNames = map[string]labyrinth.Direction{
	"north": labyrinth.North,
	"east":  labyrinth.East,
	"south": labyrinth.South,
	"west":  labyrinth.West,
}

var inhabitantNames = map[string]labyrinth.Inhabitant{
	"minotaur":       labyrinth.Minotaur,
	"minotaur_dead":  labyrinth.MinotaurDead,
	"mirror":         labyrinth.Mirror,
	"mirror_cracked": labyrinth.MirrorCracked,
}

var itemNames = map[string]labyrinth.Item{
	"bullet":   labyrinth.Bullet,
	"treasure": labyrinth.Treasure,
}

// ParseDirection converts a direction name from JSON.
func ParseDirection(name string) (labyrinth.Direction, error) {
	d, ok := directionNames[name]
	if !ok {
		return labyrinth.DirectionNone, fmt.Errorf("unknown direction %q: %w", name, labyrinth.ErrInvalidArgument)
	}
	return d, nil
}

// ParseInhabitant converts an inhabitant name from JSON.
func ParseInhabitant(name string) (labyrinth.Inhabitant, error) {
	inh, ok := inhabitantNames[name]
	if !ok {
		return labyrinth.InhabitantNone, fmt.Errorf("unknown inhabitant %q: %w", name, labyrinth.ErrInvalidArgument)
	}
	return inh, nil
}

// ParseItem converts an item name from JSON.
func ParseItem(name string) (labyrinth.Item, error) {
	itm, ok := itemNames[name]
	if !ok {
		return labyrinth.ItemNone, fmt.Errorf("unknown item %q: %w", name, labyrinth.ErrInvalidArgument)
	}
	return itm, nil
}

// Validate checks the parts of a level that can be judged without building
// it: names and duplicate entries. Grid rules are left to the labyrinth.
func (def *LevelDef) Validate() error {
	if def.ID == "" {
		return fmt.Errorf("level %q: missing id: %w", def.Name, labyrinth.ErrInvalidArgument)
	}

	connections := mapset.New[[2]labyrinth.Coordinate]()
	for _, conn := range def.Connections {
		a, b := conn.From.Coordinate(), conn.To.Coordinate()
		if connections.Has([2]labyrinth.Coordinate{a, b}) || connections.Has([2]labyrinth.Coordinate{b, a}) {
			return fmt.Errorf("level %s: connection %v-%v listed twice: %w", def.ID, a, b, labyrinth.ErrLogic)
		}
		connections.Put([2]labyrinth.Coordinate{a, b})
	}

	if def.Exit != nil {
		if _, err := ParseDirection(def.Exit.Direction); err != nil {
			return fmt.Errorf("level %s exit: %w", def.ID, err)
		}
	}

	occupied := mapset.New[labyrinth.Coordinate]()
	for _, p := range def.Inhabitants {
		if _, err := ParseInhabitant(p.Kind); err != nil {
			return fmt.Errorf("level %s: %w", def.ID, err)
		}
		c := p.Room.Coordinate()
		if occupied.Has(c) {
			return fmt.Errorf("level %s: two inhabitants in room %v: %w", def.ID, c, labyrinth.ErrLogic)
		}
		occupied.Put(c)
	}

	filled := mapset.New[labyrinth.Coordinate]()
	for _, p := range def.Items {
		if _, err := ParseItem(p.Kind); err != nil {
			return fmt.Errorf("level %s: %w", def.ID, err)
		}
		c := p.Room.Coordinate()
		if filled.Has(c) {
			return fmt.Errorf("level %s: two items in room %v: %w", def.ID, c, labyrinth.ErrLogic)
		}
		filled.Put(c)
	}
	return nil
}

// Build creates the labyrinth described by the level.
func (def *LevelDef) Build(ctx context.Context) (*labyrinth.Labyrinth, error) {
	tracer := telemetry.Tracer("gamedata")
	_, span := tracer.Start(ctx, "level.build")
	defer span.End()

	span.SetAttributes(
		attribute.String("level.id", def.ID),
		attribute.Int("level.width", def.Width),
		attribute.Int("level.height", def.Height),
		attribute.Int("level.connections", len(def.Connections)),
	)

	l, err := def.build()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "level build failed")
		return nil, err
	}
	return l, nil
}

func (def *LevelDef) build() (*labyrinth.Labyrinth, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	l, err := labyrinth.New(def.Width, def.Height)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}

	for _, conn := range def.Connections {
		if err := l.ConnectRooms(conn.From.Coordinate(), conn.To.Coordinate()); err != nil {
			return nil, fmt.Errorf("level %s: %w", def.ID, err)
		}
	}

	if err := l.SetSpawn1(def.Spawn1.Coordinate()); err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}
	if err := l.SetSpawn2(def.Spawn2.Coordinate()); err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}

	if def.Exit != nil {
		d, _ := ParseDirection(def.Exit.Direction)
		if err := l.SetExit(def.Exit.Room.Coordinate(), d); err != nil {
			return nil, fmt.Errorf("level %s: %w", def.ID, err)
		}
	}

	for _, p := range def.Inhabitants {
		inh, _ := ParseInhabitant(p.Kind)
		if err := l.SetInhabitant(p.Room.Coordinate(), inh); err != nil {
			return nil, fmt.Errorf("level %s: %w", def.ID, err)
		}
	}
	for _, p := range def.Items {
		itm, _ := ParseItem(p.Kind)
		if err := l.SetItem(p.Room.Coordinate(), itm); err != nil {
			return nil, fmt.Errorf("level %s: %w", def.ID, err)
		}
	}

	return l, nil
}
