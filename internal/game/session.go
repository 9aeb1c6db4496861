package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/labyrinth/internal/entity"
	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/labyrinth"
	"github.com/samdwyer/labyrinth/internal/telemetry"
)

// Session holds the state of one play-through of a level.
// The labyrinth enforces the grid rules; the session keeps the player's
// inventory and decides what happens on each turn.
type Session struct {
	ID      string
	Level   *gamedata.LevelDef
	lab     *labyrinth.Labyrinth
	player  *entity.Player
	visited mapset.Set[labyrinth.Coordinate]
	state   State
	turns   int

	// LastMessage describes the outcome of the last action.
	LastMessage string
}

// NewSession builds the level and places the player on the first spawn.
func NewSession(ctx context.Context, def *gamedata.LevelDef) (*Session, error) {
	if def == nil {
		return nil, errors.New("new session: no level")
	}
	lab, err := def.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		ID:      uuid.NewString(),
		Level:   def,
		lab:     lab,
		player:  entity.NewPlayer(lab.Spawn1(), def.Bullets),
		visited: mapset.New[labyrinth.Coordinate](),
		state:   StateExplore,
	}
	s.visited.Put(s.player.Room)
	s.LastMessage = "You enter " + def.Name + ". Find the treasure and escape!"
	return s, nil
}

// Labyrinth returns the labyrinth being played.
func (s *Session) Labyrinth() *labyrinth.Labyrinth {
	return s.lab
}

// Player returns the player.
func (s *Session) Player() *entity.Player {
	return s.player
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Turns returns the number of actions taken.
func (s *Session) Turns() int {
	return s.turns
}

// Visited returns the number of distinct rooms the player has been in.
func (s *Session) Visited() int {
	return s.visited.Size()
}

// HasVisited reports whether the player has been in room c.
func (s *Session) HasVisited(c labyrinth.Coordinate) bool {
	return s.visited.Has(c)
}

// Move tries to walk through side d of the current room.
func (s *Session) Move(ctx context.Context, d labyrinth.Direction) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.move")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("direction", d.String()),
	)

	if s.state != StateExplore {
		return fmt.Errorf("move: game is over (%s)", s.state)
	}

	border, err := s.lab.DirectionCheck(s.player.Room, d)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}
	span.SetAttributes(attribute.String("border", border.String()))
	s.turns++

	switch border {
	case labyrinth.BorderWall:
		s.LastMessage = "A wall blocks the way " + d.String() + "."
	case labyrinth.BorderExit:
		if s.player.HasTreasure {
			s.state = StateEscaped
			s.LastMessage = "You escape with the treasure!"
		} else {
			s.LastMessage = "This is the exit, but you have not found the treasure."
		}
	case labyrinth.BorderRoom:
		next := s.player.Room.Step(d)
		s.player.MoveTo(next)
		s.visited.Put(next)
		span.SetAttributes(attribute.Int("room.x", next.X), attribute.Int("room.y", next.Y))
		return s.enterRoom(ctx)
	}
	return nil
}

// enterRoom resolves what the player meets on arrival.
func (s *Session) enterRoom(ctx context.Context) error {
	room := s.player.Room
	inh, err := s.lab.Inhabitant(room)
	if err != nil {
		return err
	}
	if inh == labyrinth.Minotaur {
		return s.respawn(ctx)
	}

	itm, err := s.lab.Item(room)
	if err != nil {
		return err
	}

	msg := "You walk into room " + room.String() + "."
	switch inh {
	case labyrinth.MinotaurDead:
		msg += " A dead minotaur lies here."
	case labyrinth.Mirror:
		msg += " Your reflection stares back from a mirror."
	case labyrinth.MirrorCracked:
		msg += " A cracked mirror hangs on the wall."
	}
	switch itm {
	case labyrinth.Bullet:
		msg += " There is a bullet on the floor."
	case labyrinth.Treasure:
		msg += " The treasure is here!"
	}
	s.LastMessage = msg
	return nil
}

// respawn kills the player in the current room and moves them to the second
// spawn. A held treasure is left behind.
func (s *Session) respawn(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.respawn")
	defer span.End()

	where := s.player.Room
	dropped := s.player.Die()
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.Bool("treasure_dropped", dropped),
		attribute.Int("deaths", s.player.Deaths),
	)

	if dropped {
		if err := s.lab.DropTreasure(where); err != nil {
			return fmt.Errorf("respawn: %w", err)
		}
	}
	s.player.MoveTo(s.lab.Spawn2())
	s.visited.Put(s.player.Room)

	s.LastMessage = "The minotaur kills you in room " + where.String() + "."
	if dropped {
		s.LastMessage += " The treasure falls from your hands."
	}
	s.LastMessage += " You wake up in room " + s.player.Room.String() + "."
	return nil
}

// Shoot fires a bullet through side d into the neighboring room.
func (s *Session) Shoot(ctx context.Context, d labyrinth.Direction) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.attack")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("direction", d.String()),
	)

	if s.state != StateExplore {
		return fmt.Errorf("shoot: game is over (%s)", s.state)
	}

	border, err := s.lab.DirectionCheck(s.player.Room, d)
	if err != nil {
		return fmt.Errorf("shoot: %w", err)
	}
	if !s.player.SpendBullet() {
		s.LastMessage = "You have no bullets."
		return nil
	}
	s.turns++

	if border != labyrinth.BorderRoom {
		s.LastMessage = "The bullet is lost through the " + border.String() + " to the " + d.String() + "."
		return nil
	}

	target := s.player.Room.Step(d)
	result, err := s.lab.AttackEnemy(target)
	switch {
	case errors.Is(err, labyrinth.ErrInvalidArgument):
		s.LastMessage = "The bullet flies into room " + target.String() + " and hits nothing."
		return nil
	case err != nil:
		return fmt.Errorf("shoot: %w", err)
	}

	span.SetAttributes(attribute.String("result", result.String()))
	switch result {
	case labyrinth.MinotaurDead:
		s.LastMessage = "A roar, then silence. The minotaur in room " + target.String() + " is dead."
	case labyrinth.MirrorCracked:
		s.LastMessage = "Glass cracks in room " + target.String() + "."
	}
	return nil
}

// Take picks up the item in the current room.
func (s *Session) Take(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.take")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", s.ID))

	if s.state != StateExplore {
		return fmt.Errorf("take: game is over (%s)", s.state)
	}

	itm, err := s.lab.TakeItem(s.player.Room)
	if errors.Is(err, labyrinth.ErrLogic) {
		s.LastMessage = "There is nothing to take here."
		return nil
	}
	if err != nil {
		return fmt.Errorf("take: %w", err)
	}
	s.turns++

	span.SetAttributes(attribute.String("item", itm.String()))
	switch itm {
	case labyrinth.Bullet:
		s.player.AddBullet()
		s.LastMessage = "You pick up a bullet."
	case labyrinth.Treasure:
		s.player.HasTreasure = true
		s.LastMessage = "You take the treasure. Now find the exit!"
	}
	return nil
}
