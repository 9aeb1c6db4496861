package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/labyrinth/internal/gamedata"
	"github.com/samdwyer/labyrinth/internal/labyrinth"
)

func newSnakeSession(t *testing.T) *Session {
	t.Helper()
	def := gamedata.MustLoadLevelRegistry().GetByID("snake")
	if def == nil {
		t.Fatal("snake level not found")
	}
	s, err := NewSession(context.Background(), def)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s
}

func mustDo(t *testing.T, what string, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s error: %v", what, err)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateExplore, "explore"},
		{StateEscaped, "escaped"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNewSession(t *testing.T) {
	s := newSnakeSession(t)

	if s.ID == "" {
		t.Error("NewSession().ID is empty")
	}
	if s.Player().Room != s.Labyrinth().Spawn1() {
		t.Errorf("player starts in %v, want spawn %v", s.Player().Room, s.Labyrinth().Spawn1())
	}
	if s.Player().Bullets != 1 {
		t.Errorf("player bullets = %d, want 1", s.Player().Bullets)
	}
	if s.State() != StateExplore {
		t.Errorf("State() = %v, want explore", s.State())
	}
	if s.Visited() != 1 {
		t.Errorf("Visited() = %d, want 1", s.Visited())
	}

	if _, err := NewSession(context.Background(), nil); err == nil {
		t.Error("NewSession(nil) should fail")
	}
}

func TestSnakePlaythrough(t *testing.T) {
	ctx := context.Background()
	s := newSnakeSession(t)

	// Walls block without moving
	mustDo(t, "Move(East)", s.Move(ctx, labyrinth.East))
	if s.Player().Room != (labyrinth.Coordinate{X: 0, Y: 0}) {
		t.Fatalf("player moved through a wall to %v", s.Player().Room)
	}

	mustDo(t, "Move(South)", s.Move(ctx, labyrinth.South))
	mustDo(t, "Move(East)", s.Move(ctx, labyrinth.East))
	if s.Player().Room != (labyrinth.Coordinate{X: 1, Y: 1}) {
		t.Fatalf("player in %v, want (1, 1)", s.Player().Room)
	}

	mustDo(t, "Take()", s.Take(ctx))
	if s.Player().Bullets != 2 {
		t.Errorf("bullets after pickup = %d, want 2", s.Player().Bullets)
	}

	// Walking into the live minotaur kills the player
	mustDo(t, "Move(North)", s.Move(ctx, labyrinth.North))
	if s.Player().Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", s.Player().Deaths)
	}
	if s.Player().Room != s.Labyrinth().Spawn2() {
		t.Errorf("player respawned in %v, want %v", s.Player().Room, s.Labyrinth().Spawn2())
	}

	mustDo(t, "Shoot(North)", s.Shoot(ctx, labyrinth.North))
	if inh, _ := s.Labyrinth().Inhabitant(labyrinth.Coordinate{X: 1, Y: 0}); inh != labyrinth.MinotaurDead {
		t.Errorf("minotaur after shot = %v, want dead", inh)
	}
	if s.Player().Bullets != 1 {
		t.Errorf("bullets after shot = %d, want 1", s.Player().Bullets)
	}

	mustDo(t, "Move(North)", s.Move(ctx, labyrinth.North))
	mustDo(t, "Move(East)", s.Move(ctx, labyrinth.East))
	mustDo(t, "Take()", s.Take(ctx))
	if !s.Player().HasTreasure {
		t.Fatal("player should hold the treasure")
	}
	if s.Labyrinth().TreasurePlaced() {
		t.Error("treasure still placed after taking it")
	}

	mustDo(t, "Move(South)", s.Move(ctx, labyrinth.South))
	mustDo(t, "Move(East)", s.Move(ctx, labyrinth.East))
	if s.State() != StateEscaped {
		t.Errorf("State() = %v, want escaped", s.State())
	}
	if s.Visited() != 6 {
		t.Errorf("Visited() = %d, want 6", s.Visited())
	}

	if err := s.Move(ctx, labyrinth.West); err == nil {
		t.Error("Move() after escaping should fail")
	}
}

func TestExitWithoutTreasure(t *testing.T) {
	ctx := context.Background()
	def := &gamedata.LevelDef{
		ID:     "exit",
		Name:   "Exit",
		Width:  1,
		Height: 1,
		Exit:   &gamedata.ExitDef{Room: gamedata.RoomRef{X: 0, Y: 0}, Direction: "north"},
	}
	s, err := NewSession(ctx, def)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	mustDo(t, "Move(North)", s.Move(ctx, labyrinth.North))
	if s.State() != StateExplore {
		t.Errorf("State() = %v, want explore without the treasure", s.State())
	}
}

func TestDeathDropsTreasure(t *testing.T) {
	ctx := context.Background()
	def := &gamedata.LevelDef{
		ID:     "drop",
		Name:   "Drop",
		Width:  3,
		Height: 1,
		Connections: []gamedata.ConnectionDef{
			{From: gamedata.RoomRef{X: 0, Y: 0}, To: gamedata.RoomRef{X: 1, Y: 0}},
			{From: gamedata.RoomRef{X: 1, Y: 0}, To: gamedata.RoomRef{X: 2, Y: 0}},
		},
		Spawn1:      gamedata.RoomRef{X: 0, Y: 0},
		Spawn2:      gamedata.RoomRef{X: 1, Y: 0},
		Bullets:     1,
		Inhabitants: []gamedata.PlacementDef{{Room: gamedata.RoomRef{X: 2, Y: 0}, Kind: "minotaur"}},
		Items:       []gamedata.PlacementDef{{Room: gamedata.RoomRef{X: 0, Y: 0}, Kind: "treasure"}},
	}
	s, err := NewSession(ctx, def)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	mustDo(t, "Take()", s.Take(ctx))
	mustDo(t, "Move(East)", s.Move(ctx, labyrinth.East))
	mustDo(t, "Move(East)", s.Move(ctx, labyrinth.East))

	dropRoom := labyrinth.Coordinate{X: 2, Y: 0}
	if s.Player().HasTreasure {
		t.Error("player kept the treasure after dying")
	}
	if itm, _ := s.Labyrinth().Item(dropRoom); itm != labyrinth.Treasure {
		t.Errorf("Item(%v) = %v, want treasure", dropRoom, itm)
	}
	if !s.Labyrinth().TreasurePlaced() {
		t.Error("TreasurePlaced() = false after the drop")
	}
	if s.Player().Room != (labyrinth.Coordinate{X: 1, Y: 0}) {
		t.Errorf("player respawned in %v, want (1, 0)", s.Player().Room)
	}

	mustDo(t, "Shoot(East)", s.Shoot(ctx, labyrinth.East))
	mustDo(t, "Move(East)", s.Move(ctx, labyrinth.East))
	mustDo(t, "Take()", s.Take(ctx))
	if !s.Player().HasTreasure {
		t.Error("player should pick the dropped treasure up again")
	}
}

func TestShootMisses(t *testing.T) {
	ctx := context.Background()
	s := newSnakeSession(t)

	// Into a wall
	mustDo(t, "Shoot(East)", s.Shoot(ctx, labyrinth.East))
	if s.Player().Bullets != 0 {
		t.Errorf("bullets = %d, want 0", s.Player().Bullets)
	}

	// Out of bullets: nothing happens
	turns := s.Turns()
	mustDo(t, "Shoot(South)", s.Shoot(ctx, labyrinth.South))
	if s.Turns() != turns {
		t.Error("shooting without bullets should not take a turn")
	}
	if inh, _ := s.Labyrinth().Inhabitant(labyrinth.Coordinate{X: 0, Y: 1}); inh != labyrinth.Mirror {
		t.Errorf("mirror after empty shot = %v, want mirror", inh)
	}

	if err := s.Shoot(ctx, labyrinth.DirectionNone); !errors.Is(err, labyrinth.ErrInvalidArgument) {
		t.Errorf("Shoot(None) error = %v, want ErrInvalidArgument", err)
	}
}

func TestShootEmptyRoomAndMirror(t *testing.T) {
	ctx := context.Background()
	s := newSnakeSession(t)
	s.Player().AddBullet()

	// (0, 1) holds a mirror
	mustDo(t, "Shoot(South)", s.Shoot(ctx, labyrinth.South))
	if inh, _ := s.Labyrinth().Inhabitant(labyrinth.Coordinate{X: 0, Y: 1}); inh != labyrinth.MirrorCracked {
		t.Errorf("mirror after shot = %v, want cracked", inh)
	}

	// The cracked mirror cannot be attacked again; the bullet is still spent
	mustDo(t, "Shoot(South)", s.Shoot(ctx, labyrinth.South))
	if s.Player().Bullets != 0 {
		t.Errorf("bullets = %d, want 0", s.Player().Bullets)
	}
}

func TestTakeNothing(t *testing.T) {
	ctx := context.Background()
	s := newSnakeSession(t)

	mustDo(t, "Take()", s.Take(ctx))
	if s.LastMessage != "There is nothing to take here." {
		t.Errorf("LastMessage = %q", s.LastMessage)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LABYRINTH_LEVEL", "")
	if got := ConfigFromEnv().Level; got != DefaultLevel {
		t.Errorf("ConfigFromEnv().Level = %q, want %q", got, DefaultLevel)
	}

	t.Setenv("LABYRINTH_LEVEL", "crossroads")
	if got := ConfigFromEnv().Level; got != "crossroads" {
		t.Errorf("ConfigFromEnv().Level = %q, want %q", got, "crossroads")
	}
}
