package entity

import (
	"testing"

	"github.com/samdwyer/labyrinth/internal/labyrinth"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(labyrinth.Coordinate{X: 1, Y: 2}, 3)

	if p.Room != (labyrinth.Coordinate{X: 1, Y: 2}) {
		t.Errorf("NewPlayer().Room = %v, want (1, 2)", p.Room)
	}
	if p.Bullets != 3 {
		t.Errorf("NewPlayer().Bullets = %d, want 3", p.Bullets)
	}
	if p.HasTreasure {
		t.Error("NewPlayer().HasTreasure = true, want false")
	}
	if p.Symbol != '&' {
		t.Errorf("NewPlayer().Symbol = %q, want '&'", p.Symbol)
	}
}

func TestPlayerBullets(t *testing.T) {
	p := NewPlayer(labyrinth.Coordinate{}, 1)

	if !p.SpendBullet() {
		t.Fatal("SpendBullet() = false with one bullet")
	}
	if p.SpendBullet() {
		t.Error("SpendBullet() = true with no bullets")
	}
	if p.Bullets != 0 {
		t.Errorf("Bullets = %d, want 0", p.Bullets)
	}

	p.AddBullet()
	if p.Bullets != 1 {
		t.Errorf("Bullets after AddBullet = %d, want 1", p.Bullets)
	}
}

func TestPlayerDie(t *testing.T) {
	p := NewPlayer(labyrinth.Coordinate{}, 0)
	p.HasTreasure = true

	if !p.Die() {
		t.Error("Die() with treasure should report it dropped")
	}
	if p.HasTreasure {
		t.Error("HasTreasure = true after Die()")
	}
	if p.Die() {
		t.Error("Die() without treasure should not report a drop")
	}
	if p.Deaths != 2 {
		t.Errorf("Deaths = %d, want 2", p.Deaths)
	}

	p.MoveTo(labyrinth.Coordinate{X: 4, Y: 4})
	if p.Room != (labyrinth.Coordinate{X: 4, Y: 4}) {
		t.Errorf("Room after MoveTo = %v, want (4, 4)", p.Room)
	}
}
