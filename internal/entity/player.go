// Package entity provides the player moving through the labyrinth.
package entity

import "github.com/samdwyer/labyrinth/internal/labyrinth"

// Player is the adventurer exploring the labyrinth.
type Player struct {
	Room        labyrinth.Coordinate // Current room
	Bullets     int                  // Bullets left
	HasTreasure bool                 // Holding the treasure
	Deaths      int                  // Times killed so far
	Symbol      rune                 // Display symbol
}

// NewPlayer creates a player in the given room.
func NewPlayer(room labyrinth.Coordinate, bullets int) *Player {
	return &Player{
		Room:    room,
		Bullets: bullets,
		Symbol:  '&',
	}
}

// MoveTo places the player in another room.
func (p *Player) MoveTo(room labyrinth.Coordinate) {
	p.Room = room
}

// SpendBullet uses up one bullet. Returns false if none are left.
func (p *Player) SpendBullet() bool {
	if p.Bullets <= 0 {
		return false
	}
	p.Bullets--
	return true
}

// AddBullet picks up one bullet.
func (p *Player) AddBullet() {
	p.Bullets++
}

// Die records a death and returns whether the treasure was dropped.
func (p *Player) Die() (droppedTreasure bool) {
	p.Deaths++
	droppedTreasure = p.HasTreasure
	p.HasTreasure = false
	return droppedTreasure
}
