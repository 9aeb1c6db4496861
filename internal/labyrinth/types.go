// Package labyrinth provides the room grid of the maze and its placement rules.
package labyrinth

import "strconv"

// Direction is a side of a room.
type Direction int

const (
	// DirectionNone means "no side" and is never a valid border.
	DirectionNone Direction = iota
	North
	East
	South
	West
)

// Directions lists the four real sides in clockwise order.
var Directions = [4]Direction{North, East, South, West}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Opposite returns the side facing d from the neighboring room.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return DirectionNone
	}
}

// RoomBorder is what lies on one side of a room.
type RoomBorder int

const (
	BorderWall RoomBorder = iota
	BorderRoom
	BorderExit
)

// String returns a human-readable border name.
func (b RoomBorder) String() string {
	switch b {
	case BorderWall:
		return "wall"
	case BorderRoom:
		return "room"
	case BorderExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Inhabitant is the creature, if any, occupying a room.
type Inhabitant int

const (
	InhabitantNone Inhabitant = iota
	Minotaur
	MinotaurDead
	Mirror
	MirrorCracked
)

// String returns a human-readable inhabitant name.
func (i Inhabitant) String() string {
	switch i {
	case InhabitantNone:
		return "none"
	case Minotaur:
		return "minotaur"
	case MinotaurDead:
		return "dead minotaur"
	case Mirror:
		return "mirror"
	case MirrorCracked:
		return "cracked mirror"
	default:
		return "unknown"
	}
}

// Attackable reports whether the inhabitant can still be attacked.
func (i Inhabitant) Attackable() bool {
	return i == Minotaur || i == Mirror
}

// Item is the object, if any, lying in a room.
type Item int

const (
	ItemNone Item = iota
	Bullet
	Treasure
	// TreasureGone marks the room the treasure was taken from.
	TreasureGone
)

// String returns a human-readable item name.
func (i Item) String() string {
	switch i {
	case ItemNone:
		return "none"
	case Bullet:
		return "bullet"
	case Treasure:
		return "treasure"
	case TreasureGone:
		return "treasure (gone)"
	default:
		return "unknown"
	}
}

// Coordinate addresses a room. (0, 0) is the top left.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as (x, y).
func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.X) + ", " + strconv.Itoa(c.Y) + ")"
}

// Step returns the coordinate one room away in direction d.
// DirectionNone returns c unchanged.
func (c Coordinate) Step(d Direction) Coordinate {
	switch d {
	case North:
		return Coordinate{c.X, c.Y - 1}
	case East:
		return Coordinate{c.X + 1, c.Y}
	case South:
		return Coordinate{c.X, c.Y + 1}
	case West:
		return Coordinate{c.X - 1, c.Y}
	default:
		return c
	}
}
