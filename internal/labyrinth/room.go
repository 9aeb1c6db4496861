package labyrinth

import "fmt"

// Room is a single cell of the labyrinth.
// The exit side does not count as a wall.
type Room struct {
	inhabitant Inhabitant
	item       Item
	exit       Direction
	wallNorth  bool
	wallEast   bool
	wallSouth  bool
	wallWest   bool
}

// NewRoom creates a walled-in, empty room.
func NewRoom() Room {
	return Room{
		exit:      DirectionNone,
		wallNorth: true,
		wallEast:  true,
		wallSouth: true,
		wallWest:  true,
	}
}

// Inhabitant returns the current inhabitant of the room.
func (r *Room) Inhabitant() Inhabitant {
	return r.inhabitant
}

// SetInhabitant changes the current inhabitant of the room.
func (r *Room) SetInhabitant(inh Inhabitant) {
	r.inhabitant = inh
}

// Item returns the current item in the room.
func (r *Room) Item() Item {
	return r.item
}

// SetItem changes the current item in the room.
func (r *Room) SetItem(itm Item) {
	r.item = itm
}

// Exit returns the side holding the exit, or DirectionNone.
func (r *Room) Exit() Direction {
	return r.exit
}

// BreakWall removes the wall on side d so the room can be connected to a
// neighbor. Use CreateExit to open an exit.
func (r *Room) BreakWall(d Direction) error {
	wall, err := r.wall(d)
	if err != nil {
		return fmt.Errorf("break wall: %w", err)
	}
	if !*wall {
		return fmt.Errorf("break %s wall: %w", d, ErrAlreadyBroken)
	}
	*wall = false
	return nil
}

// CreateExit carves the exit out of the intact wall on side d.
func (r *Room) CreateExit(d Direction) error {
	wall, err := r.wall(d)
	if err != nil {
		return fmt.Errorf("create exit: %w", err)
	}
	if !*wall {
		return fmt.Errorf("create exit %s: %w", d, ErrAlreadyBroken)
	}
	if r.exit != DirectionNone {
		return fmt.Errorf("create exit %s (existing exit %s): %w", d, r.exit, ErrAlreadyHasExit)
	}
	*wall = false
	r.exit = d
	return nil
}

// DirectionCheck returns what lies on side d of the room.
func (r *Room) DirectionCheck(d Direction) (RoomBorder, error) {
	wall, err := r.wall(d)
	if err != nil {
		return BorderWall, fmt.Errorf("direction check: %w", err)
	}
	// The exit side also has its wall cleared, so test it first.
	if d == r.exit {
		return BorderExit, nil
	}
	if !*wall {
		return BorderRoom, nil
	}
	return BorderWall, nil
}

// wall returns the wall flag for side d.
func (r *Room) wall(d Direction) (*bool, error) {
	switch d {
	case North:
		return &r.wallNorth, nil
	case East:
		return &r.wallEast, nil
	case South:
		return &r.wallSouth, nil
	case West:
		return &r.wallWest, nil
	default:
		return nil, fmt.Errorf("direction %s: %w", d, ErrInvalidArgument)
	}
}
