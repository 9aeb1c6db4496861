package labyrinth

import "fmt"

// MaxSize is the largest allowed width or height.
const MaxSize = 20

// Labyrinth is a rectangular grid of rooms.
//
// Rooms are stored row-major. The grid tracks the invariants a single room
// cannot see: at most one exit and at most one treasure on the whole grid.
type Labyrinth struct {
	width  int
	height int
	rooms  []Room

	spawn1 Coordinate
	spawn2 Coordinate

	exitSet bool
	// treasureSet is false while the treasure is held by a player.
	treasureSet bool
}

// New creates a labyrinth of walled-in, empty rooms.
func New(width, height int) (*Labyrinth, error) {
	switch {
	case width <= 0 && height <= 0:
		return nil, fmt.Errorf("new labyrinth: empty width and height: %w", ErrDomain)
	case width <= 0:
		return nil, fmt.Errorf("new labyrinth: empty width: %w", ErrDomain)
	case height <= 0:
		return nil, fmt.Errorf("new labyrinth: empty height: %w", ErrDomain)
	case width > MaxSize || height > MaxSize:
		return nil, fmt.Errorf("new labyrinth: size %dx%d exceeds %dx%d: %w",
			width, height, MaxSize, MaxSize, ErrDomain)
	}

	rooms := make([]Room, width*height)
	for i := range rooms {
		rooms[i] = NewRoom()
	}

	return &Labyrinth{
		width:  width,
		height: height,
		rooms:  rooms,
	}, nil
}

// Width returns the number of rooms per row.
func (l *Labyrinth) Width() int {
	return l.width
}

// Height returns the number of rows.
func (l *Labyrinth) Height() int {
	return l.height
}

// WithinBounds reports whether c addresses a room of the labyrinth.
func (l *Labyrinth) WithinBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < l.width && c.Y >= 0 && c.Y < l.height
}

// IsAdjacent reports whether a and b share a side.
func (l *Labyrinth) IsAdjacent(a, b Coordinate) (bool, error) {
	if err := l.checkBounds(a); err != nil {
		return false, err
	}
	if err := l.checkBounds(b); err != nil {
		return false, err
	}
	if a == b {
		return false, fmt.Errorf("room %v given twice: %w", a, ErrLogic)
	}
	_, ok := directionBetween(a, b)
	return ok, nil
}

// ConnectRooms breaks the walls between two adjacent rooms.
func (l *Labyrinth) ConnectRooms(a, b Coordinate) error {
	adjacent, err := l.IsAdjacent(a, b)
	if err != nil {
		return fmt.Errorf("connect rooms: %w", err)
	}
	if !adjacent {
		return fmt.Errorf("connect rooms %v and %v: not adjacent: %w", a, b, ErrLogic)
	}

	d, _ := directionBetween(a, b)
	roomA, roomB := l.room(a), l.room(b)

	// Both sides are checked before either wall is broken.
	for _, side := range []struct {
		room *Room
		c    Coordinate
		d    Direction
	}{{roomA, a, d}, {roomB, b, d.Opposite()}} {
		border, err := side.room.DirectionCheck(side.d)
		if err != nil {
			return fmt.Errorf("connect rooms: %w", err)
		}
		switch border {
		case BorderRoom:
			return fmt.Errorf("connect rooms %v and %v: already connected: %w", a, b, ErrLogic)
		case BorderExit:
			return fmt.Errorf("connect rooms %v and %v: exit on %s side of %v: %w",
				a, b, side.d, side.c, ErrLogic)
		}
	}

	if err := roomA.BreakWall(d); err != nil {
		return fmt.Errorf("connect rooms: %w", err)
	}
	if err := roomB.BreakWall(d.Opposite()); err != nil {
		return fmt.Errorf("connect rooms: %w", err)
	}
	return nil
}

// SetSpawn1 sets the primary (initial) spawn room.
func (l *Labyrinth) SetSpawn1(c Coordinate) error {
	if err := l.checkBounds(c); err != nil {
		return fmt.Errorf("set spawn 1: %w", err)
	}
	l.spawn1 = c
	return nil
}

// SetSpawn2 sets the secondary spawn room.
func (l *Labyrinth) SetSpawn2(c Coordinate) error {
	if err := l.checkBounds(c); err != nil {
		return fmt.Errorf("set spawn 2: %w", err)
	}
	l.spawn2 = c
	return nil
}

// Spawn1 returns the primary spawn room.
func (l *Labyrinth) Spawn1() Coordinate {
	return l.spawn1
}

// Spawn2 returns the secondary spawn room.
func (l *Labyrinth) Spawn2() Coordinate {
	return l.spawn2
}

// HasExit reports whether the exit has been set.
func (l *Labyrinth) HasExit() bool {
	return l.exitSet
}

// TreasurePlaced reports whether the treasure currently lies in a room.
func (l *Labyrinth) TreasurePlaced() bool {
	return l.treasureSet
}

// SetExit carves the labyrinth's single exit into a wall of room c.
func (l *Labyrinth) SetExit(c Coordinate, d Direction) error {
	if err := l.checkBounds(c); err != nil {
		return fmt.Errorf("set exit: %w", err)
	}
	rm := l.room(c)
	border, err := rm.DirectionCheck(d)
	if err != nil {
		return fmt.Errorf("set exit %v: %w", c, err)
	}
	if border == BorderRoom {
		return fmt.Errorf("set exit %v %s: side leads to another room: %w", c, d, ErrInvalidArgument)
	}
	if l.exitSet {
		return fmt.Errorf("set exit %v: exit already set: %w", c, ErrLogic)
	}
	if err := rm.CreateExit(d); err != nil {
		return fmt.Errorf("set exit %v: %w", c, err)
	}
	l.exitSet = true
	return nil
}

// SetInhabitant places an inhabitant in an empty room.
// An existing inhabitant can only be changed with AttackEnemy.
func (l *Labyrinth) SetInhabitant(c Coordinate, inh Inhabitant) error {
	if err := l.checkBounds(c); err != nil {
		return fmt.Errorf("set inhabitant: %w", err)
	}
	if inh == InhabitantNone {
		return fmt.Errorf("set inhabitant %v: no inhabitant given: %w", c, ErrInvalidArgument)
	}
	rm := l.room(c)
	if current := rm.Inhabitant(); current != InhabitantNone {
		return fmt.Errorf("set inhabitant %v: room already has a %s: %w", c, current, ErrLogic)
	}
	rm.SetInhabitant(inh)
	return nil
}

// SetItem places an item in a room without one.
// An existing item can only be changed with TakeItem.
func (l *Labyrinth) SetItem(c Coordinate, itm Item) error {
	if err := l.checkBounds(c); err != nil {
		return fmt.Errorf("set item: %w", err)
	}
	if itm == ItemNone {
		return fmt.Errorf("set item %v: no item given: %w", c, ErrInvalidArgument)
	}
	rm := l.room(c)
	if current := rm.Item(); current != ItemNone {
		return fmt.Errorf("set item %v: room already has a %s: %w", c, current, ErrLogic)
	}
	if itm == Treasure && l.treasureSet {
		return fmt.Errorf("set item %v: treasure already placed: %w", c, ErrLogic)
	}
	rm.SetItem(itm)
	if itm == Treasure {
		l.treasureSet = true
	}
	return nil
}

// Inhabitant returns the inhabitant of room c.
func (l *Labyrinth) Inhabitant(c Coordinate) (Inhabitant, error) {
	if err := l.checkBounds(c); err != nil {
		return InhabitantNone, fmt.Errorf("get inhabitant: %w", err)
	}
	return l.room(c).Inhabitant(), nil
}

// Item returns the item in room c without taking it.
func (l *Labyrinth) Item(c Coordinate) (Item, error) {
	if err := l.checkBounds(c); err != nil {
		return ItemNone, fmt.Errorf("get item: %w", err)
	}
	return l.room(c).Item(), nil
}

// AttackEnemy attacks the inhabitant of room c and returns what is left of it.
// A Minotaur is killed; a Mirror is cracked. The attacker's bullet is not
// accounted for here.
func (l *Labyrinth) AttackEnemy(c Coordinate) (Inhabitant, error) {
	if err := l.checkBounds(c); err != nil {
		return InhabitantNone, fmt.Errorf("attack enemy: %w", err)
	}
	rm := l.room(c)
	var next Inhabitant
	switch current := rm.Inhabitant(); current {
	case Minotaur:
		next = MinotaurDead
	case Mirror:
		next = MirrorCracked
	default:
		return current, fmt.Errorf("attack enemy %v: nothing to attack (%s): %w", c, current, ErrInvalidArgument)
	}
	rm.SetInhabitant(next)
	return next, nil
}

// TakeItem takes the item from room c and returns it.
// Taking the treasure leaves TreasureGone behind and marks it as held.
func (l *Labyrinth) TakeItem(c Coordinate) (Item, error) {
	if err := l.checkBounds(c); err != nil {
		return ItemNone, fmt.Errorf("take item: %w", err)
	}
	rm := l.room(c)
	taken := rm.Item()
	switch taken {
	case Bullet:
		rm.SetItem(ItemNone)
	case Treasure:
		rm.SetItem(TreasureGone)
		l.treasureSet = false
	default:
		return ItemNone, fmt.Errorf("take item %v: nothing to take (%s): %w", c, taken, ErrLogic)
	}
	return taken, nil
}

// DropTreasure places the held treasure in room c.
func (l *Labyrinth) DropTreasure(c Coordinate) error {
	if err := l.checkBounds(c); err != nil {
		return fmt.Errorf("drop treasure: %w", err)
	}
	if l.treasureSet {
		return fmt.Errorf("drop treasure %v: treasure is not held: %w", c, ErrLogic)
	}
	l.room(c).SetItem(Treasure)
	l.treasureSet = true
	return nil
}

// DirectionCheck returns what lies on side d of room c.
func (l *Labyrinth) DirectionCheck(c Coordinate, d Direction) (RoomBorder, error) {
	if err := l.checkBounds(c); err != nil {
		return BorderWall, fmt.Errorf("direction check: %w", err)
	}
	border, err := l.room(c).DirectionCheck(d)
	if err != nil {
		return BorderWall, fmt.Errorf("direction check %v: %w", c, err)
	}
	return border, nil
}

// checkBounds returns an ErrDomain error if c is outside the labyrinth.
func (l *Labyrinth) checkBounds(c Coordinate) error {
	if !l.WithinBounds(c) {
		return fmt.Errorf("room %v outside %dx%d labyrinth: %w", c, l.width, l.height, ErrDomain)
	}
	return nil
}

// room returns the room at c, which must be within bounds.
func (l *Labyrinth) room(c Coordinate) *Room {
	return &l.rooms[c.Y*l.width+c.X]
}

// directionBetween returns the side of a facing b when they are adjacent.
func directionBetween(a, b Coordinate) (Direction, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 1 && dy == 0:
		return East, true
	case dx == -1 && dy == 0:
		return West, true
	case dx == 0 && dy == 1:
		return South, true
	case dx == 0 && dy == -1:
		return North, true
	default:
		return DirectionNone, false
	}
}
