// Package game provides the play session and the interactive game loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player moves from room to room.
	StateExplore State = iota
	// StateEscaped means the player left through the exit with the treasure.
	StateEscaped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}
