package labyrinth

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of
// ErrDomain, ErrInvalidArgument or ErrLogic and can be matched with errors.Is.
var (
	// ErrDomain reports a size or coordinate outside the valid range.
	ErrDomain = errors.New("out of range")
	// ErrInvalidArgument reports a structurally invalid argument, such as
	// DirectionNone where a real side is required.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrLogic reports a valid request that would break a grid invariant.
	ErrLogic = errors.New("logic error")

	// ErrAlreadyBroken reports a wall that has already been removed.
	ErrAlreadyBroken = fmt.Errorf("wall already broken: %w", ErrLogic)
	// ErrAlreadyHasExit reports a second exit on the same room.
	ErrAlreadyHasExit = fmt.Errorf("room already has an exit: %w", ErrLogic)
)
