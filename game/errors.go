package game

import (
	"errors"
	"fmt"
)

var (
	// ErrPlayerDied ends the session when health reaches 0.
	ErrPlayerDied = errors.New("player died")

	// ErrInvariantViolation ends the session on an internal inconsistency.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrUnknownWall is returned for a (cell, side) pair the grid never registered.
	ErrUnknownWall = fmt.Errorf("%w: unknown wall", ErrInvariantViolation)

	// ErrGameOver rejects inputs after a fatal condition ended the session.
	ErrGameOver = errors.New("game is over")
)

func invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
