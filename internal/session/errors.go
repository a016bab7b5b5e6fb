package session

import "errors"

var (
	// ErrNoPlayer is returned when enemies or waves are requested before
	// the player has been spawned.
	ErrNoPlayer = errors.New("session: player has not been spawned")

	// ErrAlreadyStarted is returned by a second Start call.
	ErrAlreadyStarted = errors.New("session: already started")

	// ErrClosed is returned by operations on a closed session.
	ErrClosed = errors.New("session: closed")

	// ErrInvalidPosition is returned for spawn points that are not finite.
	ErrInvalidPosition = errors.New("session: invalid position")
)
