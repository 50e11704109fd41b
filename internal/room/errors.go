package room

import "errors"

var (
	// ErrQuit is returned when the player chooses to quit. It is not a failure.
	ErrQuit = errors.New("quit requested")

	// ErrInvalidInput means the player typed something that is not a number.
	ErrInvalidInput = errors.New("input is not a number")

	// ErrInputClosed means the input stream is exhausted or unusable.
	ErrInputClosed = errors.New("input is no longer available")

	// ErrOutOfRange means the number does not belong to any visible option.
	ErrOutOfRange = errors.New("no option with that number")

	ErrUnknownRoom      = errors.New("unknown room")
	ErrNoPreviousRoom   = errors.New("no previous room")
	ErrNoVisibleOptions = errors.New("room has no visible options")
	ErrCapacityExceeded = errors.New("inventory is full")
	ErrInvalidOption    = errors.New("invalid option")
)
