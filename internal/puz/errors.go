package puz

import "errors"

var (
	// ErrMalformedHeader is returned when the buffer is too short to hold the
	// fixed header (dimensions and lock flag).
	ErrMalformedHeader = errors.New("puz: malformed header")

	// ErrTruncatedGrid is returned when the buffer ends inside the solution grid.
	ErrTruncatedGrid = errors.New("puz: truncated grid")

	// ErrTruncatedStringTable is returned when a string has no NUL terminator.
	ErrTruncatedStringTable = errors.New("puz: truncated string table")

	// ErrMalformedRebusTable is returned when the rebus substring table does
	// not follow the "key:text;" shape or references an unknown key.
	ErrMalformedRebusTable = errors.New("puz: malformed rebus table")

	// ErrTruncatedExtension is returned when a marker is found but its
	// payload runs past the end of the buffer.
	ErrTruncatedExtension = errors.New("puz: truncated extension payload")
)
