package domain

import "errors"

// ErrNegativeDisks is returned when a puzzle asks for fewer than zero disks.
var ErrNegativeDisks = errors.New("disk count must not be negative")

// ErrTooManyDisks is returned when the move count would overflow the step counter.
var ErrTooManyDisks = errors.New("disk count exceeds the supported maximum")

// ErrDuplicatePeg is returned when source, destination and auxiliary are not distinct.
var ErrDuplicatePeg = errors.New("peg labels must be distinct")

// ErrEmptyPeg is returned when a peg label is blank.
var ErrEmptyPeg = errors.New("peg label must not be empty")

// ErrStreamConsumed is reported by a MoveStream iterated more than once.
var ErrStreamConsumed = errors.New("move stream already consumed")

// ErrSolutionNotFound is returned when a solution key cannot be found in the store.
var ErrSolutionNotFound = errors.New("solution not found")

// Board violations.
var (
	ErrUnknownPeg      = errors.New("unknown peg")
	ErrNoDiskToMove    = errors.New("no disk on source peg")
	ErrLargerOnSmaller = errors.New("cannot place a larger disk on a smaller one")
	ErrDiskMismatch    = errors.New("moved disk is not the top disk")
	ErrNotSolved       = errors.New("puzzle not solved")
)
