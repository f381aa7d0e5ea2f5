package domain

import (
	"fmt"
)

// MaxDisks is the largest disk count whose move count (2^n - 1) still fits
// in the uint64 step counter carried by every Move.
const MaxDisks = 63

// Puzzle describes one Towers of Hanoi instance: how many disks to move and
// which pegs act as source, destination and spare.
type Puzzle struct {
	Disks       int `json:"disks" yaml:"disks" mapstructure:"disks"`
	Source      Peg `json:"source" yaml:"source" mapstructure:"source"`
	Destination Peg `json:"destination" yaml:"destination" mapstructure:"destination"`
	Auxiliary   Peg `json:"auxiliary" yaml:"auxiliary" mapstructure:"auxiliary"`
}

// NewPuzzle builds a puzzle from the four-parameter surface.
func NewPuzzle(disks int, source, destination, auxiliary Peg) Puzzle {
	return Puzzle{
		Disks:       disks,
		Source:      source,
		Destination: destination,
		Auxiliary:   auxiliary,
	}
}

// DefaultPuzzle is the reference invocation: 5 disks from X to Z via Y.
func DefaultPuzzle() Puzzle {
	return NewPuzzle(5, PegX, PegZ, PegY)
}

// Validate enforces the fail-fast policy: non-negative disk count within
// MaxDisks, and three distinct, non-empty peg labels.
func (p Puzzle) Validate() error {
	if p.Disks < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeDisks, p.Disks)
	}
	if p.Disks > MaxDisks {
		return fmt.Errorf("%w: got %d, max %d", ErrTooManyDisks, p.Disks, MaxDisks)
	}
	for _, peg := range p.Pegs() {
		if peg.IsBlank() {
			return ErrEmptyPeg
		}
	}
	if p.Source == p.Destination || p.Source == p.Auxiliary || p.Destination == p.Auxiliary {
		return fmt.Errorf("%w: source=%q destination=%q auxiliary=%q",
			ErrDuplicatePeg, p.Source, p.Destination, p.Auxiliary)
	}
	return nil
}

// Pegs returns the labels in source, destination, auxiliary order.
func (p Puzzle) Pegs() [3]Peg {
	return [3]Peg{p.Source, p.Destination, p.Auxiliary}
}

// MoveCount returns 2^n - 1, the length of the minimal solution.
// It returns 0 for non-positive disk counts.
func (p Puzzle) MoveCount() uint64 {
	return MoveCount(p.Disks)
}

// MoveCount returns 2^n - 1 for 0 <= n <= 64, and 0 for negative n.
func MoveCount(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= 64:
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// Key identifies a puzzle in solution stores. Labels are quoted so a ':'
// inside a label cannot make two puzzles collide.
func (p Puzzle) Key() string {
	return fmt.Sprintf("%d:%q:%q:%q", p.Disks, p.Source, p.Destination, p.Auxiliary)
}

func (p Puzzle) String() string {
	return fmt.Sprintf("%d disks %s -> %s via %s", p.Disks, p.Source, p.Destination, p.Auxiliary)
}
