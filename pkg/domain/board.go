package domain

import (
	"fmt"
	"iter"
	"slices"
)

// Board simulates the three pegs as explicit stacks of disk ranks.
// The bottom of each stack is index 0.
type Board struct {
	puzzle Puzzle
	stacks map[Peg][]int
	moves  uint64
}

// NewBoard places disks n..1 on the source peg, largest at the bottom.
func NewBoard(p Puzzle) *Board {
	b := &Board{
		puzzle: p,
		stacks: make(map[Peg][]int, 3),
	}
	for _, peg := range p.Pegs() {
		b.stacks[peg] = nil
	}
	src := make([]int, 0, max(p.Disks, 0))
	for d := p.Disks; d >= 1; d-- {
		src = append(src, d)
	}
	b.stacks[p.Source] = src
	return b
}

// Apply performs a move, rejecting anything the puzzle rules forbid.
// A zero Disk skips the rank check.
func (b *Board) Apply(m Move) error {
	from, ok := b.stacks[m.From]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPeg, m.From)
	}
	to, ok := b.stacks[m.To]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPeg, m.To)
	}
	if len(from) == 0 {
		return fmt.Errorf("%w: %s", ErrNoDiskToMove, m.From)
	}
	disk := from[len(from)-1]
	if m.Disk != 0 && m.Disk != disk {
		return fmt.Errorf("%w: top of %s is %d, move names %d", ErrDiskMismatch, m.From, disk, m.Disk)
	}
	if len(to) > 0 && to[len(to)-1] < disk {
		return fmt.Errorf("%w: disk %d onto %d at %s", ErrLargerOnSmaller, disk, to[len(to)-1], m.To)
	}
	if m.From == m.To {
		b.moves++
		return nil
	}
	b.stacks[m.From] = from[:len(from)-1]
	b.stacks[m.To] = append(to, disk)
	b.moves++
	return nil
}

// Stack returns a copy of the disks on a peg, bottom first.
func (b *Board) Stack(peg Peg) []int {
	return slices.Clone(b.stacks[peg])
}

// Moves returns how many moves have been applied.
func (b *Board) Moves() uint64 { return b.moves }

// Solved reports whether every disk sits on the destination, largest at the bottom.
func (b *Board) Solved() bool {
	dst := b.stacks[b.puzzle.Destination]
	if len(dst) != max(b.puzzle.Disks, 0) {
		return false
	}
	for i, d := range dst {
		if d != b.puzzle.Disks-i {
			return false
		}
	}
	return true
}

// Verify replays moves on a fresh board and checks that they solve the puzzle.
// The first violation is returned with its step number.
func Verify(p Puzzle, moves iter.Seq[Move]) error {
	if err := p.Validate(); err != nil {
		return err
	}
	b := NewBoard(p)
	var step uint64
	for m := range moves {
		step++
		if err := b.Apply(m); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
	}
	if !b.Solved() {
		return fmt.Errorf("%w after %d moves", ErrNotSolved, step)
	}
	return nil
}
