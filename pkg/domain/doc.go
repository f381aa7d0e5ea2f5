/*
Package domain contains the core models of the Hanoi move generator.

It defines the puzzle input, the moves the generator emits, and a board
simulator that replays moves against three explicit peg stacks. This package
is kept pure and free of external dependencies like I/O or persistence.

# Key Entities

  - Peg: An opaque label naming one of the three pegs.
  - Puzzle: The disk count plus the source, destination and auxiliary pegs.
  - Move: A single relocation of the top disk of one peg onto another.
  - MoveStream: A lazy, finite, non-restartable sequence of moves.
  - Board: Three peg stacks used to check that a move sequence is legal.
  - Solution: A collected move list, as persisted by solution stores.
*/
package domain
