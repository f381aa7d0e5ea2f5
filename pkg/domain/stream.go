package domain

import (
	"iter"
	"sync"
	"sync/atomic"
)

// Producer pushes moves into yield until it is exhausted, yield returns false,
// or it fails. A nil error with an early stop is not a failure.
type Producer func(yield func(Move) bool) error

// MoveStream is a lazy, finite, non-restartable sequence of moves.
// Nothing is generated until the stream is iterated, and it can be iterated
// exactly once; later iterations yield nothing and set Err to ErrStreamConsumed.
type MoveStream struct {
	puzzle   Puzzle
	produce  Producer
	consumed atomic.Bool

	mu  sync.Mutex
	err error
}

// NewMoveStream wraps a producer for the given puzzle.
func NewMoveStream(p Puzzle, produce Producer) *MoveStream {
	return &MoveStream{puzzle: p, produce: produce}
}

// Puzzle returns the puzzle this stream solves.
func (s *MoveStream) Puzzle() Puzzle { return s.puzzle }

// Len returns the number of moves a full iteration yields.
func (s *MoveStream) Len() uint64 { return s.puzzle.MoveCount() }

// All returns the moves as an iterator. Only the first iteration produces moves.
func (s *MoveStream) All() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if !s.consumed.CompareAndSwap(false, true) {
			s.setErr(ErrStreamConsumed)
			return
		}
		if err := s.produce(yield); err != nil {
			s.setErr(err)
		}
	}
}

// Collect drains the stream into a slice.
func (s *MoveStream) Collect() ([]Move, error) {
	moves := make([]Move, 0, collectHint(s.Len()))
	for m := range s.All() {
		moves = append(moves, m)
	}
	return moves, s.Err()
}

// Err reports the failure that stopped the last iteration, if any.
func (s *MoveStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *MoveStream) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// collectHint caps the preallocation so huge puzzles grow the slice lazily.
func collectHint(n uint64) int {
	const maxHint = 1 << 16
	if n > maxHint {
		return maxHint
	}
	return int(n)
}
