package runner

import (
	"context"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Handler defines how moves are presented.
// This allows switching between Text (CLI), JSON (Structured) and Rich (TTY) modes.
type Handler interface {
	// Start is called once before the first move.
	Start(ctx context.Context, p domain.Puzzle, strategy domain.Strategy) error

	// Move presents a single move.
	Move(ctx context.Context, m domain.Move) error

	// Finish is called once after the last move, also when the run was cut short.
	Finish(ctx context.Context, summary Summary) error
}

// Summary describes a completed (or interrupted) run.
type Summary struct {
	Puzzle   domain.Puzzle   `json:"puzzle"`
	Strategy domain.Strategy `json:"strategy"`
	Moves    uint64          `json:"moves"`
	Expected uint64          `json:"expected"`
	Duration time.Duration   `json:"duration"`
	Err      error           `json:"-"`
}

// Complete reports whether every expected move was emitted.
func (s Summary) Complete() bool {
	return s.Err == nil && s.Moves == s.Expected
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling this package.
type ContentRenderer func(string) (string, error)
