package ports

import (
	"context"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Solver is the interface adapters (HTTP, MCP) use to drive the engine.
type Solver interface {
	// Stream returns the lazy move sequence for a validated puzzle.
	Stream(ctx context.Context, p domain.Puzzle) (*domain.MoveStream, error)

	// Solve collects the full solution, reading through a SolutionStore when one is configured.
	Solve(ctx context.Context, p domain.Puzzle) (*domain.Solution, error)

	// Verify replays moves on a board and reports the first rule violation.
	Verify(p domain.Puzzle, moves []domain.Move) error

	// MaxDisks is the largest disk count the solver accepts.
	MaxDisks() int
}
