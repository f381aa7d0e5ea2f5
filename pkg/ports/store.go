package ports

import (
	"context"

	"github.com/aretw0/hanoi/pkg/domain"
)

// SolutionStore defines the interface for persisting collected solutions.
// Keys are domain.Puzzle.Key() values.
type SolutionStore interface {
	// Save persists the solution under its puzzle key.
	Save(ctx context.Context, solution *domain.Solution) error

	// Load retrieves the solution for a key.
	// Returns domain.ErrSolutionNotFound if there is none.
	Load(ctx context.Context, key string) (*domain.Solution, error)

	// Delete removes the solution for a key.
	Delete(ctx context.Context, key string) error

	// List returns the keys of stored solutions.
	List(ctx context.Context) ([]string, error)
}
