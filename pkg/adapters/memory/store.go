package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Store implements ports.SolutionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Solution
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Solution),
	}
}

// Save persists the solution in memory.
func (s *Store) Save(ctx context.Context, solution *domain.Solution) error {
	// Copy to ensure isolation, similar to serialization
	copied := *solution
	copied.Moves = slices.Clone(solution.Moves)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[solution.Puzzle.Key()] = &copied
	return nil
}

// Load retrieves the solution from memory.
func (s *Store) Load(ctx context.Context, key string) (*domain.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solution, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSolutionNotFound
	}

	// Copy on read so callers can't mutate the stored move list
	ret := *solution
	ret.Moves = slices.Clone(solution.Moves)
	return &ret, nil
}

// Delete removes the solution.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns stored solution keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}
