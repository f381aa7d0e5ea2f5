package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSolutionStoreContract runs a suite of tests to verify that a SolutionStore
// implementation adheres to the defined interface contract.
func RunSolutionStoreContract(t *testing.T, store SolutionStore) {
	ctx := context.Background()
	suffix := time.Now().Format("150405.000")
	label := func(s string) domain.Peg { return domain.Peg(s + suffix) }

	puzzle := domain.NewPuzzle(2, label("A"), label("B"), label("C"))
	solution := domain.NewSolution(puzzle, domain.StrategyRecursive, []domain.Move{
		{Step: 1, Disk: 1, From: puzzle.Source, To: puzzle.Auxiliary},
		{Step: 2, Disk: 2, From: puzzle.Source, To: puzzle.Destination},
		{Step: 3, Disk: 1, From: puzzle.Auxiliary, To: puzzle.Destination},
	})

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, solution)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, puzzle.Key())
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, solution.Puzzle, loaded.Puzzle)
		assert.Equal(t, solution.Strategy, loaded.Strategy)
		assert.Equal(t, solution.Moves, loaded.Moves)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-"+suffix)
		assert.ErrorIs(t, err, domain.ErrSolutionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, solution))

		err := store.Delete(ctx, puzzle.Key())
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, puzzle.Key())
		assert.ErrorIs(t, err, domain.ErrSolutionNotFound, "Load after Delete should return ErrSolutionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		p1 := domain.NewPuzzle(1, label("A"), label("B"), label("C"))
		p2 := domain.NewPuzzle(3, label("A"), label("B"), label("C"))
		_ = store.Save(ctx, domain.NewSolution(p1, domain.StrategyRecursive, nil))
		_ = store.Save(ctx, domain.NewSolution(p2, domain.StrategyIterative, nil))

		defer func() {
			_ = store.Delete(ctx, p1.Key())
			_ = store.Delete(ctx, p2.Key())
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, p1.Key())
		assert.Contains(t, keys, p2.Key())
	})
}
