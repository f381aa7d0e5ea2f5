package hanoi_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/pkg/adapters/memory"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoves_ReferenceFixture(t *testing.T) {
	stream, err := hanoi.Moves(5, "X", "Z", "Y")
	require.NoError(t, err)

	moves, err := stream.Collect()
	require.NoError(t, err)
	assert.Len(t, moves, 31)

	p := domain.DefaultPuzzle()
	solver := hanoi.New()
	assert.NoError(t, solver.Verify(p, moves))
}

func TestMoves_InvalidInput(t *testing.T) {
	_, err := hanoi.Moves(-1, "A", "B", "C")
	assert.ErrorIs(t, err, domain.ErrNegativeDisks)

	_, err = hanoi.Moves(3, "A", "B", "A")
	assert.ErrorIs(t, err, domain.ErrDuplicatePeg)
}

func TestSolver_Solve_Strategies(t *testing.T) {
	p := domain.NewPuzzle(6, "A", "B", "C")
	rec, err := hanoi.New().Solve(context.Background(), p)
	require.NoError(t, err)
	it, err := hanoi.New(hanoi.WithStrategy(domain.StrategyIterative)).Solve(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, rec.Moves, it.Moves)
	assert.Equal(t, domain.StrategyIterative, it.Strategy)
}

func TestSolver_Solve_ReadThroughCache(t *testing.T) {
	var solves atomic.Int32
	store := memory.NewStore()
	solver := hanoi.New(
		hanoi.WithStore(store),
		hanoi.WithLifecycleHooks(domain.LifecycleHooks{
			OnSolveStart: func(context.Context, *domain.SolveEvent) { solves.Add(1) },
		}),
	)
	ctx := context.Background()
	p := domain.NewPuzzle(4, "A", "B", "C")

	first, err := solver.Solve(ctx, p)
	require.NoError(t, err)
	second, err := solver.Solve(ctx, p)
	require.NoError(t, err)

	assert.Equal(t, int32(1), solves.Load(), "second solve should hit the cache")
	assert.Equal(t, first.Moves, second.Moves)

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{p.Key()}, keys)
}

func TestSolver_Limits(t *testing.T) {
	solver := hanoi.New(hanoi.WithMaxDisks(12), hanoi.WithCollectLimit(8))
	ctx := context.Background()

	_, err := solver.Solve(ctx, domain.NewPuzzle(9, "A", "B", "C"))
	assert.ErrorIs(t, err, domain.ErrTooManyDisks)

	// Streaming is still allowed up to MaxDisks.
	stream, err := solver.Stream(ctx, domain.NewPuzzle(12, "A", "B", "C"))
	require.NoError(t, err)
	assert.Equal(t, uint64(4095), stream.Len())

	_, err = solver.Stream(ctx, domain.NewPuzzle(13, "A", "B", "C"))
	assert.ErrorIs(t, err, domain.ErrTooManyDisks)
	assert.Equal(t, 12, solver.MaxDisks())
}

func TestSolver_Solve_LabelsWithSeparators(t *testing.T) {
	solver := hanoi.New(hanoi.WithStore(memory.NewStore()))
	ctx := context.Background()
	a := domain.NewPuzzle(1, "a:b", "c", "d")
	b := domain.NewPuzzle(1, "a", "b:c", "d")

	_, err := solver.Solve(ctx, a)
	require.NoError(t, err)
	sol, err := solver.Solve(ctx, b)
	require.NoError(t, err)

	assert.Equal(t, b, sol.Puzzle)
	assert.NoError(t, solver.Verify(b, sol.Moves))
}

// staleStore returns the same solution whatever key is asked for.
type staleStore struct {
	*memory.Store
	sol *domain.Solution
}

func (s *staleStore) Load(ctx context.Context, key string) (*domain.Solution, error) {
	return s.sol, nil
}

func TestSolver_Solve_IgnoresMismatchedEntry(t *testing.T) {
	other := domain.NewPuzzle(1, "Q", "R", "S")
	store := &staleStore{
		Store: memory.NewStore(),
		sol:   domain.NewSolution(other, domain.StrategyRecursive, []domain.Move{{Step: 1, Disk: 1, From: "Q", To: "R"}}),
	}
	solver := hanoi.New(hanoi.WithStore(store))
	p := domain.NewPuzzle(2, "A", "B", "C")

	sol, err := solver.Solve(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p, sol.Puzzle)
	assert.Len(t, sol.Moves, 3)
	assert.NoError(t, solver.Verify(p, sol.Moves))
}
