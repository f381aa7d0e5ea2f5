package hanoi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/hanoi/internal/runtime"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/ports"
)

// DefaultCollectLimit is the largest disk count Solve will materialize (2^20 - 1 moves).
const DefaultCollectLimit = 20

// Solver is the high-level entry point for the hanoi library.
// It wraps the internal runtime and adds solution caching on top of it.
type Solver struct {
	runtime      *runtime.Engine
	store        ports.SolutionStore
	locker       ports.DistributedLocker
	lockTTL      time.Duration
	strategy     domain.Strategy
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	maxDisks     int
	collectLimit int
}

// Option defines a functional option for configuring the Solver.
type Option func(*Solver)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Solver) {
		s.hooks = hooks
	}
}

// WithStrategy selects recursive or iterative generation.
func WithStrategy(strategy domain.Strategy) Option {
	return func(s *Solver) {
		s.strategy = strategy
	}
}

// WithLogger sets a custom structured logger for the solver.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// WithStore enables read-through caching of collected solutions.
func WithStore(store ports.SolutionStore) Option {
	return func(s *Solver) {
		s.store = store
	}
}

// WithLocker serializes cache fills for the same puzzle across replicas.
// It only has an effect together with WithStore.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(s *Solver) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

// WithMaxDisks caps the disk count accepted by every operation.
func WithMaxDisks(n int) Option {
	return func(s *Solver) {
		s.maxDisks = n
	}
}

// WithCollectLimit caps the disk count Solve will materialize in memory.
func WithCollectLimit(n int) Option {
	return func(s *Solver) {
		s.collectLimit = n
	}
}

// New initializes a Solver. Without options it generates recursively,
// caches nothing and accepts up to domain.MaxDisks disks.
func New(opts ...Option) *Solver {
	s := &Solver{
		strategy:     domain.StrategyRecursive,
		maxDisks:     domain.MaxDisks,
		collectLimit: DefaultCollectLimit,
		lockTTL:      30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime)
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.maxDisks > domain.MaxDisks || s.maxDisks < 0 {
		s.maxDisks = domain.MaxDisks
	}

	s.runtime = runtime.NewEngine(
		runtime.WithStrategy(s.strategy),
		runtime.WithLifecycleHooks(s.hooks),
		runtime.WithLogger(s.logger),
		runtime.WithMaxDisks(s.maxDisks),
	)
	return s
}

// Moves is the four-parameter surface: it returns the lazy move stream that
// transfers n disks from source to destination using auxiliary as the spare.
func Moves(n int, source, destination, auxiliary string) (*domain.MoveStream, error) {
	p := domain.NewPuzzle(n, domain.Peg(source), domain.Peg(destination), domain.Peg(auxiliary))
	return New().Stream(context.Background(), p)
}

// Strategy returns the generation strategy in use.
func (s *Solver) Strategy() domain.Strategy { return s.strategy }

// MaxDisks returns the largest disk count accepted.
func (s *Solver) MaxDisks() int { return s.maxDisks }

// Stream validates p and returns its lazy, non-restartable move stream.
func (s *Solver) Stream(ctx context.Context, p domain.Puzzle) (*domain.MoveStream, error) {
	return s.runtime.Stream(ctx, p)
}

// Solve collects the full move list for p.
// With a store configured it reads through the cache and saves fresh results.
func (s *Solver) Solve(ctx context.Context, p domain.Puzzle) (*domain.Solution, error) {
	if err := s.runtime.Validate(p); err != nil {
		return nil, fmt.Errorf("invalid puzzle: %w", err)
	}
	if p.Disks > s.collectLimit {
		return nil, fmt.Errorf("%w: collecting %d disks exceeds limit %d, stream instead",
			domain.ErrTooManyDisks, p.Disks, s.collectLimit)
	}
	if s.store == nil {
		return s.collect(ctx, p)
	}

	key := p.Key()
	if sol := s.cached(ctx, p); sol != nil {
		return sol, nil
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, key, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to lock puzzle %s: %w", key, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("failed to release puzzle lock", "puzzle", key, "err", err)
			}
		}()
		// Another holder may have filled the cache while we waited.
		if sol := s.cached(ctx, p); sol != nil {
			return sol, nil
		}
	}

	sol, err := s.collect(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sol); err != nil {
		// The solution is still good; a cache write failure is not fatal.
		s.logger.Error("failed to cache solution", "puzzle", key, "err", err)
	}
	return sol, nil
}

// cached returns nil on a miss; read failures and entries stored for a
// different puzzle degrade to a miss.
func (s *Solver) cached(ctx context.Context, p domain.Puzzle) *domain.Solution {
	key := p.Key()
	sol, err := s.store.Load(ctx, key)
	switch {
	case err == nil && sol != nil && sol.Puzzle == p:
		s.logger.Debug("solution cache hit", "puzzle", key)
		return sol
	case err == nil:
		s.logger.Warn("solution cache entry does not match puzzle", "puzzle", key)
	case !errors.Is(err, domain.ErrSolutionNotFound):
		s.logger.Warn("solution cache read failed", "puzzle", key, "err", err)
	}
	return nil
}

func (s *Solver) collect(ctx context.Context, p domain.Puzzle) (*domain.Solution, error) {
	stream, err := s.runtime.Stream(ctx, p)
	if err != nil {
		return nil, err
	}
	moves, err := stream.Collect()
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", p.Key(), err)
	}
	return domain.NewSolution(p, s.strategy, moves), nil
}

// Verify replays moves on a fresh board for p.
func (s *Solver) Verify(p domain.Puzzle, moves []domain.Move) error {
	return domain.Verify(p, slices.Values(moves))
}

// Store returns the configured solution store, or nil.
func (s *Solver) Store() ports.SolutionStore { return s.store }

var _ ports.Solver = (*Solver)(nil)
