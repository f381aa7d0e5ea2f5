package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Engine validates puzzles and hands out move streams.
type Engine struct {
	strategy domain.Strategy
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxDisks int
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithStrategy selects recursive or iterative generation.
func WithStrategy(s domain.Strategy) EngineOption {
	return func(e *Engine) {
		e.strategy = s
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxDisks lowers the accepted disk count below domain.MaxDisks.
// Servers use it to cap response sizes.
func WithMaxDisks(n int) EngineOption {
	return func(e *Engine) {
		e.maxDisks = n
	}
}

// NewEngine creates an engine. The zero configuration generates recursively.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		strategy: domain.StrategyRecursive,
		maxDisks: domain.MaxDisks,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	return e
}

// Strategy returns the configured generation strategy.
func (e *Engine) Strategy() domain.Strategy { return e.strategy }

// MaxDisks returns the largest disk count the engine accepts.
func (e *Engine) MaxDisks() int { return e.maxDisks }

// Validate applies the fail-fast policy plus the engine's own disk cap.
func (e *Engine) Validate(p domain.Puzzle) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Disks > e.maxDisks {
		return fmt.Errorf("%w: got %d, max %d", domain.ErrTooManyDisks, p.Disks, e.maxDisks)
	}
	return nil
}

// Stream validates p and returns its lazy move stream.
// Cancelling ctx stops the iteration after the current move; Err then reports ctx.Err().
func (e *Engine) Stream(ctx context.Context, p domain.Puzzle) (*domain.MoveStream, error) {
	if err := e.Validate(p); err != nil {
		return nil, fmt.Errorf("invalid puzzle: %w", err)
	}
	gen := Generator(e.strategy)

	return domain.NewMoveStream(p, func(yield func(domain.Move) bool) error {
		start := time.Now()
		e.logger.Debug("solve started", "puzzle", p.Key(), "strategy", e.strategy)
		if e.hooks.OnSolveStart != nil {
			e.hooks.OnSolveStart(ctx, &domain.SolveEvent{
				EventBase: domain.EventBase{Timestamp: start, Type: domain.EventSolveStart},
				Puzzle:    p,
				Strategy:  e.strategy,
			})
		}

		var emitted uint64
		var err error
		for m := range gen(p) {
			if err = ctx.Err(); err != nil {
				break
			}
			emitted++
			if e.hooks.OnMove != nil {
				e.hooks.OnMove(ctx, &domain.MoveEvent{
					EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventMove},
					Move:      m,
				})
			}
			if !yield(m) {
				break
			}
		}

		elapsed := time.Since(start)
		if err != nil {
			e.logger.Warn("solve interrupted", "puzzle", p.Key(), "moves", emitted, "err", err)
		} else {
			e.logger.Debug("solve finished", "puzzle", p.Key(), "moves", emitted, "duration", elapsed)
		}
		if e.hooks.OnSolveFinish != nil {
			e.hooks.OnSolveFinish(ctx, &domain.SolveEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSolveFinish},
				Puzzle:    p,
				Strategy:  e.strategy,
				Moves:     emitted,
				Duration:  elapsed,
				Err:       err,
			})
		}
		return err
	}), nil
}
