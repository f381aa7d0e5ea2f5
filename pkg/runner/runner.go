package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Runner drains a MoveStream into a Handler.
type Runner struct {
	// Handler is the output strategy. Defaults to a TextHandler on stdout.
	Handler Handler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Strategy is reported to handlers; it does not change generation.
	Strategy domain.Strategy
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	if r.Strategy == "" {
		r.Strategy = domain.StrategyRecursive
	}
	return r
}

// Run iterates the stream once, forwarding each move to the handler.
// It stops at the first handler error or when ctx is cancelled. Finish is
// always called with what was emitted so far.
func (r *Runner) Run(ctx context.Context, stream *domain.MoveStream) (Summary, error) {
	p := stream.Puzzle()
	summary := Summary{
		Puzzle:   p,
		Strategy: r.Strategy,
		Expected: stream.Len(),
	}

	if err := r.Handler.Start(ctx, p, r.Strategy); err != nil {
		return summary, fmt.Errorf("handler start: %w", err)
	}

	start := time.Now()
	var runErr error
	for m := range stream.All() {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if err := r.Handler.Move(ctx, m); err != nil {
			runErr = fmt.Errorf("handler move %d: %w", m.Step, err)
			break
		}
		summary.Moves++
	}
	if runErr == nil {
		runErr = stream.Err()
	}
	summary.Duration = time.Since(start)
	summary.Err = runErr

	if runErr != nil {
		r.Logger.Warn("run stopped early", "puzzle", p.Key(), "moves", summary.Moves, "err", runErr)
	} else {
		r.Logger.Debug("run finished", "puzzle", p.Key(), "moves", summary.Moves, "duration", summary.Duration)
	}

	if err := r.Handler.Finish(ctx, summary); err != nil {
		return summary, errors.Join(runErr, fmt.Errorf("handler finish: %w", err))
	}
	return summary, runErr
}
