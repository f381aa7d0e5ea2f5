package runner

import (
	"log/slog"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithHandler configures the output strategy.
func WithHandler(handler Handler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithStrategy records the generation strategy in summaries.
func WithStrategy(s domain.Strategy) Option {
	return func(r *Runner) {
		r.Strategy = s
	}
}
