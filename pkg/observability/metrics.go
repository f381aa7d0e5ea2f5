package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Solves   *prometheus.CounterVec
	Moves    prometheus.Counter
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hanoi_solves_total",
				Help: "Total number of move streams iterated, by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		Moves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hanoi_moves_total",
			Help: "Total number of moves emitted",
		}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hanoi_solve_duration_seconds",
				Help:    "Time spent iterating a move stream",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"strategy"},
		),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hanoi_solves_in_flight",
			Help: "Move streams currently being iterated",
		}),
	}
	reg.MustRegister(m.Solves, m.Moves, m.Duration, m.InFlight)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveStart: func(ctx context.Context, e *domain.SolveEvent) {
			m.InFlight.Inc()
		},
		OnMove: func(ctx context.Context, e *domain.MoveEvent) {
			m.Moves.Inc()
		},
		OnSolveFinish: func(ctx context.Context, e *domain.SolveEvent) {
			m.InFlight.Dec()
			outcome := "ok"
			if e.Err != nil {
				outcome = "error"
			} else if e.Moves != e.Puzzle.MoveCount() {
				outcome = "partial"
			}
			m.Solves.WithLabelValues(string(e.Strategy), outcome).Inc()
			m.Duration.WithLabelValues(string(e.Strategy)).Observe(e.Duration.Seconds())
		},
	}
}

// LoggingHooks logs solve boundaries. Moves are logged at debug level only.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveStart: func(ctx context.Context, e *domain.SolveEvent) {
			logger.InfoContext(ctx, "solve_start",
				"puzzle", e.Puzzle.Key(),
				"strategy", e.Strategy,
			)
		},
		OnMove: func(ctx context.Context, e *domain.MoveEvent) {
			logger.DebugContext(ctx, "move",
				"step", e.Move.Step,
				"disk", e.Move.Disk,
				"from", e.Move.From,
				"to", e.Move.To,
			)
		},
		OnSolveFinish: func(ctx context.Context, e *domain.SolveEvent) {
			attrs := []any{
				"puzzle", e.Puzzle.Key(),
				"moves", e.Moves,
				"duration", e.Duration,
			}
			if e.Err != nil {
				logger.WarnContext(ctx, "solve_finish", append(attrs, "err", e.Err)...)
				return
			}
			logger.InfoContext(ctx, "solve_finish", attrs...)
		},
	}
}
