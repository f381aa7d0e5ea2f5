package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/hanoi"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/pkg/adapters/file"
	"github.com/aretw0/hanoi/pkg/adapters/memory"
	"github.com/aretw0/hanoi/pkg/adapters/redis"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/observability"
	"github.com/aretw0/hanoi/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// lockTTL bounds how long a crashed holder can block a cache fill.
const lockTTL = 30 * time.Second

// App bundles the solver with the resources the CLI owns.
type App struct {
	Solver   *hanoi.Solver
	Store    ports.SolutionStore
	Registry *prometheus.Registry
	Logger   *slog.Logger

	closers []func() error
}

// NewApp builds a Solver from cfg: strategy, store backend, hooks and limits.
// maxDisks <= 0 keeps the library default.
func NewApp(cfg config.Config, logger *slog.Logger, maxDisks int) (*App, error) {
	strategy, err := domain.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	app := &App{
		Registry: prometheus.NewRegistry(),
		Logger:   logger,
	}
	metrics := observability.NewMetrics(app.Registry)

	opts := []hanoi.Option{
		hanoi.WithStrategy(strategy),
		hanoi.WithLogger(logger),
		hanoi.WithLifecycleHooks(observability.LoggingHooks(logger).Merge(metrics.Hooks())),
	}
	if maxDisks > 0 {
		opts = append(opts, hanoi.WithMaxDisks(maxDisks))
	}
	if cfg.Server.CollectLimit > 0 {
		opts = append(opts, hanoi.WithCollectLimit(cfg.Server.CollectLimit))
	}

	switch cfg.Store.Backend {
	case "", config.StoreNone:
	case config.StoreMemory:
		app.Store = memory.NewStore()
	case config.StoreFile:
		app.Store = file.New(cfg.Store.Path)
	case config.StoreRedis:
		var storeOpts []redis.Option
		if cfg.Store.TTL > 0 {
			storeOpts = append(storeOpts, redis.WithTTL(cfg.Store.TTL))
		}
		prefix := "hanoi:"
		if cfg.Store.Prefix != "" {
			prefix = cfg.Store.Prefix
			storeOpts = append(storeOpts, redis.WithPrefix(prefix+"solution:"))
		}
		rs := redis.New(cfg.Store.Address, cfg.Store.Password, cfg.Store.DB, storeOpts...)
		app.Store = rs
		app.closers = append(app.closers, rs.Close)
		opts = append(opts, hanoi.WithLocker(redis.NewLocker(rs.Client(), prefix), lockTTL))
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	if app.Store != nil {
		opts = append(opts, hanoi.WithStore(app.Store))
		logger.Debug("solution cache enabled", "backend", cfg.Store.Backend)
	}

	app.Solver = hanoi.New(opts...)
	return app, nil
}

// Close releases backend connections.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
