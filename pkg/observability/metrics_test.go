package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/hanoi/internal/runtime"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	engine := runtime.NewEngine(runtime.WithLifecycleHooks(m.Hooks()))
	ctx := context.Background()

	s, err := engine.Stream(ctx, domain.NewPuzzle(4, "A", "B", "C"))
	require.NoError(t, err)
	_, err = s.Collect()
	require.NoError(t, err)

	// Partial: stop after two moves.
	s, err = engine.Stream(ctx, domain.NewPuzzle(4, "A", "B", "C"))
	require.NoError(t, err)
	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}

	assert.Equal(t, float64(17), testutil.ToFloat64(m.Moves))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Solves.WithLabelValues("recursive", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Solves.WithLabelValues("recursive", "partial")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlight))
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	engine := runtime.NewEngine(runtime.WithLifecycleHooks(observability.LoggingHooks(logger)))
	s, err := engine.Stream(context.Background(), domain.NewPuzzle(2, "A", "B", "C"))
	require.NoError(t, err)
	_, err = s.Collect()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=solve_start")
	assert.Contains(t, out, "msg=solve_finish")
	assert.Contains(t, out, "moves=3")
	assert.NotContains(t, out, "msg=move", "moves are debug-only")
}
