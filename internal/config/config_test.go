package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPuzzle(), cfg.Puzzle)
	assert.Equal(t, "recursive", cfg.Strategy)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	content := `
puzzle:
  disks: 7
  source: left
  destination: right
  auxiliary: middle
strategy: iterative
output: json
store:
  backend: redis
  address: cache:6379
  ttl: 10m
server:
  max_disks: 18
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, domain.NewPuzzle(7, "left", "right", "middle"), cfg.Puzzle)
	assert.Equal(t, "iterative", cfg.Strategy)
	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, config.StoreRedis, cfg.Store.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Store.TTL)
	assert.Equal(t, 18, cfg.Server.MaxDisks)
	// Untouched fields keep their defaults.
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: sideways\n"), 0644))
	_, err := config.Load(path, true)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("output: [\n"), 0644))
	_, err = config.Load(path, true)
	assert.Error(t, err)
}
