package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/hanoi/pkg/adapters/redis"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunSolutionStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second), redis.WithPrefix("test:"))
	ctx := context.Background()
	p := domain.NewPuzzle(2, "A", "B", "C")

	// 1. Save
	err := store.Save(ctx, domain.NewSolution(p, domain.StrategyRecursive, nil))
	require.NoError(t, err)

	// 2. Verify List (immediately)
	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, keys, p.Key())
	assert.True(t, mr.Exists("test:"+p.Key()))

	// 3. Fast Forward time in miniredis (for Key Expiration)
	mr.FastForward(2 * time.Second)

	// 4. Verify Load (should fail)
	_, err = store.Load(ctx, p.Key())
	assert.ErrorIs(t, err, domain.ErrSolutionNotFound)

	// 5. The index score is wall-clock based, so wait past it for lazy cleanup.
	time.Sleep(2100 * time.Millisecond)

	keys, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRedisLocker_LockUnlock(t *testing.T) {
	_, client := newClient(t)
	locker := redis.NewLocker(client, "test:")
	ctx := context.Background()
	key := domain.DefaultPuzzle().Key()

	// 1. Acquire Lock
	unlock, err := locker.Lock(ctx, key, 5*time.Second)
	require.NoError(t, err)
	require.NotNil(t, unlock)

	// 2. A second holder times out while the first holds it
	ctxShort, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctxShort, key, 5*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// 3. Release, then acquire again
	require.NoError(t, unlock(ctx))

	unlock2, err := locker.Lock(ctx, key, 5*time.Second)
	require.NoError(t, err)
	assert.NoError(t, unlock2(ctx))
}
