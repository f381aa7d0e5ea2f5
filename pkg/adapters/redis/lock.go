package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/hanoi/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Locker implements ports.DistributedLocker using Redis.
type Locker struct {
	client *backend.Client
	prefix string
}

// NewLocker creates a new Redis locker.
func NewLocker(client *backend.Client, prefix string) *Locker {
	return &Locker{
		client: client,
		prefix: prefix,
	}
}

// Lock acquires a distributed lock for the given key using Redis SET NX PX.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	lockKey := l.prefix + "lock:" + key
	// Token identifying this holder; unlock only deletes the key if it still matches.
	val := fmt.Sprintf("%d", time.Now().UnixNano())

	// Try once immediately, then poll.
	if ok, err := l.client.SetNX(ctx, lockKey, val, ttl).Result(); err != nil {
		return nil, fmt.Errorf("redis error acquiring lock: %w", err)
	} else if ok {
		return l.unlocker(lockKey, val), nil
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			// Try to acquire
			success, err := l.client.SetNX(ctx, lockKey, val, ttl).Result()
			if err != nil {
				return nil, fmt.Errorf("redis error acquiring lock: %w", err)
			}
			if success {
				return l.unlocker(lockKey, val), nil
			}
		}
	}
}

const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

func (l *Locker) unlocker(lockKey, val string) ports.UnlockFunc {
	return func(ctx context.Context) error {
		return l.client.Eval(ctx, unlockScript, []string{lockKey}, val).Err()
	}
}
