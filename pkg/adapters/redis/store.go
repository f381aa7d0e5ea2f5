package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/hanoi/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SolutionStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for cached solutions.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for solutions.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "hanoi:solution:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Client exposes the underlying client so a Locker can share it.
func (s *Store) Client() *backend.Client { return s.client }

func (s *Store) key(k string) string {
	return s.prefix + k
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the solution to Redis.
func (s *Store) Save(ctx context.Context, solution *domain.Solution) error {
	data, err := json.Marshal(solution)
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}
	k := solution.Puzzle.Key()

	pipe := s.client.Pipeline()

	// 1. Save JSON with TTL (0 means no expiration)
	pipe.Set(ctx, s.key(k), data, s.ttl)

	// 2. Add to Index (ZSET). Score = expiry time, far future without TTL.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: k,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the solution from Redis.
func (s *Store) Load(ctx context.Context, key string) (*domain.Solution, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var solution domain.Solution
	if err := json.Unmarshal([]byte(val), &solution); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution: %w", err)
	}
	return &solution, nil
}

// Delete removes the solution and its index entry.
func (s *Store) Delete(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(key))
	pipe.ZRem(ctx, s.indexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns live solution keys, lazily dropping expired index entries.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("(%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to clean up index: %w", err)
	}

	keys, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	return keys, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
