package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisHash is the hash that holds properties when none is configured.
const DefaultRedisHash = "libram:properties"

// RedisStore keeps properties as fields of a single Redis hash, so one
// character's preferences can be inspected with HGETALL.
type RedisStore struct {
	client *redis.Client
	hash   string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, hash string) *RedisStore {
	if hash == "" {
		hash = DefaultRedisHash
	}
	return &RedisStore{
		client: client,
		hash:   hash,
	}
}

func (r *RedisStore) Get(ctx context.Context, name string) (string, error) {
	v, err := r.client.HGet(ctx, r.hash, name).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "redis HGET failed", "hash", r.hash, "field", name, "error", err)
		return "", fmt.Errorf("redis hget failed: %w", err)
	}
	return v, nil
}

func (r *RedisStore) Set(ctx context.Context, name, value string) error {
	err := r.client.HSet(ctx, r.hash, name, value).Err()
	if err != nil {
		slog.ErrorContext(ctx, "redis HSET failed", "hash", r.hash, "field", name, "error", err)
		return fmt.Errorf("redis hset failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
