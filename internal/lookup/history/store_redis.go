package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV persists history lists in Redis without expiry.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV constructs a Redis-backed KV.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get loads the raw value for key.
//
// Errors: returns ErrNotFound when the key is absent; wraps Redis errors.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get history: %w", err)
	}
	return data, nil
}

// Set overwrites key with value.
func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
