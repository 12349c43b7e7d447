// internal/infrastructure/storage/redis_kv.go
package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV on top of Redis. Values never expire; a cart
// survives until the customer clears it or checks out.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV creates a Redis-backed key-value store
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get retrieves a value by key
func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores a value under key
func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Remove deletes a key
func (s *RedisKV) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
