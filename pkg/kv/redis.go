package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/adamolayo/vatcart-backend/pkg/redis"
)

// redisCommands is the slice of the redis client RedisStore depends on.
type redisCommands interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RedisStore keeps each blob in a plain redis string without expiry.
type RedisStore struct {
	client redisCommands
}

func NewRedisStore(client redisCommands) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key)
	if errors.Is(err, pkgredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *RedisStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := s.client.Set(ctx, key, blob, 0); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
