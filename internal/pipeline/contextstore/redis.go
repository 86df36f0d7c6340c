// internal/pipeline/contextstore/redis.go
package contextstore

import (
	"context"
	"time"

	"trip-planner/internal/common/database"
	"trip-planner/internal/common/errors"
)

// RedisStore backs the run context with Redis. Entries expire after TTL so
// abandoned runs do not accumulate.
type RedisStore struct {
	client *database.RedisClient
	ttl    time.Duration
}

func NewRedisStore(client *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key)
	if err != nil {
		return "", errors.NewContextStoreFailedError(err)
	}
	return v, nil
}

func (s *RedisStore) Put(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl); err != nil {
		return errors.NewContextStoreFailedError(err)
	}
	return nil
}
