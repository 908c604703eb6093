package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// RedisStore keeps entries under a key prefix with a native TTL.
type RedisStore struct {
	client RedisClient
	prefix string
	maxAge time.Duration
}

// NewRedisStore namespaces every key with prefix and expires it after maxAge.
func NewRedisStore(client RedisClient, prefix string, maxAge time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, maxAge: maxAge}
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

func (s *RedisStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheMisses.WithLabelValues("redis").Inc()
		return false, nil
	}
	if err != nil {
		cacheErrors.WithLabelValues("redis", "get").Inc()
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		cacheMisses.WithLabelValues("redis").Inc()
		return false, nil
	}
	cacheHits.WithLabelValues("redis").Inc()
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	b, err := encode(value)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(key), b, s.maxAge).Err(); err != nil {
		cacheErrors.WithLabelValues("redis", "set").Inc()
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Clear deletes every key under the prefix using SCAN, never KEYS.
func (s *RedisStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 500).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
