package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"poolhire/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatch             = 100
)

// Nil is returned by Get on a cache miss.
const Nil = redis.Nil

// RedisCache stores JSON-encoded values under string keys. Strings are stored as-is.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// traced runs fn inside a cache span tagged with key.
func (cache *redisCache) traced(ctx context.Context, op, key string, fn func(context.Context) error) error {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	err := fn(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		scope.TraceError(err)
	}

	return err
}

// Clear deletes every key matching the glob pattern.
func (cache *redisCache) Clear(ctx context.Context, pattern string) error {
	return cache.traced(ctx, "Clear", pattern, func(ctx context.Context) error {
		iter := cache.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
		batch := make([]string, 0, scanBatch)

		flush := func() error {
			if len(batch) == 0 {
				return nil
			}

			if err := cache.client.Unlink(ctx, batch...).Err(); err != nil {
				log.Error().Err(err).Str("pattern", pattern).Msg("failed to clear cache")

				return fmt.Errorf("failed to delete cache value: %w", err)
			}

			batch = batch[:0]

			return nil
		}

		for iter.Next(ctx) {
			batch = append(batch, iter.Val())
			if len(batch) == scanBatch {
				if err := flush(); err != nil {
					return err
				}
			}
		}

		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}

		return flush()
	})
}

func (cache *redisCache) Delete(ctx context.Context, key string) error {
	return cache.traced(ctx, "Delete", key, func(ctx context.Context) error {
		if err := cache.client.Del(ctx, key).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to delete cache")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}

		return nil
	})
}

// Get decodes the value under key into value. A miss wraps Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) error {
	return cache.traced(ctx, "Get", key, func(ctx context.Context) error {
		raw, err := cache.client.Get(ctx, key).Bytes()
		if err != nil {
			return fmt.Errorf("failed to get cache value: %w", err)
		}

		if target, ok := value.(*string); ok {
			*target = string(raw)

			return nil
		}

		if err := json.Unmarshal(raw, value); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to decode cached value")

			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}

		return nil
	})
}

// Save stores value for duration seconds.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) error {
	return cache.traced(ctx, "Save", key, func(ctx context.Context) error {
		raw, err := encode(value)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")

			return err
		}

		if err := cache.client.Set(ctx, key, raw, time.Duration(duration)*time.Second).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to set cache")

			return fmt.Errorf("failed to set cache value: %w", err)
		}

		log.Debug().Str("key", key).Int("ttl", duration).Msg("cache saved")

		return nil
	})
}

func encode(value any) ([]byte, error) {
	if str, ok := value.(string); ok {
		return []byte(str), nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return raw, nil
}
