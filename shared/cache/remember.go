package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Remember returns the value cached under key. On a miss, or when Redis is
// unavailable, it calls load and stores the result for ttl seconds without
// holding up the caller. Errors from load are returned as-is and never cached.
func Remember[T any](ctx context.Context, store RedisCache, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if err := store.Get(ctx, key, &cached); err == nil {
		log.Debug().Str("key", key).Msg("cache hit")

		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	go func(ctx context.Context) {
		if err := store.Save(ctx, key, value, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache value")
		}
	}(context.WithoutCancel(ctx))

	return value, nil
}
