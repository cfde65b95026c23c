package pokeapi

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cacheKeyPrefix = "pokeapi:"

// CacheConfig configures the redis response cache
type CacheConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration
	Logger zerolog.Logger
}

// cachedFetcher serves documents from redis before hitting the wrapped fetcher.
// PokeAPI content is static, so entries only expire by TTL.
type cachedFetcher struct {
	next   Fetcher
	client redis.UniversalClient
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedFetcher wraps next with a redis cache. A zero TTL disables caching.
func NewCachedFetcher(next Fetcher, cfg *CacheConfig) Fetcher {
	if cfg == nil || cfg.Client == nil || cfg.TTL <= 0 {
		return next
	}

	return &cachedFetcher{
		next:   next,
		client: cfg.Client,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}
}

func (f *cachedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	key := cacheKeyPrefix + url

	cached, err := f.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return cached, nil
	case errors.Is(err, redis.Nil):
	default:
		f.logger.Warn().Err(err).Str("url", url).Msg("pokeapi cache read failed")
	}

	body, err := f.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := f.client.Set(ctx, key, body, f.ttl).Err(); err != nil {
		f.logger.Warn().Err(err).Str("url", url).Msg("pokeapi cache write failed")
	}

	return body, nil
}
