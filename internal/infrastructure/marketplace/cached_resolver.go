package marketplace

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

const identifierKeyPrefix = "fba:ean2asin:"

type IdentifierResolver interface {
	Resolve(ctx context.Context, ean string) (string, bool)
}

// SharedCache is the subset of the redis client used for resolved
// identifiers. Nil disables the shared layer.
type SharedCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver memoizes successful resolutions in process and, when a
// shared cache is configured, across runs. Misses are never cached: a block
// or a markup change must not stick.
type CachedResolver struct {
	next   IdentifierResolver
	local  *cache.Cache
	shared SharedCache
	ttl    time.Duration
	log    *slog.Logger
}

func NewCachedResolver(next IdentifierResolver, shared SharedCache, ttl time.Duration, log *slog.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		local:  cache.New(ttl, time.Hour),
		shared: shared,
		ttl:    ttl,
		log:    log.With(slog.String(logx.FieldComponent, "resolver-cache")),
	}
}

func (r *CachedResolver) Resolve(ctx context.Context, ean string) (string, bool) {
	if asin, found := r.local.Get(ean); found {
		return asin.(string), true //nolint:forcetypeassert
	}

	if asin, ok := r.sharedGet(ctx, ean); ok {
		r.local.Set(ean, asin, cache.DefaultExpiration)
		return asin, true
	}

	asin, ok := r.next.Resolve(ctx, ean)
	if !ok {
		return "", false
	}

	r.local.Set(ean, asin, cache.DefaultExpiration)
	r.sharedSet(ctx, ean, asin)

	return asin, true
}

func (r *CachedResolver) sharedGet(ctx context.Context, ean string) (string, bool) {
	if r.shared == nil {
		return "", false
	}

	asin, err := r.shared.Get(ctx, identifierKeyPrefix+ean).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger(ctx).Warn("shared cache get", slog.String(logx.FieldEAN, ean), logx.Error(err))
		}

		return "", false
	}

	if len(asin) != asinLength {
		return "", false
	}

	return asin, true
}

func (r *CachedResolver) sharedSet(ctx context.Context, ean, asin string) {
	if r.shared == nil {
		return
	}

	if err := r.shared.Set(ctx, identifierKeyPrefix+ean, asin, r.ttl).Err(); err != nil {
		r.logger(ctx).Warn("shared cache set", slog.String(logx.FieldEAN, ean), logx.Error(err))
	}
}

func (r *CachedResolver) logger(ctx context.Context) *slog.Logger {
	return contextx.LoggerFromContextOr(ctx, r.log)
}
