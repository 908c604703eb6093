// Package cache stores JSON-encoded aggregate results behind a key, with a
// time-boxed expiry. Stores are optional collaborators: a miss or a broken
// backend only costs a recomputation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crickstats_cache_hits_total",
		Help: "Cache hits by store",
	}, []string{"store"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crickstats_cache_misses_total",
		Help: "Cache misses by store",
	}, []string{"store"})

	cacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crickstats_cache_errors_total",
		Help: "Cache backend errors by store and operation",
	}, []string{"store", "op"})
)

// Store is a key to JSON blob cache. Get reports false on a miss; an expired
// or undecodable entry is a miss, not an error.
type Store interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

func encode(value any) ([]byte, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode cache value: %w", err)
	}
	return b, nil
}

// Loader collapses concurrent computations of the same key and writes the
// result through to the store.
type Loader struct {
	store  Store
	group  singleflight.Group
	logger *zap.SugaredLogger
}

// NewLoader wraps store. A nil store disables caching but keeps the
// duplicate suppression.
func NewLoader(store Store, logger *zap.Logger) *Loader {
	return &Loader{store: store, logger: logger.Sugar()}
}

// Fetch returns the cached value for key, or computes, stores and returns it.
// Cache failures are logged and never surface to the caller.
func Fetch[T any](ctx context.Context, l *Loader, key string, compute func(context.Context) (T, error)) (T, error) {
	return FetchIf(ctx, l, key, compute, nil)
}

// FetchIf is Fetch, except a computed value is only stored when keep
// reports true for it. A nil keep stores everything.
func FetchIf[T any](ctx context.Context, l *Loader, key string, compute func(context.Context) (T, error), keep func(T) bool) (T, error) {
	var out T
	if l.store != nil {
		hit, err := l.store.Get(ctx, key, &out)
		if err != nil {
			l.logger.Warnw("Cache read failed", "key", key, "error", err)
		}
		if hit {
			return out, nil
		}
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		res, err := compute(ctx)
		if err != nil {
			return res, err
		}
		if l.store != nil && (keep == nil || keep(res)) {
			if err := l.store.Set(ctx, key, res); err != nil {
				l.logger.Warnw("Cache write failed", "key", key, "error", err)
			}
		}
		return res, nil
	})
	if err != nil {
		return out, err
	}
	return v.(T), nil
}

// Purge empties the backing store.
func (l *Loader) Purge(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	return l.store.Clear(ctx)
}
