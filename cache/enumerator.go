package cache

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/mesh"
	"github.com/arloliu/jismesh/region"
)

// Enumerator computes the codes of a viewport. *region.Enumerator satisfies it.
type Enumerator interface {
	Codes(v region.Viewport, level mesh.Level) ([]int64, error)
}

// CachedEnumerator answers enumerations from a RedisCache and fills it on misses.
//
// Codes are returned in ascending order whether or not they came from the cache.
type CachedEnumerator struct {
	enum   Enumerator
	cache  *RedisCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedEnumerator wraps enum with read-through caching. Entries written on a miss expire
// after ttl; zero keeps them until evicted.
func NewCachedEnumerator(enum Enumerator, cache *RedisCache, ttl time.Duration) *CachedEnumerator {
	return &CachedEnumerator{
		enum:   enum,
		cache:  cache,
		ttl:    ttl,
		logger: cache.logger,
	}
}

// Codes returns the numeric codes of the cells covering v in ascending order.
func (e *CachedEnumerator) Codes(ctx context.Context, v region.Viewport, level mesh.Level) ([]int64, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	codes, ok, err := e.cache.Get(ctx, v, level)
	if err != nil {
		e.logger.Warn("code-set cache lookup failed", zap.Error(err))
	}
	if ok {
		return codes, nil
	}

	codes, err = e.enum.Codes(v, level)
	if err != nil {
		return nil, err
	}
	slices.Sort(codes)

	if err := e.cache.Put(ctx, v, level, codes, e.ttl); err != nil {
		e.logger.Warn("code-set cache write failed", zap.Error(err))
	}

	return codes, nil
}

// Generate returns the mesh codes of the cells covering v in ascending order.
func (e *CachedEnumerator) Generate(ctx context.Context, v region.Viewport, level mesh.Level) ([]string, error) {
	codes, err := e.Codes(ctx, v, level)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = mesh.Format(c, level)
	}

	return out, nil
}
