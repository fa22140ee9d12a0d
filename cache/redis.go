package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/arloliu/jismesh/codeset"
	"github.com/arloliu/jismesh/format"
	"github.com/arloliu/jismesh/internal/hash"
	"github.com/arloliu/jismesh/internal/options"
	"github.com/arloliu/jismesh/mesh"
	"github.com/arloliu/jismesh/region"
)

// RedisCache stores code sets in Redis. It is safe for concurrent use.
type RedisCache struct {
	rdb         redis.Cmdable
	prefix      string
	compression format.CompressionType
	logger      *zap.Logger
	metrics     *cacheMetrics
	registerer  prometheus.Registerer
}

// NewRedisCache creates a cache on top of rdb, typically a *redis.Client.
func NewRedisCache(rdb redis.Cmdable, opts ...Option) (*RedisCache, error) {
	if rdb == nil {
		return nil, errors.New("redis client required")
	}

	c := &RedisCache{
		rdb:         rdb,
		prefix:      DefaultKeyPrefix,
		compression: format.CompressionZstd,
		logger:      zap.NewNop(),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.registerer != nil {
		m, err := newCacheMetrics(c.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		c.metrics = m
	}

	return c, nil
}

// Key returns the Redis key of the code set for v at level.
func (c *RedisCache) Key(v region.Viewport, level mesh.Level) string {
	return fmt.Sprintf("%s:%d:%016x", c.prefix, uint8(level), hash.ID(viewportKey(v)))
}

func viewportKey(v region.Viewport) string {
	b := make([]byte, 0, 96)
	for i, f := range []float64{v.Center.Lat, v.Center.Lon, v.LatSpan, v.LonSpan} {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendFloat(b, f, 'g', -1, 64)
	}

	return string(b)
}

// Get returns the cached codes for v at level in ascending order.
//
// A missing key reports ok == false with a nil error. An entry that cannot be decoded is
// deleted and also reported as a miss.
func (c *RedisCache) Get(ctx context.Context, v region.Viewport, level mesh.Level) ([]int64, bool, error) {
	key := c.Key(v, level)

	blob, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.lookup(resultMiss)
		return nil, false, nil
	}
	if err != nil {
		c.metrics.lookup(resultError)
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	set, err := codeset.Decode(blob)
	if err == nil && set.Level != level {
		err = fmt.Errorf("entry holds %s codes", set.Level)
	}
	if err != nil {
		c.metrics.lookup(resultCorrupt)
		c.logger.Warn("dropping unreadable code-set cache entry", zap.String("key", key), zap.Error(err))
		if delErr := c.rdb.Del(ctx, key).Err(); delErr != nil {
			c.logger.Warn("failed to delete code-set cache entry", zap.String("key", key), zap.Error(delErr))
		}

		return nil, false, nil
	}

	c.metrics.lookup(resultHit)

	return set.Codes, true, nil
}

// Put stores codes for v at level. A ttl of zero keeps the entry until it is evicted.
func (c *RedisCache) Put(ctx context.Context, v region.Viewport, level mesh.Level, codes []int64, ttl time.Duration) error {
	blob, err := codeset.Encode(level, codes, codeset.WithCompression(c.compression))
	if err != nil {
		return err
	}

	key := c.Key(v, level)
	if err := c.rdb.Set(ctx, key, blob, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	c.logger.Debug("cached code set",
		zap.String("key", key),
		zap.Int("codes", len(codes)),
		zap.Int("bytes", len(blob)),
	)

	return nil
}

// Invalidate removes the cached code set for v at level.
func (c *RedisCache) Invalidate(ctx context.Context, v region.Viewport, level mesh.Level) error {
	key := c.Key(v, level)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}

	return nil
}
