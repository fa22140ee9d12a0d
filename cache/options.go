package cache

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/arloliu/jismesh/format"
	"github.com/arloliu/jismesh/internal/options"
)

// DefaultKeyPrefix prefixes every key written by RedisCache.
const DefaultKeyPrefix = "jismesh:codes"

// Option configures a RedisCache.
type Option = options.Option[*RedisCache]

// WithKeyPrefix sets the key prefix. The default is DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return options.New(func(c *RedisCache) error {
		if prefix == "" {
			return errors.New("key prefix must not be empty")
		}
		c.prefix = prefix

		return nil
	})
}

// WithCompression sets the compression of stored code sets. The default is Zstd.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *RedisCache) error {
		if !ct.Valid() {
			return fmt.Errorf("invalid cache compression: %s", ct)
		}
		c.compression = ct

		return nil
	})
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(c *RedisCache) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	})
}

// WithMetrics registers the cache's Prometheus collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return options.NoError(func(c *RedisCache) {
		c.registerer = reg
	})
}
