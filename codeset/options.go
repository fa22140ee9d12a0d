package codeset

import (
	"fmt"

	"github.com/arloliu/jismesh/endian"
	"github.com/arloliu/jismesh/format"
	"github.com/arloliu/jismesh/internal/options"
)

// DefaultCompression is the payload compression used when WithCompression is not given.
const DefaultCompression = format.CompressionZstd

type encoderConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
}

func defaultEncoderConfig() *encoderConfig {
	return &encoderConfig{
		compression: DefaultCompression,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// Option configures Encode.
type Option = options.Option[*encoderConfig]

// WithCompression sets the payload compression.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		if !c.Valid() {
			return fmt.Errorf("invalid code-set compression: %s", c)
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian writes the header fields little endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes the header fields big endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes the header fields in the host's byte order.
func WithNativeEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetNativeEngine()
	})
}
