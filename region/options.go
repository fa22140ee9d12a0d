package region

import (
	"errors"
	"fmt"

	"github.com/arloliu/jismesh/internal/options"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures an Enumerator.
type Option = options.Option[*Enumerator]

// WithBackend sets the backend used for enumeration. The default is SequentialBackend.
func WithBackend(b Backend) Option {
	return options.New(func(e *Enumerator) error {
		if b == nil {
			return errors.New("backend must not be nil")
		}
		e.backend = b
		e.useParallel = false

		return nil
	})
}

// WithParallel asks for a ParallelBackend built from popts. When the environment cannot
// provide one the enumerator keeps the sequential backend and logs a warning.
func WithParallel(popts ...ParallelOption) Option {
	return options.NoError(func(e *Enumerator) {
		e.useParallel = true
		e.parallelOpts = popts
	})
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(e *Enumerator) {
		if l == nil {
			l = zap.NewNop()
		}
		e.logger = l
	})
}

// WithMetrics registers the enumerator's Prometheus collectors with reg.
// Enumerators sharing a registerer share the collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return options.NoError(func(e *Enumerator) {
		e.registerer = reg
	})
}

// WithMaxCells limits the number of cells a single enumeration may produce.
func WithMaxCells(n int) Option {
	return options.New(func(e *Enumerator) error {
		if n < 1 {
			return fmt.Errorf("max cells must be positive, got %d", n)
		}
		e.maxCells = n

		return nil
	})
}
