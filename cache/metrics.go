package cache

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// cacheMetrics counts lookups by result. A nil *cacheMetrics records nothing.
type cacheMetrics struct {
	lookups *prometheus.CounterVec
}

const (
	resultHit     = "hit"
	resultMiss    = "miss"
	resultCorrupt = "corrupt"
	resultError   = "error"
)

func newCacheMetrics(reg prometheus.Registerer) (*cacheMetrics, error) {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jismesh",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Total code-set cache lookups, by result",
	}, []string{"result"})

	if err := reg.Register(lookups); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		lookups = existing
	}

	return &cacheMetrics{lookups: lookups}, nil
}

func (m *cacheMetrics) lookup(result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
}
