package region

import (
	"errors"
	"time"

	"github.com/arloliu/jismesh/mesh"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "jismesh"
	metricsSubsystem = "region"
)

// enumeratorMetrics holds the optional Prometheus collectors of an Enumerator.
// A nil *enumeratorMetrics records nothing.
type enumeratorMetrics struct {
	enumerations *prometheus.CounterVec
	cells        *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	fallbacks    *prometheus.CounterVec
}

func newEnumeratorMetrics(reg prometheus.Registerer) (*enumeratorMetrics, error) {
	var err error
	m := &enumeratorMetrics{}

	m.enumerations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "enumerations_total",
		Help:      "Total viewport enumerations completed, by backend",
	}, []string{"backend"}))
	if err != nil {
		return nil, err
	}

	m.cells, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "cells_total",
		Help:      "Total mesh cells enumerated, by level",
	}, []string{"level"}))
	if err != nil {
		return nil, err
	}

	m.duration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "enumerate_duration_seconds",
		Help:      "Time spent computing the codes of one viewport",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"backend"}))
	if err != nil {
		return nil, err
	}

	m.fallbacks, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "backend_fallbacks_total",
		Help:      "Total enumerations rerun on the sequential backend after the configured backend failed",
	}, []string{"backend"}))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// register registers c, or returns the collector already registered under the same name.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}

func (m *enumeratorMetrics) observe(backend string, level mesh.Level, cells int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.enumerations.WithLabelValues(backend).Inc()
	m.cells.WithLabelValues(level.String()).Add(float64(cells))
	m.duration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

func (m *enumeratorMetrics) fallback(backend string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(backend).Inc()
}
