// README: Prometheus collectors for Qibla lookups, alignment decisions and upstream providers.
package observability

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's Prometheus metrics. A nil *Collector is
// valid and records nothing, so modules can be constructed without metrics
// in tests.
type Collector struct {
	gatherer prometheus.Gatherer

	QiblaLookups         prometheus.Counter
	AlignmentEvaluations *prometheus.CounterVec
	ProviderDurations    *prometheus.HistogramVec
	CacheLookups         *prometheus.CounterVec
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	lookups := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "qibla_lookups_total",
		Help: "Number of Qibla bearing/distance lookups served.",
	})
	lookups, err := register(reg, lookups, "qibla_lookups_total")
	if err != nil {
		return nil, err
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "alignment_evaluations_total",
		Help: "Number of compass alignment evaluations, by outcome.",
	}, []string{"aligned"})
	evaluations, err = register(reg, evaluations, "alignment_evaluations_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provider_request_duration_seconds",
		Help:    "Latency of calls to upstream providers (geocoding, prayer times, LLM).",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"provider", "outcome"})
	durations, err = register(reg, durations, "provider_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Cache lookups by cache name and result.",
	}, []string{"cache", "result"})
	cache, err = register(reg, cache, "cache_lookups_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:             gatherer,
		QiblaLookups:         lookups,
		AlignmentEvaluations: evaluations,
		ProviderDurations:    durations,
		CacheLookups:         cache,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (c *Collector) IncQiblaLookup() {
	if c == nil || c.QiblaLookups == nil {
		return
	}
	c.QiblaLookups.Inc()
}

func (c *Collector) ObserveAlignment(aligned bool) {
	if c == nil || c.AlignmentEvaluations == nil {
		return
	}
	c.AlignmentEvaluations.WithLabelValues(fmt.Sprint(aligned)).Inc()
}

// ObserveProvider records how long an upstream call took and whether it failed.
func (c *Collector) ObserveProvider(provider string, start time.Time, err error) {
	if c == nil || c.ProviderDurations == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.ProviderDurations.WithLabelValues(provider, outcome).Observe(time.Since(start).Seconds())
}

func (c *Collector) ObserveCache(cache string, hit bool) {
	if c == nil || c.CacheLookups == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.CacheLookups.WithLabelValues(cache, result).Inc()
}

// register returns the already-registered collector when an identical one
// exists, which happens when tests build several servers against one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return c, fmt.Errorf("registering %s: %w", name, err)
	}
	return c, nil
}
