package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes recorded by Metrics.
const (
	outcomeCacheHit    = "cache_hit"
	outcomeFetched     = "fetched"
	outcomeRateLimited = "rate_limited"
	outcomeError       = "error"
)

// Metrics holds the price lookup collectors.
type Metrics struct {
	lookups       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewMetrics creates the price collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wealth",
				Subsystem: "price",
				Name:      "lookups_total",
				Help:      "Price lookups by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		fetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wealth",
				Subsystem: "price",
				Name:      "fetch_duration_seconds",
				Help:      "Duration of upstream price fetches",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"provider"},
		),
	}
}

func (m *Metrics) observeLookup(provider, outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(provider, outcome).Inc()
}

func (m *Metrics) observeFetch(provider string, seconds float64) {
	if m == nil {
		return
	}
	m.fetchDuration.WithLabelValues(provider).Observe(seconds)
}
