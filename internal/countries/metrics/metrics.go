// Package metrics provides observability for the countries module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks lookup counts by kind/outcome and lookup durations.
// A nil *Metrics is valid and records nothing, so tests can skip it.
type Metrics struct {
	Lookups        *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
}

// New creates and registers all countries module metrics.
func New() *Metrics {
	return &Metrics{
		Lookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_country_lookups_total",
			Help: "Total country lookups by kind and outcome",
		}, []string{"kind", "outcome"}),
		LookupDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atlas_country_lookup_duration_seconds",
			Help:    "Duration of country lookups including the upstream call",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
	}
}

// ObserveLookup records one completed lookup. Call with time.Now() taken at
// the start of the operation.
func (m *Metrics) ObserveLookup(kind, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(kind, outcome).Inc()
	m.LookupDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
