// Package metrics provides observability for the weather module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks weather report counts and end-to-end durations covering
// both outbound calls. A nil *Metrics records nothing.
type Metrics struct {
	Reports        *prometheus.CounterVec
	ReportDuration prometheus.Histogram
}

// New creates and registers all weather module metrics.
func New() *Metrics {
	return &Metrics{
		Reports: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_weather_reports_total",
			Help: "Total weather reports by outcome",
		}, []string{"outcome"}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "atlas_weather_report_duration_seconds",
			Help:    "Duration of weather reports including geocoding and conditions calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// ObserveReport records one completed weather report. Call with time.Now()
// taken at the start of the operation.
func (m *Metrics) ObserveReport(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Reports.WithLabelValues(outcome).Inc()
	m.ReportDuration.Observe(time.Since(start).Seconds())
}
