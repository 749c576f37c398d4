// Package telemetry holds the Prometheus collectors of the dashboard.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pacing"

// Metrics holds every collector the render pass reports to.
type Metrics struct {
	RenderPasses   prometheus.Counter
	RenderDuration prometheus.Histogram
	SourceErrors   prometheus.Counter
	Diagnostics    *prometheus.CounterVec
	AlertsRaised   prometheus.Counter
	AlertsCleared  prometheus.Counter
	StorageErrors  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg. Passing a
// fresh prometheus.NewRegistry keeps tests isolated from the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RenderPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_passes_total",
			Help:      "Total number of dashboard render passes.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time to fetch both feeds and compute one render pass.",
			Buckets:   prometheus.DefBuckets,
		}),
		SourceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Render passes abandoned because a feed could not be read.",
		}),
		Diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_rows_total",
			Help:      "Contract rows skipped during computation, by kind.",
		}, []string{"kind"}),
		AlertsRaised: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_raised_total",
			Help:      "Alerts appended to the broadcast store.",
		}),
		AlertsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_cleared_total",
			Help:      "Times the broadcast store was cleared.",
		}),
		StorageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_storage_errors_total",
			Help:      "Alert store failures, by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(
		m.RenderPasses,
		m.RenderDuration,
		m.SourceErrors,
		m.Diagnostics,
		m.AlertsRaised,
		m.AlertsCleared,
		m.StorageErrors,
	)
	return m
}
