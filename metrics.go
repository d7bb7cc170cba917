package tableview

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects revalidation statistics of engines.
// A nil *Metrics is valid and collects nothing.
type Metrics struct {
	passes        *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	displayedRows prometheus.Gauge
}

// NewMetrics creates Metrics and registers them with reg if not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tableview",
			Name:      "revalidation_passes_total",
			Help:      "Number of revalidation passes by aspect.",
		}, []string{"aspect"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tableview",
			Name:      "revalidation_failures_total",
			Help:      "Number of failed revalidation passes by aspect.",
		}, []string{"aspect"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tableview",
			Name:      "revalidation_duration_seconds",
			Help:      "Duration of revalidation passes by aspect.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"aspect"}),
		displayedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tableview",
			Name:      "displayed_rows",
			Help:      "Number of rows displayed after the last revalidation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.passes, m.failures, m.duration, m.displayedRows)
	}
	return m
}

func (m *Metrics) observePass(aspect Aspect, start time.Time, err error) {
	if m == nil {
		return
	}
	m.passes.WithLabelValues(string(aspect)).Inc()
	m.duration.WithLabelValues(string(aspect)).Observe(time.Since(start).Seconds())
	if err != nil {
		m.failures.WithLabelValues(string(aspect)).Inc()
	}
}

func (m *Metrics) setDisplayedRows(n int) {
	if m == nil {
		return
	}
	m.displayedRows.Set(float64(n))
}
