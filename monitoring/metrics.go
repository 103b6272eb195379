// Package monitoring exposes the Prometheus collectors for the feed
// pipeline.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors one pipeline instance reports to.
type Metrics struct {
	refreshRunsTotal   *prometheus.CounterVec
	refreshDuration    prometheus.Histogram
	scoresWrittenTotal prometheus.Counter
	candidatePoolSize  prometheus.Histogram
}

// NewMetrics creates and registers the pipeline collectors. Call once per
// process.
func NewMetrics() *Metrics {
	m := &Metrics{
		refreshRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_refresh_runs_total",
				Help: "Feed refresh runs by outcome",
			},
			[]string{"outcome"},
		),
		refreshDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "feed_refresh_duration_seconds",
				Help:    "End-to-end duration of a feed refresh run",
				Buckets: prometheus.DefBuckets,
			},
		),
		scoresWrittenTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "feed_scores_written_total",
				Help: "Scored rows upserted into the feed store",
			},
		),
		candidatePoolSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "feed_candidate_pool_size",
				Help:    "Candidate posts considered per run",
				Buckets: []float64{0, 10, 50, 100, 250, 500},
			},
		),
	}

	prometheus.MustRegister(
		m.refreshRunsTotal,
		m.refreshDuration,
		m.scoresWrittenTotal,
		m.candidatePoolSize,
	)
	return m
}

// ObserveRun records the outcome of one refresh run.
func (m *Metrics) ObserveRun(outcome string, candidates, written int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.refreshRunsTotal.WithLabelValues(outcome).Inc()
	m.refreshDuration.Observe(elapsed.Seconds())
	m.scoresWrittenTotal.Add(float64(written))
	m.candidatePoolSize.Observe(float64(candidates))
}
