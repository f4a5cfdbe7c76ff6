package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics carries the scheduler's prometheus instruments. They register
// against the given registerer so tests can use private registries.
type Metrics struct {
	Checks     prometheus.Counter
	ChecksUp   prometheus.Counter
	ChecksDown prometheus.Counter
	Cycles     prometheus.Counter
	CycleDur   prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Checks: f.NewCounter(prometheus.CounterOpts{
			Name: "healthmon_checks_total", Help: "Endpoint checks performed",
		}),
		ChecksUp: f.NewCounter(prometheus.CounterOpts{
			Name: "healthmon_checks_up_total", Help: "Checks classified as up",
		}),
		ChecksDown: f.NewCounter(prometheus.CounterOpts{
			Name: "healthmon_checks_down_total", Help: "Checks classified as down",
		}),
		Cycles: f.NewCounter(prometheus.CounterOpts{
			Name: "healthmon_cycles_total", Help: "Completed check cycles",
		}),
		CycleDur: f.NewHistogram(prometheus.HistogramOpts{
			Name: "healthmon_cycle_duration_seconds", Help: "Wall time of one check cycle",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
