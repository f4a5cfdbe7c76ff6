package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/healthmon/internal/endpoint"
	"github.com/hamed0406/healthmon/internal/report"
	"github.com/hamed0406/healthmon/internal/stats"
)

// ErrOverrun means one cycle's checks took longer than the interval, so
// the configured cadence cannot be kept. The monitor stops instead of
// letting the schedule drift.
var ErrOverrun = errors.New("check cycle exceeded the configured interval")

type Monitor struct {
	Log         *zap.Logger
	Endpoints   []endpoint.Endpoint
	Registry    *stats.Registry
	Exec        *Executor
	Pool        *Pool
	Reporter    report.Reporter
	Interval    time.Duration
	Concurrency int
	Metrics     *Metrics
}

func NewMonitor(
	log *zap.Logger,
	eps []endpoint.Endpoint,
	registry *stats.Registry,
	exec *Executor,
	pool *Pool,
	reporter report.Reporter,
	interval time.Duration,
	concurrency int,
	metrics *Metrics,
) *Monitor {
	if concurrency < 1 {
		concurrency = 1
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Monitor{
		Log:         log,
		Endpoints:   eps,
		Registry:    registry,
		Exec:        exec,
		Pool:        pool,
		Reporter:    reporter,
		Interval:    interval,
		Concurrency: concurrency,
		Metrics:     metrics,
	}
}

// Run drives the fixed-interval loop: dispatch every batch through the
// pool, report the cumulative snapshot, then wait out the rest of the
// interval. It returns nil on cancellation, ErrOverrun when a cycle
// cannot fit inside the interval. Each cycle re-batches so the shuffle
// differs run to run. Cycle N+1 never starts before cycle N's report
// has been emitted.
func (m *Monitor) Run(ctx context.Context) error {
	defer m.Pool.Close()

	for {
		start := time.Now()

		for _, batch := range Batches(m.Endpoints, m.Concurrency) {
			if ctx.Err() != nil {
				break
			}
			jobs := make([]func(), 0, len(batch))
			for _, ep := range batch {
				ep := ep
				jobs = append(jobs, func() { m.Exec.CheckAndRecord(ctx, ep) })
			}
			if err := m.Pool.RunBatch(ctx, jobs); err != nil {
				break
			}
		}

		// Report even on the way out so the final counters are visible.
		m.Reporter.Report(m.Registry.Snapshot())

		elapsed := time.Since(start)
		m.Metrics.Cycles.Inc()
		m.Metrics.CycleDur.Observe(elapsed.Seconds())

		if ctx.Err() != nil {
			m.Log.Info("monitor_stopped")
			return nil
		}

		remaining := m.Interval - elapsed
		if remaining <= 0 {
			m.Log.Warn("cycle_overrun",
				zap.Duration("elapsed", elapsed),
				zap.Duration("interval", m.Interval),
				zap.Int("endpoints", len(m.Endpoints)),
				zap.Int("concurrency", m.Concurrency),
			)
			return ErrOverrun
		}

		if !sleepCtx(ctx, remaining) {
			m.Log.Info("monitor_stopped")
			return nil
		}
	}
}

// sleepCtx waits for d or until ctx is cancelled; false means cancelled.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
