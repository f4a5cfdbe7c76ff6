package scheduler

import (
	"context"

	"go.uber.org/zap"

	"github.com/hamed0406/healthmon/internal/endpoint"
	"github.com/hamed0406/healthmon/internal/probe"
	"github.com/hamed0406/healthmon/internal/stats"
)

// Executor runs one check and applies exactly one aggregate update per
// invocation. That one-to-one mapping is what keeps the per-domain
// counters honest, so nothing in here may record twice or skip a
// recording once a check has been performed.
type Executor struct {
	Log      *zap.Logger
	Checker  probe.Checker
	Registry *stats.Registry
	Metrics  *Metrics
}

// CheckAndRecord performs the check unless the run is already cancelled,
// in which case nothing is checked and nothing is recorded. Transport
// failures come back from the checker as a down Outcome and are recorded
// like any other result; they never abort the batch.
func (e *Executor) CheckAndRecord(ctx context.Context, ep endpoint.Endpoint) {
	if ctx.Err() != nil {
		return
	}

	out := e.Checker.Check(ctx, ep)

	agg, ok := e.Registry.Get(ep.Domain)
	if !ok {
		// The registry is built from the same endpoint list before the
		// loop starts, so this indicates a wiring bug, not a check failure.
		e.Log.Error("unregistered_domain", zap.String("domain", ep.Domain), zap.String("url", ep.URL))
		return
	}
	agg.Record(out.Up)

	e.Metrics.Checks.Inc()
	if out.Up {
		e.Metrics.ChecksUp.Inc()
	} else {
		e.Metrics.ChecksDown.Inc()
	}

	e.Log.Debug("endpoint_checked",
		zap.String("name", ep.Name),
		zap.String("url", ep.URL),
		zap.String("domain", ep.Domain),
		zap.Bool("up", out.Up),
		zap.Int("status", out.StatusCode),
		zap.Float64("latency_ms", out.LatencyMS),
		zap.String("reason", out.Reason),
	)
}
