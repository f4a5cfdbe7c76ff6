package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hamed0406/healthmon/internal/endpoint"
	"github.com/hamed0406/healthmon/internal/probe"
	"github.com/hamed0406/healthmon/internal/stats"
)

// outcomeByURL serves canned outcomes and counts invocations. Pool
// workers call Check concurrently, hence the lock.
type outcomeByURL struct {
	mu       sync.Mutex
	outcomes map[string]probe.Outcome
	calls    int
}

func (f *outcomeByURL) Check(ctx context.Context, ep endpoint.Endpoint) probe.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.outcomes[ep.URL]
}

func (f *outcomeByURL) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestExecutor(t *testing.T, checker probe.Checker, eps []endpoint.Endpoint) (*Executor, *stats.Registry) {
	t.Helper()
	registry := stats.NewRegistry(eps)
	return &Executor{
		Log:      zap.NewNop(),
		Checker:  checker,
		Registry: registry,
		Metrics:  NewMetrics(prometheus.NewRegistry()),
	}, registry
}

func TestExecutor_RecordsExactlyOnce(t *testing.T) {
	eps := makeEndpoints(t, 1)
	checker := &outcomeByURL{outcomes: map[string]probe.Outcome{
		eps[0].URL: {Up: true, StatusCode: 200},
	}}
	exec, registry := newTestExecutor(t, checker, eps)

	exec.CheckAndRecord(context.Background(), eps[0])

	require.Equal(t, 1, checker.callCount())
	d, ok := registry.Get(eps[0].Domain)
	require.True(t, ok)
	up, total := d.Counts()
	require.Equal(t, 1, up)
	require.Equal(t, 1, total)
}

func TestExecutor_TransportFailureRecordedAsDown(t *testing.T) {
	eps := makeEndpoints(t, 1)
	checker := &outcomeByURL{outcomes: map[string]probe.Outcome{
		eps[0].URL: {Up: false, Reason: "dial tcp: connection refused"},
	}}
	exec, registry := newTestExecutor(t, checker, eps)

	exec.CheckAndRecord(context.Background(), eps[0])

	d, _ := registry.Get(eps[0].Domain)
	up, total := d.Counts()
	require.Equal(t, 0, up)
	require.Equal(t, 1, total)
}

func TestExecutor_CancelledContextRecordsNothing(t *testing.T) {
	eps := makeEndpoints(t, 1)
	checker := &outcomeByURL{outcomes: map[string]probe.Outcome{}}
	exec, registry := newTestExecutor(t, checker, eps)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec.CheckAndRecord(ctx, eps[0])

	require.Equal(t, 0, checker.callCount())
	d, _ := registry.Get(eps[0].Domain)
	_, total := d.Counts()
	require.Equal(t, 0, total)
}
