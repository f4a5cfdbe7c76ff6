package probe

import (
	"context"

	"github.com/hamed0406/healthmon/internal/endpoint"
)

// Outcome is the unified result of a single check.
//
// Fields:
// - StatusCode: HTTP status code when a response arrived; 0 for
//   transport/DNS errors.
// - Reason: human-readable classification detail for logging.
type Outcome struct {
	Up         bool
	StatusCode int
	LatencyMS  float64
	Reason     string
}

// Checker performs a single check for a given endpoint. Transport
// failures are folded into the Outcome, never returned as errors.
type Checker interface {
	Check(ctx context.Context, ep endpoint.Endpoint) Outcome
}
