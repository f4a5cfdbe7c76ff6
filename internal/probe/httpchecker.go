package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/healthmon/internal/endpoint"
)

type HTTPChecker struct {
	Client *http.Client
}

// NewHTTPChecker builds a checker whose client enforces the per-request
// timeout; a timed-out request surfaces as a transport error and is
// classified as down.
func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPChecker) Check(ctx context.Context, ep endpoint.Endpoint) Outcome {
	start := time.Now()

	var body io.Reader
	if ep.Body != "" {
		body = strings.NewReader(ep.Body)
	}
	req, err := http.NewRequestWithContext(ctx, ep.Method, ep.URL, body)
	if err != nil {
		return Outcome{Up: false, Reason: err.Error()}
	}
	for k, v := range ep.Headers {
		req.Header.Set(k, v)
	}

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return Outcome{Up: false, LatencyMS: latency, Reason: err.Error()}
	}
	defer resp.Body.Close()

	up := resp.StatusCode >= 200 && resp.StatusCode <= 299
	return Outcome{
		Up:         up,
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
		Reason:     resp.Status,
	}
}
