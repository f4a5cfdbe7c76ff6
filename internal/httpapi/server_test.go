package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hamed0406/healthmon/internal/endpoint"
	"github.com/hamed0406/healthmon/internal/stats"
)

func newTestServer(t *testing.T) (*Server, *stats.Registry) {
	t.Helper()
	eps, err := endpoint.NewList([]endpoint.Spec{
		{Name: "a", URL: "https://a.example/"},
		{Name: "b", URL: "https://b.example/"},
	})
	require.NoError(t, err)
	registry := stats.NewRegistry(eps)
	return NewServer(zap.NewNop(), registry, prometheus.NewRegistry()), registry
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestAvailabilitySnapshot(t *testing.T) {
	srv, registry := newTestServer(t)
	a, _ := registry.Get("a.example")
	a.Record(true)
	a.Record(false)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/availability", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap []stats.DomainAvailability
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap, 2)
	require.Equal(t, "a.example", snap[0].Domain)
	require.Equal(t, 50, snap[0].Availability)
	require.Equal(t, 0, snap[1].Total)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
