package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/healthmon/internal/stats"
)

// Server is the optional read-only status API: the live availability
// snapshot plus prometheus metrics. It never mutates monitor state.
type Server struct {
	Logger   *zap.Logger
	Registry *stats.Registry
	Gatherer prometheus.Gatherer
}

func NewServer(l *zap.Logger, registry *stats.Registry, g prometheus.Gatherer) *Server {
	return &Server{Logger: l, Registry: registry, Gatherer: g}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/availability", s.handleAvailability)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	snap := s.Registry.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.Logger.Warn("availability_encode_error", zap.Error(err))
	}
}
