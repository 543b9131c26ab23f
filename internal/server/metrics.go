// Package server exposes the optional /metrics endpoint. The endpoint is off
// by default and, when enabled, serves from its own goroutine so the
// measurement path never blocks on scrapes.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/chunkbench/internal/logging"
)

// readHeaderTimeout bounds how long a client may take to send headers.
const readHeaderTimeout = 5 * time.Second

// MetricsServer serves prometheus metrics over HTTP.
type MetricsServer struct {
	srv *http.Server
	log logging.Logger
}

// New creates a MetricsServer for the given listen address and registry.
//
// Parameters:
//   - addr: The listen address (e.g. ":9090").
//   - registry: The prometheus registry to expose.
//   - log: The logger for lifecycle events.
//
// Returns:
//   - *MetricsServer: The configured, not yet started, server.
func New(addr string, registry *prometheus.Registry, log logging.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// Handler returns the HTTP handler, exposed for tests.
func (s *MetricsServer) Handler() http.Handler { return s.srv.Handler }

// Start begins serving in a background goroutine. Listen failures are logged
// rather than returned: metrics exposition is auxiliary, and a busy port must
// not abort a benchmark pass.
func (s *MetricsServer) Start() {
	go func() {
		s.log.Info("metrics endpoint listening", logging.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("metrics endpoint failed", logging.Err(err))
		}
	}()
}

// Shutdown stops the server gracefully.
//
// Parameters:
//   - ctx: Bounds the graceful shutdown.
//
// Returns:
//   - error: The shutdown error, if any.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
