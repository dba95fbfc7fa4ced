package fakemsk

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nandemo-ya/mskgo/internal/logging"
	"github.com/nandemo-ya/mskgo/internal/version"
)

// AdminServer serves health, stats and metrics endpoints next to a fake MSK server
type AdminServer struct {
	httpServer *http.Server
	fake       *Server
	gatherer   prometheus.Gatherer
	startTime  time.Time
	ready      atomic.Bool
}

// NewAdminServer creates an admin server for fake listening on addr. A nil
// gatherer serves the default registry.
func NewAdminServer(addr string, fake *Server, gatherer prometheus.Gatherer) *AdminServer {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &AdminServer{
		fake:      fake,
		gatherer:  gatherer,
		startTime: time.Now(),
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Start listens and serves until Stop is called
func (s *AdminServer) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve serves on ln until Stop is called
func (s *AdminServer) Serve(ln net.Listener) error {
	logging.Info("Starting admin server", "addr", ln.Addr().String())
	s.ready.Store(true)
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the admin server
func (s *AdminServer) Stop(ctx context.Context) error {
	logging.Info("Shutting down admin server")
	s.ready.Store(false)
	return s.httpServer.Shutdown(ctx)
}

// SetReady overrides the readiness reported by /ready
func (s *AdminServer) SetReady(ready bool) {
	s.ready.Store(ready)
}

// Handler returns the admin routes
func (s *AdminServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/live", s.handleLiveness)
	mux.HandleFunc("/ready", s.handleReadiness)
	mux.HandleFunc("/stats", s.handleStats)
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

func (s *AdminServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeAdminJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
		Version:   version.GetVersion(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *AdminServer) handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeAdminJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

func (s *AdminServer) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if !s.ready.Load() {
		writeAdminJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	writeAdminJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *AdminServer) handleStats(w http.ResponseWriter, r *http.Request) {
	writeAdminJSON(w, http.StatusOK, s.fake.Stats())
}

func writeAdminJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode admin response", "error", err)
	}
}
