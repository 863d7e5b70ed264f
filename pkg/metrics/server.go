package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imnyang/LunaFinder/internal/logger"
)

// Server exposes the metrics registry over HTTP at /metrics.
type Server struct {
	server       *http.Server
	port         int
	shutdownOnce sync.Once
}

// NewServer creates a metrics HTTP server for the global registry.
// Returns nil if metrics are disabled.
func NewServer(port int) *Server {
	reg := GetRegistry()
	if reg == nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		port: port,
	}
}

// Start runs the metrics server until the context is cancelled.
// Safe to call on a nil receiver (metrics disabled).
func (s *Server) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}

	logger.Info("Starting metrics server", logger.Addr(s.server.Addr))

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	}
}

// Stop gracefully shuts down the metrics server. Safe to call multiple
// times and on a nil receiver.
func (s *Server) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var err error
	s.shutdownOnce.Do(func() {
		logger.Info("Stopping metrics server")
		err = s.server.Shutdown(ctx)
	})
	return err
}
