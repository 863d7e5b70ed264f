package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/imnyang/LunaFinder/internal/telemetry"
	"github.com/imnyang/LunaFinder/pkg/vfs"
)

// HealthHandler handles health check endpoints.
//
// Health endpoints are unauthenticated and provide:
//   - Liveness probe: Is the server process running?
//   - Readiness probe: Is the server ready to accept requests?
//   - Mount health: Detailed health status of every configured mount
type HealthHandler struct {
	holder  *vfs.Holder
	metrics vfs.Metrics
	started time.Time
}

// NewHealthHandler creates a new health handler.
//
// The holder parameter may be nil, in which case readiness and mount
// health checks will return unhealthy status. metrics may be nil to
// disable collection; when set, every mount probe records a resolve
// observation.
func NewHealthHandler(holder *vfs.Holder, metrics vfs.Metrics) *HealthHandler {
	return &HealthHandler{holder: holder, metrics: metrics, started: time.Now()}
}

// Liveness handles GET /health - simple liveness probe.
//
// Returns 200 OK if the server process is running. This endpoint is designed
// for Kubernetes liveness probes and should always succeed as long as the
// HTTP server is responsive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.started)
	writeJSON(w, http.StatusOK, healthyResponse(map[string]interface{}{
		"service":    "lunafinder",
		"started_at": h.started.UTC().Format(time.RFC3339),
		"uptime":     uptime.Round(time.Second).String(),
		"uptime_sec": int64(uptime.Seconds()),
	}))
}

// Readiness handles GET /health/ready - readiness probe.
//
// Returns 200 OK if the server is ready to accept requests. This checks:
//   - A registry snapshot is published
//   - At least one mount is configured
//
// Returns 503 Service Unavailable if the server is not ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	reg := h.registry()
	if reg == nil {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse("registry not initialized"))
		return
	}

	mountCount := reg.Count()
	if mountCount == 0 {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse("no mounts configured"))
		return
	}

	writeJSON(w, http.StatusOK, healthyResponse(map[string]interface{}{
		"mounts": mountCount,
	}))
}

// MountHealth represents the health status of a single mount.
type MountHealth struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	Latency     string `json:"latency,omitempty"`
}

// MountsResponse represents the detailed mount health response.
type MountsResponse struct {
	Mounts []MountHealth `json:"mounts"`
}

// Mounts handles GET /health/mounts - detailed mount health.
//
// Probes every configured mount by resolving its root through the
// path resolver and reports the probe latency. A mount whose root has
// disappeared or become unreadable since startup is reported
// unhealthy. Probing through the resolver keeps the resolve metrics
// and trace spans live on a production path.
//
// Returns 200 OK if all mounts are healthy, 503 Service Unavailable if
// any mount is unhealthy.
func (h *HealthHandler) Mounts(w http.ResponseWriter, r *http.Request) {
	reg := h.registry()
	if reg == nil {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponse("registry not initialized"))
		return
	}

	resolver := vfs.NewResolver(reg, h.metrics)

	response := MountsResponse{
		Mounts: make([]MountHealth, 0, reg.Count()),
	}

	allHealthy := true
	for _, mp := range reg.List() {
		ctx, span := telemetry.StartVFSSpan(r.Context(), "resolve", mp.ID, ".")

		start := time.Now()
		rp, err := resolver.Resolve(ctx, mp.ID, ".")
		var info os.FileInfo
		if err == nil {
			info, err = os.Stat(rp.Absolute)
		}
		latency := time.Since(start)

		health := MountHealth{
			ID:          mp.ID,
			Description: mp.Description,
			Latency:     latency.String(),
		}

		switch {
		case err != nil:
			health.Status = "unhealthy"
			health.Error = "mount root not accessible"
			allHealthy = false
			if code, ok := vfs.CodeOf(err); ok {
				span.SetAttributes(telemetry.FSErrorCode(code.String()))
			}
			span.SetAttributes(telemetry.FSOutcome("error"))
		case !info.IsDir():
			health.Status = "unhealthy"
			health.Error = "mount root is not a directory"
			allHealthy = false
			span.SetAttributes(telemetry.FSOutcome("error"))
		default:
			health.Status = "healthy"
			span.SetAttributes(telemetry.FSOutcome("ok"))
		}
		span.End()

		response.Mounts = append(response.Mounts, health)
	}

	if allHealthy {
		writeJSON(w, http.StatusOK, healthyResponse(response))
	} else {
		writeJSON(w, http.StatusServiceUnavailable, unhealthyResponseWithData(response))
	}
}

// registry returns the current registry snapshot, or nil.
func (h *HealthHandler) registry() *vfs.Registry {
	if h.holder == nil {
		return nil
	}
	return h.holder.Load()
}
