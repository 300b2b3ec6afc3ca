// Package http wires the service's HTTP surface: health and metrics endpoints plus the
// middleware shared by the signup and subscription management handlers.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/respond"
)

const defaultCheckTimeout = 3 * time.Second

// HealthResponse is the body of the /health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the outcome of one dependency check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Pinger is an upstream that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// breakerReporter is implemented by clients guarded by a circuit breaker.
type breakerReporter interface {
	BreakerOpen() bool
}

// Dependency names an upstream checked by the health endpoints.
type Dependency struct {
	Name   string
	Pinger Pinger
}

// HealthHandler checks every dependency concurrently and reports the result of each.
type HealthHandler struct {
	Dependencies []Dependency
	Version      string
	// Timeout bounds the whole check; defaults to 3s.
	Timeout time.Duration
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := runChecks(r.Context(), h.Dependencies, h.timeout())

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]CheckStatus, len(checks)),
		Version:   h.Version,
	}
	status := http.StatusOK
	for i, check := range checks {
		resp.Checks[h.Dependencies[i].Name] = check
		if check.Status != "healthy" {
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, status, resp)
}

func (h *HealthHandler) timeout() time.Duration {
	if h.Timeout > 0 {
		return h.Timeout
	}
	return defaultCheckTimeout
}

// runChecks pings deps in parallel. The result slice is index-aligned with deps.
func runChecks(ctx context.Context, deps []Dependency, timeout time.Duration) []CheckStatus {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make([]CheckStatus, len(deps))
	var g errgroup.Group
	for i, dep := range deps {
		g.Go(func() error {
			results[i] = check(ctx, dep)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func check(ctx context.Context, dep Dependency) CheckStatus {
	if dep.Pinger == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}

	start := time.Now()
	err := dep.Pinger.Ping(ctx)
	details := map[string]any{"latency_ms": time.Since(start).Milliseconds()}
	if br, ok := dep.Pinger.(breakerReporter); ok {
		state := "closed"
		if br.BreakerOpen() {
			state = "open"
		}
		details["circuit_breaker"] = state
	}

	if err != nil {
		slog.WarnContext(ctx, "health check failed",
			slog.String("dependency", dep.Name),
			slog.Any("error", err))
		return CheckStatus{Status: "unhealthy", Message: "unreachable", Details: details}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler answers readiness probes: ready only while every dependency responds.
type ReadyHandler struct {
	Dependencies []Dependency
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for i, check := range runChecks(r.Context(), h.Dependencies, 2*time.Second) {
		if check.Status != "healthy" {
			http.Error(w, h.Dependencies[i].Name+" not ready", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Warn("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler answers liveness probes; it never touches a dependency.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Warn("alive: failed to write response", slog.Any("error", err))
	}
}
