package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// RootMessage is returned by GET /.
const RootMessage = "Grammar Assistant API is running"

// ReadinessProbe reports whether the process should receive traffic.
type ReadinessProbe interface {
	Ready(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	probe   ReadinessProbe
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(probe ReadinessProbe, version string) *HealthHandler {
	return &HealthHandler{probe: probe, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Root answers GET / with a fixed banner.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": RootMessage})
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 while serving, 503 once shutdown began.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.probe.Ready(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check including version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if err := h.probe.Ready(r.Context()); err != nil {
		components["server"] = CompStatus{Status: "down", Detail: err.Error()}
		overallStatus = "down"
	} else {
		components["server"] = CompStatus{Status: "ok"}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
