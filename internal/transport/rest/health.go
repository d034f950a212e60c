package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const pingTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// Check is one named dependency probed by /ready and /health.
type Check struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when every component answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.probe(r.Context())

	status, body := http.StatusOK, "ok"
	if !ok {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{Status: body, Timestamp: time.Now()})
}

// Health is the full health check with per-component latency and the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	status, body := http.StatusOK, "ok"
	if !ok {
		status, body = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, HealthResponse{
		Status:     body,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe pings every component concurrently.
func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		components = make(map[string]CompStatus, len(h.checks))
		healthy    = true
	)
	for _, c := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			err := c.Pinger.Ping(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				components[c.Name] = CompStatus{Status: "down"}
				healthy = false
				return
			}
			components[c.Name] = CompStatus{Status: "ok", Latency: latency.String()}
		}()
	}
	wg.Wait()

	return components, healthy
}
