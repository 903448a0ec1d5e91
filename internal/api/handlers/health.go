package handlers

import (
	"net/http"
)

type HealthHandler struct {
	// Mode is "live" against a real backend or "demo" against in-memory data.
	Mode string
}

// Health provides a minimal liveness check endpoint.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok", "mode": h.Mode}
	writeJSON(w, r, http.StatusOK, res)
}
