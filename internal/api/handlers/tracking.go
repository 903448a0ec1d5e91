package handlers

import (
	"errors"
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/ports"
	"logistichub-console/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type TrackingHandler struct {
	Service *services.TrackingService
}

// Get returns the progress view for a tracking ID.
func (h *TrackingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "trackingID")

	view, err := h.Service.Track(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNoTrackingID):
		writeError(w, r, http.StatusBadRequest, "tracking id is required")
		return
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "tracking id not found")
		return
	case err != nil:
		writeBackendError(w, r, err, "failed to load tracking information")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewTrackingResponse(view))
}
