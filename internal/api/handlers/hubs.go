package handlers

import (
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/services"
	"net/http"
)

type HubHandler struct {
	Directory *services.HubDirectory
}

func (h *HubHandler) List(w http.ResponseWriter, r *http.Request) {
	hubs, err := h.Directory.List(r.Context())
	if err != nil {
		writeBackendError(w, r, err, "failed to load hubs")
		return
	}
	if hubs == nil {
		hubs = []string{}
	}
	writeJSON(w, r, http.StatusOK, dto.ListHubsResponse{Hubs: hubs})
}
