package handlers

import (
	"errors"
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/services"
	"net/http"
	"strings"
)

type DeliveryHandler struct {
	Service *services.DeliveryService
}

func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDeliveryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg, err := h.Service.Create(r.Context(), req.ToDomain())
	if errors.Is(err, domain.ErrInvalidDelivery) {
		msg := err.Error()
		if _, detail, ok := strings.Cut(msg, domain.ErrInvalidDelivery.Error()+": "); ok {
			msg = detail
		}
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}
	if err != nil {
		writeBackendError(w, r, err, "failed to create delivery")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateDeliveryResponse{
		TrackingID: pkg.TrackingID,
		Package:    dto.NewPackageResponse(*pkg),
	})
}
