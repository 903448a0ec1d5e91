package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/api/ws"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/ports"
	"logistichub-console/internal/services"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DashboardHandler serves the operator's hub dashboard.
type DashboardHandler struct {
	Dashboard *services.DashboardService
	Updater   *services.StatusUpdater
	Sessions  *services.SessionStore
	Refresher *services.Refresher

	// AllowOrigin vets websocket handshakes; nil accepts all origins.
	AllowOrigin func(origin string) bool
}

// Consignments lists the selected hub's trips for a date, gated for the
// caller's session.
func (h *DashboardHandler) Consignments(w http.ResponseWriter, r *http.Request) {
	sess := sessionFor(w, r, h.Sessions)
	q := r.URL.Query()

	view, err := h.Dashboard.Load(r.Context(), sess, q.Get("hub"), q.Get("date"))
	if errors.Is(err, services.ErrInvalidDate) {
		writeError(w, r, http.StatusBadRequest, "date must be today, tomorrow or YYYY-MM-DD")
		return
	}
	if err != nil {
		writeBackendError(w, r, err, "failed to load consignments")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDashboardResponse(view))
}

// Act marks arrival or departure of a consignment at a hub.
func (h *DashboardHandler) Act(w http.ResponseWriter, r *http.Request) {
	sess := sessionFor(w, r, h.Sessions)
	consignmentID := strings.TrimSpace(chi.URLParam(r, "consignmentID"))

	var req dto.ActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	action, err := domain.ParseActionKind(req.Action)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "action must be ARRIVAL or DEPARTURE")
		return
	}

	res, err := h.Updater.Mark(r.Context(), sess, consignmentID, req.Hub, action)

	var blocked *ports.BlockedError
	switch {
	case errors.Is(err, services.ErrNoHubSelected):
		writeError(w, r, http.StatusBadRequest, "Please select a hub first")
		return

	case errors.Is(err, services.ErrActionPending):
		writeError(w, r, http.StatusConflict, "an update for this consignment is already in progress")
		return

	case errors.As(err, &blocked):
		writeJSON(w, r, http.StatusUnprocessableEntity, dto.ActionResponse{
			ConsignmentID: consignmentID,
			Hub:           req.Hub,
			Action:        string(action),
			Status:        domain.ActionStatusBlocked,
			Message:       blocked.Message,
		})
		return

	case err != nil:
		msg := services.UserMessage(err, "Failed to update status")
		var apiErr *ports.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			writeError(w, r, http.StatusNotFound, msg)
			return
		}
		writeError(w, r, http.StatusBadGateway, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ActionResponse{
		ConsignmentID: consignmentID,
		Hub:           res.Hub,
		Action:        string(action),
		Status:        res.Status,
		Message:       res.Message,
	})
}

// Notice returns the session's transient notice, or 204 when there is none.
func (h *DashboardHandler) Notice(w http.ResponseWriter, r *http.Request) {
	sess := sessionFor(w, r, h.Sessions)

	n, ok := sess.Notice.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, r, http.StatusOK, n)
}

// ResetSession forgets the caller's recorded actions, like a page reload.
func (h *DashboardHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFor(w, r, h.Sessions)
	h.Sessions.Reset(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

type liveMessage struct {
	Type      string                 `json:"type"`
	Dashboard *dto.DashboardResponse `json:"dashboard,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Live upgrades to a websocket and pushes the dashboard on connect and on
// every refresh tick until the peer disconnects.
func (h *DashboardHandler) Live(w http.ResponseWriter, r *http.Request) {
	sess := sessionFor(w, r, h.Sessions)
	q := r.URL.Query()
	hub, date := q.Get("hub"), q.Get("date")

	var header http.Header
	if cookies := w.Header().Values("Set-Cookie"); len(cookies) > 0 {
		header = http.Header{"Set-Cookie": cookies}
	}

	conn, err := ws.Upgrade(w, r, header, h.AllowOrigin)
	if err != nil {
		log.Printf("ws upgrade failed: path=%s err=%v", r.URL.Path, err)
		return
	}

	client := ws.NewClient(conn)
	push := func(view *services.DashboardView, err error) {
		msg := liveMessage{Type: "dashboard"}
		if err != nil {
			msg = liveMessage{Type: "error", Error: services.UserMessage(err, "failed to load consignments")}
		} else {
			res := dto.NewDashboardResponse(view)
			msg.Dashboard = &res
		}

		b, err := json.Marshal(msg)
		if err != nil {
			log.Printf("ws encode failed err=%v", err)
			return
		}
		if !client.Send(b) {
			log.Printf("ws send dropped session=%s hub=%q", sess.ID, hub)
		}
	}

	// The upgrade hijacked the connection; keep the request's values (request
	// ID, bearer token) but not its cancellation.
	ctx := context.WithoutCancel(r.Context())
	cancel := h.Refresher.Subscribe(ctx, sess, hub, date, push)

	go client.WritePump()
	go client.ReadPump()
	go func() {
		<-client.Done()
		cancel()
	}()

	view, err := h.Dashboard.Load(ctx, sess, hub, date)
	push(view, err)
}
