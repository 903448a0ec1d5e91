package dto

import (
	"logistichub-console/internal/domain"
	"logistichub-console/internal/services"
	"time"
)

type ConsignmentResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Date             string     `json:"date"`
	OriginHub        string     `json:"origin_hub"`
	DestinationHub   string     `json:"destination_hub"`
	CurrentHub       *string    `json:"current_hub"`
	RouteHubs        []string   `json:"route_hubs"`
	Status           string     `json:"status"`
	ActivePackets    int        `json:"active_packets"`
	NewPackets       int        `json:"new_packets"`
	DepartureTime    *time.Time `json:"departure_time,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
}

type ConsignmentRowResponse struct {
	Consignment ConsignmentResponse  `json:"consignment"`
	Actions     services.ActionState `json:"actions"`
}

type DashboardResponse struct {
	Hubs        []string                 `json:"hubs"`
	SelectedHub string                   `json:"selected_hub"`
	Date        string                   `json:"date"`
	Subtitle    string                   `json:"subtitle,omitempty"`
	Rows        []ConsignmentRowResponse `json:"rows"`
}

type ActionRequest struct {
	Hub    string `json:"hub"`
	Action string `json:"action"`
}

type ActionResponse struct {
	ConsignmentID string `json:"consignment_id"`
	Hub           string `json:"hub"`
	Action        string `json:"action"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

func NewConsignmentResponse(c domain.Consignment) ConsignmentResponse {
	route := []string(c.RouteHubs)
	if route == nil {
		route = []string{}
	}

	var date string
	if !c.Date.IsZero() {
		date = c.Date.Format(services.DateLayout)
	}

	return ConsignmentResponse{
		ID:               c.ID,
		Name:             c.Name,
		Date:             date,
		OriginHub:        c.OriginHub,
		DestinationHub:   c.DestinationHub,
		CurrentHub:       c.CurrentHub,
		RouteHubs:        route,
		Status:           string(c.Status),
		ActivePackets:    c.ActivePackets,
		NewPackets:       c.NewPackets,
		DepartureTime:    c.DepartureTime,
		EstimatedArrival: c.EstimatedArrival,
	}
}

func NewDashboardResponse(v *services.DashboardView) DashboardResponse {
	rows := make([]ConsignmentRowResponse, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, ConsignmentRowResponse{
			Consignment: NewConsignmentResponse(r.Consignment),
			Actions:     r.Actions,
		})
	}

	hubs := v.Hubs
	if hubs == nil {
		hubs = []string{}
	}

	return DashboardResponse{
		Hubs:        hubs,
		SelectedHub: v.SelectedHub,
		Date:        v.Date.Format(services.DateLayout),
		Subtitle:    v.Subtitle,
		Rows:        rows,
	}
}
