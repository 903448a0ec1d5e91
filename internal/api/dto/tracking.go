package dto

import (
	"logistichub-console/internal/domain"
	"logistichub-console/internal/services"
	"math"
	"time"
)

type PackageResponse struct {
	ID             string    `json:"id,omitempty"`
	TrackingID     string    `json:"tracking_id"`
	ConsignmentID  string    `json:"consignment_id,omitempty"`
	Sender         string    `json:"sender"`
	SenderEmail    string    `json:"sender_email,omitempty"`
	Recipient      string    `json:"recipient"`
	RecipientEmail string    `json:"recipient_email,omitempty"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	CurrentHub     string    `json:"current_hub"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type StopResponse struct {
	Hub   string `json:"hub"`
	Label string `json:"label"`
	State string `json:"state"`
}

type UpdateResponse struct {
	ID          int       `json:"id"`
	Hub         string    `json:"hub"`
	HubLabel    string    `json:"hub_label"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TrackingResponse struct {
	Package      PackageResponse  `json:"package"`
	Stops        []StopResponse   `json:"stops"`
	CurrentIndex int              `json:"current_index"`
	Progress     float64          `json:"progress"`
	Percent      int              `json:"percent"`
	Updates      []UpdateResponse `json:"updates"`
}

func NewPackageResponse(p domain.Package) PackageResponse {
	return PackageResponse{
		ID:             p.ID,
		TrackingID:     p.TrackingID,
		ConsignmentID:  p.ConsignmentID,
		Sender:         p.Sender,
		SenderEmail:    p.SenderEmail,
		Recipient:      p.Recipient,
		RecipientEmail: p.RecipientEmail,
		Origin:         p.Origin,
		Destination:    p.Destination,
		CurrentHub:     p.CurrentHub,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewTrackingResponse(v *services.TrackingView) TrackingResponse {
	stops := make([]StopResponse, len(v.Stops))
	for i, s := range v.Stops {
		stops[i] = StopResponse{Hub: s.Hub, Label: s.Label, State: string(s.State)}
	}

	updates := make([]UpdateResponse, len(v.Updates))
	for i, u := range v.Updates {
		updates[i] = UpdateResponse{
			ID:          u.ID,
			Hub:         u.Hub,
			HubLabel:    u.HubLabel,
			Status:      u.ExternalStatus,
			StatusLabel: u.StatusLabel,
			UpdatedAt:   u.UpdatedAt,
		}
	}

	fraction := v.Progress.Fraction()
	return TrackingResponse{
		Package:      NewPackageResponse(v.Package),
		Stops:        stops,
		CurrentIndex: v.Progress.CurrentIndex,
		Progress:     fraction,
		Percent:      int(math.Round(fraction * 100)),
		Updates:      updates,
	}
}
