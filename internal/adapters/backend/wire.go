package backend

import (
	"bytes"
	"encoding/json"
	"logistichub-console/internal/domain"
	"strings"
	"time"
)

// wireID accepts identifiers the backend sends either as JSON numbers or
// strings.
type wireID string

func (id *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = wireID(n.String())
	return nil
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// wireTime parses the timestamp formats the backend emits. Timestamps without
// a zone are read in local time. Unparsable values decode to the zero time.
type wireTime struct {
	time.Time
}

func (t *wireTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parseWireTime(s)
	return nil
}

func parseWireTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range wireTimeLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts
		}
	}
	return time.Time{}
}

type wireRoute struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Hubs        string `json:"hubs"` // JSON-encoded string array
}

type wireConsignment struct {
	ID                 wireID    `json:"id"`
	Route              wireRoute `json:"route"`
	TripDate           wireTime  `json:"tripDate"`
	CurrentHub         *string   `json:"currentHub"`
	ActivePacketsCount int       `json:"activePacketsCount"`
	NewPacketsCount    int       `json:"newPacketsCount"`
	Status             string    `json:"status"`
}

func (w wireConsignment) toDomain() domain.Consignment {
	name := w.Route.ID
	if name == "" {
		name = w.Route.Source + " → " + w.Route.Destination
	}

	return domain.Consignment{
		ID:             string(w.ID),
		Name:           name,
		Date:           w.TripDate.Time,
		OriginHub:      w.Route.Source,
		DestinationHub: w.Route.Destination,
		CurrentHub:     w.CurrentHub,
		RouteHubs:      domain.ParseRouteHubs(w.Route.Hubs),
		Status:         domain.ConsignmentStatus(w.Status, w.CurrentHub),
		ActivePackets:  max(0, w.ActivePacketsCount),
		NewPackets:     max(0, w.NewPacketsCount),
	}
}

type wireTrackingUpdate struct {
	ID         int      `json:"id"`
	PacketID   int      `json:"packetId"`
	TrackingID string   `json:"trackingId"`
	CurrentHub string   `json:"currentHub"`
	Status     string   `json:"status"`
	UpdatedAt  wireTime `json:"updatedAt"`
}

type wireTracking struct {
	TrackingID    string               `json:"trackingId"`
	ConsignmentID wireID               `json:"consignmentId"`
	Sender        string               `json:"sender"`
	Receiver      string               `json:"receiver"`
	Source        string               `json:"source"`
	CurrentHub    string               `json:"currentHub"`
	Destination   string               `json:"destination"`
	CreatedAt     wireTime             `json:"createdAt"`
	UpdatedAt     wireTime             `json:"updatedAt"`
	Status        string               `json:"status"`
	Updates       []wireTrackingUpdate `json:"updates"`
}

func (w wireTracking) toDomain() *domain.Tracking {
	updates := make([]domain.TrackingUpdate, 0, len(w.Updates))
	for _, u := range w.Updates {
		updates = append(updates, domain.TrackingUpdate{
			ID:             u.ID,
			PacketID:       u.PacketID,
			TrackingID:     u.TrackingID,
			Hub:            u.CurrentHub,
			ExternalStatus: u.Status,
			UpdatedAt:      u.UpdatedAt.Time,
		})
	}

	return &domain.Tracking{
		Package: domain.Package{
			ID:            w.TrackingID,
			TrackingID:    w.TrackingID,
			ConsignmentID: string(w.ConsignmentID),
			Sender:        w.Sender,
			Recipient:     w.Receiver,
			Origin:        w.Source,
			Destination:   w.Destination,
			CurrentHub:    w.CurrentHub,
			Status:        domain.ParseStatus(w.Status),
			CreatedAt:     w.CreatedAt.Time,
			UpdatedAt:     w.UpdatedAt.Time,
		},
		Updates: updates,
	}
}

type wireCreateRequest struct {
	Sender        string `json:"sender"`
	SenderEmail   string `json:"senderEmail"`
	Receiver      string `json:"receiver"`
	ReceiverEmail string `json:"receiverEmail"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
}

type wireCreateResponse struct {
	ID            wireID   `json:"id"`
	TrackingID    string   `json:"trackingId"`
	Sender        string   `json:"sender"`
	SenderEmail   string   `json:"senderEmail"`
	Receiver      string   `json:"receiver"`
	ReceiverEmail string   `json:"receiverEmail"`
	Source        string   `json:"source"`
	Destination   string   `json:"destination"`
	CurrentHub    string   `json:"currentHub"`
	CreatedAt     wireTime `json:"createdAt"`
	UpdatedAt     wireTime `json:"updatedAt"`
	Status        string   `json:"status"`
}

func (w wireCreateResponse) toDomain() *domain.Package {
	return &domain.Package{
		ID:             string(w.ID),
		TrackingID:     w.TrackingID,
		Sender:         w.Sender,
		SenderEmail:    w.SenderEmail,
		Recipient:      w.Receiver,
		RecipientEmail: w.ReceiverEmail,
		Origin:         w.Source,
		Destination:    w.Destination,
		CurrentHub:     w.CurrentHub,
		Status:         domain.ParseStatus(w.Status),
		CreatedAt:      w.CreatedAt.Time,
		UpdatedAt:      w.UpdatedAt.Time,
	}
}

type wireUpdateStatusResponse struct {
	ConsignmentID wireID `json:"consignmentId"`
	Hub           string `json:"hub"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}
