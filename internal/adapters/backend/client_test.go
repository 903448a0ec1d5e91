package backend

import (
	"context"
	"encoding/json"
	"errors"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/platform/bearer"
	"logistichub-console/internal/ports"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "   ", "ftp://example.com", "://nope"} {
		if _, err := NewClient(u, time.Second); err == nil {
			t.Errorf("NewClient(%q): expected error", u)
		}
	}
}

func TestListHubsForwardsBearerToken(t *testing.T) {
	var gotAuth []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hubs" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Write([]byte(`["North Hub","South Hub"]`))
	})

	hubs, err := c.ListHubs(bearer.WithToken(context.Background(), "tok123"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(hubs, []string{"North Hub", "South Hub"}) {
		t.Fatalf("hubs = %v", hubs)
	}

	if _, err := c.ListHubs(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth[0] != "Bearer tok123" {
		t.Errorf("first Authorization = %q, want bearer token", gotAuth[0])
	}
	if gotAuth[1] != "" {
		t.Errorf("second Authorization = %q, want none", gotAuth[1])
	}
}

func TestListConsignmentsMapsWireShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/consignments/North%20Hub" {
			t.Errorf("path = %q", r.URL.EscapedPath())
		}
		if got := r.URL.Query().Get("date"); got != "2026-01-02" {
			t.Errorf("date = %q", got)
		}
		w.Write([]byte(`[
			{"id": 7, "route": {"id": "R-7", "source": "A", "destination": "C", "hubs": "[\"A\",\"B\",\"C\"]"},
			 "tripDate": "2026-01-02", "currentHub": "B", "activePacketsCount": 4, "newPacketsCount": 2, "status": "IN_TRANSIT"},
			{"id": 8, "route": {"id": "", "source": "A", "destination": "C", "hubs": "not json"},
			 "tripDate": "2026-01-02", "currentHub": null, "activePacketsCount": -3, "newPacketsCount": 0, "status": "IN_TRANSIT"}
		]`))
	})

	date := time.Date(2026, 1, 2, 15, 0, 0, 0, time.Local)
	got, err := c.ListConsignments(context.Background(), "North Hub", date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	first := got[0]
	if first.ID != "7" || first.Name != "R-7" {
		t.Errorf("first id/name = %q/%q", first.ID, first.Name)
	}
	if first.CurrentHub == nil || *first.CurrentHub != "B" {
		t.Errorf("first current hub = %v", first.CurrentHub)
	}
	if !slices.Equal(first.RouteHubs, domain.Route{"A", "B", "C"}) {
		t.Errorf("first route = %v", first.RouteHubs)
	}
	if first.Status != domain.StatusInTransit {
		t.Errorf("first status = %q", first.Status)
	}
	if first.ActivePackets != 4 || first.NewPackets != 2 {
		t.Errorf("first counts = %d/%d", first.ActivePackets, first.NewPackets)
	}

	second := got[1]
	if second.Name != "A → C" {
		t.Errorf("second name = %q", second.Name)
	}
	if second.Status != domain.StatusScheduled {
		t.Errorf("second status = %q, want Scheduled for a trip not started", second.Status)
	}
	if len(second.RouteHubs) != 0 {
		t.Errorf("second route = %v, want empty", second.RouteHubs)
	}
	if second.ActivePackets != 0 {
		t.Errorf("second active = %d, want clamped to 0", second.ActivePackets)
	}
}

func TestTrackNotFound(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"404", http.StatusNotFound, `{"message":"no such packet"}`},
		{"empty body", http.StatusOK, ``},
		{"no tracking id", http.StatusOK, `{}`},
		{"not an object", http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.Track(context.Background(), "TRK1")
			if !errors.Is(err, ports.ErrNotFound) {
				t.Fatalf("Track err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestTrackMapsPackageAndUpdates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/track/TRK001" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"trackingId": "TRK001", "consignmentId": 12, "sender": "S", "receiver": "R",
			"source": "A", "currentHub": "B", "destination": "C",
			"createdAt": "2026-01-01T08:00:00", "updatedAt": "2026-01-01T10:00:00Z",
			"status": "DELIVERED",
			"updates": [
				{"id": 1, "packetId": 9, "trackingId": "TRK001", "currentHub": "A", "status": "CREATED", "updatedAt": "2026-01-01T08:00:00"},
				{"id": 2, "packetId": 9, "trackingId": "TRK001", "currentHub": "B", "status": "IN_TRANSIT", "updatedAt": "garbage"}
			]
		}`))
	})

	got, err := c.Track(context.Background(), "TRK001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := got.Package
	if p.TrackingID != "TRK001" || p.ConsignmentID != "12" || p.Recipient != "R" {
		t.Errorf("package = %+v", p)
	}
	if p.Status != domain.StatusCompleted {
		t.Errorf("status = %q, want Completed", p.Status)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Errorf("timestamps not parsed: %v %v", p.CreatedAt, p.UpdatedAt)
	}
	if len(got.Updates) != 2 {
		t.Fatalf("updates = %d, want 2", len(got.Updates))
	}
	if got.Updates[0].Hub != "A" || got.Updates[0].ExternalStatus != "CREATED" {
		t.Errorf("update[0] = %+v", got.Updates[0])
	}
	if !got.Updates[1].UpdatedAt.IsZero() {
		t.Errorf("update[1] time = %v, want zero for unparsable input", got.Updates[1].UpdatedAt)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message field", http.StatusInternalServerError, `{"message":"db down"}`, "db down"},
		{"error field", http.StatusBadRequest, `{"error":"bad hub"}`, "bad hub"},
		{"message wins", http.StatusBadRequest, `{"message":"m","error":"e"}`, "m"},
		{"plain text", http.StatusBadGateway, `upstream exploded`, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.ListHubs(context.Background())
			var ae *ports.APIError
			if !errors.As(err, &ae) {
				t.Fatalf("err = %v, want *ports.APIError", err)
			}
			if ae.Status != tt.status || ae.Message != tt.wantMsg {
				t.Fatalf("APIError = %d %q, want %d %q", ae.Status, ae.Message, tt.status, tt.wantMsg)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := NewClient(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	srv.Close()

	_, err = c.ListHubs(context.Background())
	var te *ports.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *ports.TransportError", err)
	}
}

func TestUpdateConsignmentStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if r.URL.Path != "/consignment/42/update-status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("hubName") != "Central Hub" || q.Get("status") != "DEPARTURE" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"consignmentId": 42, "hub": "Central Hub", "status": "BLOCKED", "message": "not yet arrived"}`))
	})

	res, err := c.UpdateConsignmentStatus(context.Background(), "42", "Central Hub", domain.ActionDeparture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != domain.ActionStatusBlocked || res.Message != "not yet arrived" || res.ConsignmentID != "42" {
		t.Fatalf("result = %+v", res)
	}
}

func TestCreateDelivery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/create" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
			return
		}
		if body["receiver"] != "Bob" || body["source"] != "A" || body["receiverEmail"] != "bob@example.com" {
			t.Errorf("body = %v", body)
		}

		w.Write([]byte(`{"id": 5, "trackingId": "TRK5", "sender": "Ann", "receiver": "Bob",
			"source": "A", "destination": "B", "currentHub": "A",
			"createdAt": "2026-01-01T08:00:00", "updatedAt": "2026-01-01T08:00:00", "status": "CREATED"}`))
	})

	pkg, err := c.CreateDelivery(context.Background(), domain.DeliveryRequest{
		Sender:         "Ann",
		SenderEmail:    "ann@example.com",
		Recipient:      "Bob",
		RecipientEmail: "bob@example.com",
		Origin:         "A",
		Destination:    "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.TrackingID != "TRK5" || pkg.ID != "5" || pkg.Status != domain.StatusScheduled {
		t.Fatalf("package = %+v", pkg)
	}
}
