package backend

import (
	"context"
	"fmt"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/ports"
	"net/http"
	"slices"
	"sync"
	"time"
)

// MockConsignment seeds a consignment into a MockBackend.
type MockConsignment struct {
	ID            string
	RouteID       string
	Route         domain.Route
	TripDate      time.Time
	CurrentHub    string // empty when the trip has not started
	Departed      bool   // left CurrentHub, not yet arrived at the next hub
	Status        string // raw backend code, e.g. SCHEDULED
	ActivePackets int
	NewPackets    int
}

// MockBackend is an in-memory ports.LogisticsBackend. It enforces route order
// on status updates and answers BLOCKED for transitions the real backend would
// refuse. Used for demo mode and tests.
type MockBackend struct {
	mu           sync.Mutex
	hubs         []string
	consignments []*MockConsignment
	tracking     map[string]*domain.Tracking
	trackingSeq  int
	updateSeq    int
	now          func() time.Time
	failure      error
}

func NewMockBackend(hubs []string) *MockBackend {
	return &MockBackend{
		hubs:        slices.Clone(hubs),
		tracking:    make(map[string]*domain.Tracking),
		trackingSeq: 1234570,
		updateSeq:   1000,
		now:         time.Now,
	}
}

func (m *MockBackend) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// SetFailure makes every call fail with err until cleared with nil.
func (m *MockBackend) SetFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = err
}

func (m *MockBackend) AddConsignment(c MockConsignment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.Route = slices.Clone(c.Route)
	m.consignments = append(m.consignments, &c)
}

func (m *MockBackend) AddTracking(t domain.Tracking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.Updates = slices.Clone(t.Updates)
	m.tracking[t.Package.TrackingID] = &t
}

func (m *MockBackend) ListHubs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return nil, m.failure
	}
	return slices.Clone(m.hubs), nil
}

func (m *MockBackend) ListConsignments(ctx context.Context, hub string, date time.Time) ([]domain.Consignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return nil, m.failure
	}

	day := date.Format(DateLayout)
	out := []domain.Consignment{}
	for _, c := range m.consignments {
		if c.TripDate.Format(DateLayout) != day || !c.Route.Contains(hub) {
			continue
		}
		out = append(out, c.toDomain())
	}
	return out, nil
}

func (m *MockBackend) Track(ctx context.Context, trackingID string) (*domain.Tracking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return nil, m.failure
	}

	t, ok := m.tracking[trackingID]
	if !ok {
		return nil, fmt.Errorf("track %q: %w", trackingID, ports.ErrNotFound)
	}
	cp := *t
	cp.Updates = slices.Clone(t.Updates)
	return &cp, nil
}

func (m *MockBackend) CreateDelivery(ctx context.Context, d domain.DeliveryRequest) (*domain.Package, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return nil, m.failure
	}

	if !slices.Contains(m.hubs, d.Origin) || !slices.Contains(m.hubs, d.Destination) {
		return nil, &ports.APIError{Status: http.StatusBadRequest, Message: "unknown hub"}
	}

	now := m.now()
	m.trackingSeq++
	m.updateSeq++

	pkg := domain.Package{
		ID:             fmt.Sprint(m.trackingSeq),
		TrackingID:     fmt.Sprintf("TRK%09d", m.trackingSeq),
		Sender:         d.Sender,
		SenderEmail:    d.SenderEmail,
		Recipient:      d.Recipient,
		RecipientEmail: d.RecipientEmail,
		Origin:         d.Origin,
		Destination:    d.Destination,
		CurrentHub:     d.Origin,
		Status:         domain.StatusScheduled,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.tracking[pkg.TrackingID] = &domain.Tracking{
		Package: pkg,
		Updates: []domain.TrackingUpdate{{
			ID:             m.updateSeq,
			TrackingID:     pkg.TrackingID,
			Hub:            d.Origin,
			ExternalStatus: "CREATED",
			UpdatedAt:      now,
		}},
	}

	return &pkg, nil
}

func (m *MockBackend) UpdateConsignmentStatus(
	ctx context.Context,
	consignmentID string,
	hub string,
	action domain.ActionKind,
) (domain.ActionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return domain.ActionResult{}, m.failure
	}

	var c *MockConsignment
	for _, cand := range m.consignments {
		if cand.ID == consignmentID {
			c = cand
			break
		}
	}
	if c == nil {
		return domain.ActionResult{}, &ports.APIError{Status: http.StatusNotFound, Message: "consignment not found"}
	}

	res := domain.ActionResult{ConsignmentID: consignmentID, Hub: hub, Status: domain.ActionStatusOK}
	if msg := c.apply(hub, action); msg != "" {
		res.Status = domain.ActionStatusBlocked
		res.Message = msg
	}
	return res, nil
}

// apply performs the transition and returns a rejection message, or "" on
// success.
func (c *MockConsignment) apply(hub string, action domain.ActionKind) string {
	status := domain.ParseStatus(c.Status)
	if status.IsTerminal() {
		return fmt.Sprintf("Consignment is already %s", status)
	}

	idx := c.Route.IndexOf(hub)
	if idx == -1 {
		return fmt.Sprintf("%s is not on this route", hub)
	}

	started := c.CurrentHub != ""
	cur := c.Route.IndexOf(c.CurrentHub)

	switch action {
	case domain.ActionArrival:
		if !started {
			if idx != 0 {
				return "Trip has not started yet"
			}
			c.CurrentHub, c.Departed, c.Status = hub, false, "IN_TRANSIT"
			return ""
		}
		if idx <= cur {
			return fmt.Sprintf("Consignment already reached %s", hub)
		}
		if !c.Departed {
			return fmt.Sprintf("Consignment has not departed %s", c.CurrentHub)
		}
		if idx != cur+1 {
			return fmt.Sprintf("Next stop is %s", c.Route[cur+1])
		}
		c.CurrentHub, c.Departed = hub, false
		return ""

	case domain.ActionDeparture:
		if !started {
			return "Trip has not started yet"
		}
		if idx != cur {
			return fmt.Sprintf("Consignment is not at %s", hub)
		}
		if c.Departed {
			return fmt.Sprintf("Consignment already departed %s", hub)
		}
		if idx == len(c.Route)-1 {
			c.Status = "COMPLETED"
			return ""
		}
		c.Departed = true
		return ""
	}

	return fmt.Sprintf("unsupported action %q", action)
}

func (c *MockConsignment) toDomain() domain.Consignment {
	var current *string
	if c.CurrentHub != "" {
		h := c.CurrentHub
		current = &h
	}

	var origin, dest string
	if len(c.Route) > 0 {
		origin, dest = c.Route[0], c.Route[len(c.Route)-1]
	}

	name := c.RouteID
	if name == "" {
		name = origin + " → " + dest
	}

	return domain.Consignment{
		ID:             c.ID,
		Name:           name,
		Date:           c.TripDate,
		OriginHub:      origin,
		DestinationHub: dest,
		CurrentHub:     current,
		RouteHubs:      slices.Clone(c.Route),
		Status:         domain.ConsignmentStatus(c.Status, current),
		ActivePackets:  c.ActivePackets,
		NewPackets:     c.NewPackets,
	}
}
