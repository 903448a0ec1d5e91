package backend

import (
	"logistichub-console/internal/domain"
	"time"
)

// DemoHubs is the hub network served in demo mode.
var DemoHubs = []string{"North Hub", "South Hub", "East Hub", "West Hub", "Central Hub"}

// NewDemoBackend returns a MockBackend seeded with trips for today and
// tomorrow relative to now, plus a few tracked packages.
func NewDemoBackend(now time.Time) *MockBackend {
	m := NewMockBackend(DemoHubs)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	m.AddConsignment(MockConsignment{
		ID:            "1",
		RouteID:       "Morning Route - North to South",
		Route:         domain.Route{"North Hub", "Central Hub", "South Hub"},
		TripDate:      today,
		Status:        "SCHEDULED",
		ActivePackets: 3,
		NewPackets:    1,
	})
	m.AddConsignment(MockConsignment{
		ID:            "2",
		RouteID:       "Afternoon Route - East to West",
		Route:         domain.Route{"East Hub", "Central Hub", "West Hub"},
		TripDate:      today,
		CurrentHub:    "Central Hub",
		Status:        "IN_TRANSIT",
		ActivePackets: 5,
	})
	m.AddConsignment(MockConsignment{
		ID:            "3",
		Route:         domain.Route{"South Hub", "Central Hub", "North Hub"},
		TripDate:      today,
		CurrentHub:    "North Hub",
		Status:        "COMPLETED",
		ActivePackets: 2,
	})
	m.AddConsignment(MockConsignment{
		ID:       "4",
		Route:    domain.Route{"North Hub", "East Hub"},
		TripDate: today,
		Status:   "CANCELLED",
	})
	m.AddConsignment(MockConsignment{
		ID:            "5",
		RouteID:       "Overnight Route - West to East",
		Route:         domain.Route{"West Hub", "Central Hub", "North Hub", "East Hub"},
		TripDate:      tomorrow,
		Status:        "SCHEDULED",
		ActivePackets: 4,
		NewPackets:    4,
	})

	start := today.Add(8 * time.Hour)

	m.AddTracking(domain.Tracking{
		Package: domain.Package{
			ID:          "1",
			TrackingID:  "TRK001234567",
			Sender:      "John Smith",
			Recipient:   "Alice Johnson",
			Origin:      "North Hub",
			Destination: "South Hub",
			CurrentHub:  "Central Hub",
			Status:      domain.StatusInTransit,
			CreatedAt:   start,
			UpdatedAt:   start.Add(90 * time.Minute),
		},
		Updates: []domain.TrackingUpdate{
			{ID: 1, PacketID: 1, TrackingID: "TRK001234567", Hub: "North Hub", ExternalStatus: "CREATED", UpdatedAt: start},
			{ID: 2, PacketID: 1, TrackingID: "TRK001234567", Hub: "North Hub", ExternalStatus: "ASSIGNED", UpdatedAt: start.Add(30 * time.Minute)},
			{ID: 3, PacketID: 1, TrackingID: "TRK001234567", Hub: "Central Hub", ExternalStatus: "IN_TRANSIT", UpdatedAt: start.Add(90 * time.Minute)},
		},
	})
	m.AddTracking(domain.Tracking{
		Package: domain.Package{
			ID:          "2",
			TrackingID:  "TRK001234568",
			Sender:      "Sarah Davis",
			Recipient:   "Bob Wilson",
			Origin:      "East Hub",
			Destination: "West Hub",
			CurrentHub:  "East Hub",
			Status:      domain.StatusScheduled,
			CreatedAt:   start.Add(-time.Hour),
			UpdatedAt:   start.Add(-time.Hour),
		},
		Updates: []domain.TrackingUpdate{
			{ID: 4, PacketID: 2, TrackingID: "TRK001234568", Hub: "East Hub", ExternalStatus: "CREATED", UpdatedAt: start.Add(-time.Hour)},
		},
	})
	m.AddTracking(domain.Tracking{
		Package: domain.Package{
			ID:          "3",
			TrackingID:  "TRK001234569",
			Sender:      "Mike Brown",
			Recipient:   "Emma Taylor",
			Origin:      "South Hub",
			Destination: "North Hub",
			CurrentHub:  "North Hub",
			Status:      domain.StatusCompleted,
			CreatedAt:   start.Add(-22 * time.Hour),
			UpdatedAt:   start.Add(-16 * time.Hour),
		},
		Updates: []domain.TrackingUpdate{
			{ID: 5, PacketID: 3, TrackingID: "TRK001234569", Hub: "South Hub", ExternalStatus: "CREATED", UpdatedAt: start.Add(-22 * time.Hour)},
			{ID: 6, PacketID: 3, TrackingID: "TRK001234569", Hub: "Central Hub", ExternalStatus: "IN_TRANSIT", UpdatedAt: start.Add(-19 * time.Hour)},
			{ID: 7, PacketID: 3, TrackingID: "TRK001234569", Hub: "North Hub", ExternalStatus: "DELIVERED", UpdatedAt: start.Add(-16 * time.Hour)},
		},
	})

	return m
}
