package ports

import (
	"context"
	"logistichub-console/internal/domain"
	"time"
)

// Port: the external logistics backend that owns hubs, consignments and
// packages. The console only reads state and requests transitions.
type LogisticsBackend interface {
	// Return the names of all hubs in the network.
	ListHubs(ctx context.Context) ([]string, error)
	// Return consignments passing through hub on the given day.
	ListConsignments(ctx context.Context, hub string, date time.Time) ([]domain.Consignment, error)
	// Return a package and its update history. Unknown IDs yield ErrNotFound.
	Track(ctx context.Context, trackingID string) (*domain.Tracking, error)
	// Create a shipment and return it with its tracking ID.
	CreateDelivery(ctx context.Context, req domain.DeliveryRequest) (*domain.Package, error)
	// Request an arrival or departure transition for a consignment at hub.
	UpdateConsignmentStatus(ctx context.Context, consignmentID string, hub string, action domain.ActionKind) (domain.ActionResult, error)
}
