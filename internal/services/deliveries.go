package services

import (
	"context"
	"fmt"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/platform/obs"
	"logistichub-console/internal/ports"
)

type DeliveryService struct {
	Backend ports.LogisticsBackend
}

// Create validates the request and books the delivery with the backend.
// Invalid input fails with an error wrapping domain.ErrInvalidDelivery before
// anything is sent.
func (s *DeliveryService) Create(ctx context.Context, req domain.DeliveryRequest) (_ *domain.Package, err error) {
	defer obs.Time(ctx, "deliveries.Create")(&err)

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	pkg, err := s.Backend.CreateDelivery(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return pkg, nil
}
