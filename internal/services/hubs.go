package services

import (
	"context"
	"fmt"
	"log"
	"logistichub-console/internal/platform/obs"
	"logistichub-console/internal/ports"
)

// HubDirectory lists hubs from the backend, writing through to Cache and
// falling back to it when the backend call fails. Cache may be nil.
type HubDirectory struct {
	Backend ports.LogisticsBackend
	Cache   ports.HubCache
}

func (d *HubDirectory) List(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "hubs.List")(&err)

	hubs, err := d.Backend.ListHubs(ctx)
	if err == nil {
		if d.Cache != nil && len(hubs) > 0 {
			if cerr := d.Cache.PutAll(ctx, hubs); cerr != nil {
				log.Printf("hub cache write failed count=%d err=%v", len(hubs), cerr)
			}
		}
		return hubs, nil
	}

	if d.Cache == nil {
		return nil, fmt.Errorf("list hubs: %w", err)
	}

	cached, cerr := d.Cache.GetAll(ctx)
	if cerr != nil || len(cached) == 0 {
		return nil, fmt.Errorf("list hubs: %w", err)
	}

	log.Printf("hub list served from cache count=%d backend_err=%v", len(cached), err)
	return cached, nil
}
