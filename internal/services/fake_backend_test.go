package services

import (
	"context"
	"errors"
	"logistichub-console/internal/domain"
	"sync"
	"time"
)

var errNotStubbed = errors.New("fake backend: not stubbed")

// fakeBackend is a ports.LogisticsBackend whose calls are answered by the
// func fields; nil funcs fail with errNotStubbed.
type fakeBackend struct {
	listHubs         func(ctx context.Context) ([]string, error)
	listConsignments func(ctx context.Context, hub string, date time.Time) ([]domain.Consignment, error)
	track            func(ctx context.Context, id string) (*domain.Tracking, error)
	create           func(ctx context.Context, d domain.DeliveryRequest) (*domain.Package, error)
	update           func(ctx context.Context, id, hub string, action domain.ActionKind) (domain.ActionResult, error)

	mu    sync.Mutex
	calls []string
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeBackend) ListHubs(ctx context.Context) ([]string, error) {
	f.record("ListHubs")
	if f.listHubs == nil {
		return nil, errNotStubbed
	}
	return f.listHubs(ctx)
}

func (f *fakeBackend) ListConsignments(ctx context.Context, hub string, date time.Time) ([]domain.Consignment, error) {
	f.record("ListConsignments")
	if f.listConsignments == nil {
		return nil, errNotStubbed
	}
	return f.listConsignments(ctx, hub, date)
}

func (f *fakeBackend) Track(ctx context.Context, id string) (*domain.Tracking, error) {
	f.record("Track")
	if f.track == nil {
		return nil, errNotStubbed
	}
	return f.track(ctx, id)
}

func (f *fakeBackend) CreateDelivery(ctx context.Context, d domain.DeliveryRequest) (*domain.Package, error) {
	f.record("CreateDelivery")
	if f.create == nil {
		return nil, errNotStubbed
	}
	return f.create(ctx, d)
}

func (f *fakeBackend) UpdateConsignmentStatus(ctx context.Context, id, hub string, action domain.ActionKind) (domain.ActionResult, error) {
	f.record("UpdateConsignmentStatus")
	if f.update == nil {
		return domain.ActionResult{}, errNotStubbed
	}
	return f.update(ctx, id, hub, action)
}

// memHubCache is an in-memory ports.HubCache.
type memHubCache struct {
	mu   sync.Mutex
	hubs []string
	err  error
}

func (c *memHubCache) GetAll(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]string(nil), c.hubs...), nil
}

func (c *memHubCache) PutAll(ctx context.Context, hubs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.hubs = append([]string(nil), hubs...)
	return nil
}
