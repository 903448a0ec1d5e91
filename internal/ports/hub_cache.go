package ports

import "context"

// Persistent copy of the backend's hub list, used when the backend is
// unreachable.
type HubCache interface {
	GetAll(ctx context.Context) ([]string, error)
	PutAll(ctx context.Context, hubs []string) error
}
