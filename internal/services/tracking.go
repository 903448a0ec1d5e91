package services

import (
	"context"
	"fmt"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/ports"
	"slices"
	"strings"
)

// StopView is one stop on the tracking progress bar.
type StopView struct {
	Hub   string
	Label string
	State StopState
}

// UpdateView is one entry of the tracking timeline.
type UpdateView struct {
	domain.TrackingUpdate
	HubLabel    string
	StatusLabel string
}

// TrackingView is everything the tracking page renders for a package.
type TrackingView struct {
	Package  domain.Package
	Progress Progress
	Stops    []StopView
	// Newest first.
	Updates []UpdateView
}

type TrackingService struct {
	Backend ports.LogisticsBackend
}

// Track looks up trackingID and derives its route progress. Unknown IDs yield
// an error wrapping ports.ErrNotFound.
func (s *TrackingService) Track(ctx context.Context, trackingID string) (*TrackingView, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, ErrNoTrackingID
	}

	t, err := s.Backend.Track(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("track package: %w", err)
	}

	return BuildTrackingView(t), nil
}

// BuildTrackingView derives progress and display fields for a tracked package.
func BuildTrackingView(t *domain.Tracking) *TrackingView {
	pkg := t.Package
	progress := DeriveProgress(pkg.Origin, pkg.Destination, pkg.CurrentHub, pkg.Status, t.Updates)

	states := progress.StopStates(pkg.Status)
	stops := make([]StopView, len(progress.Stops))
	for i, hub := range progress.Stops {
		stops[i] = StopView{Hub: hub, Label: domain.FormatHubName(hub), State: states[i]}
	}

	newest := slices.Clone(t.Updates)
	slices.SortStableFunc(newest, func(a, b domain.TrackingUpdate) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	updates := make([]UpdateView, len(newest))
	for i, u := range newest {
		updates[i] = UpdateView{
			TrackingUpdate: u,
			HubLabel:       domain.FormatHubName(u.Hub),
			StatusLabel:    domain.FormatExternalStatus(u.ExternalStatus),
		}
	}

	return &TrackingView{
		Package:  pkg,
		Progress: progress,
		Stops:    stops,
		Updates:  updates,
	}
}
