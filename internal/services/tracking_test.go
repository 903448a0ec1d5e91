package services

import (
	"context"
	"errors"
	"fmt"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/ports"
	"testing"
	"time"
)

func TestTrackBuildsView(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	be := &fakeBackend{track: func(ctx context.Context, id string) (*domain.Tracking, error) {
		return &domain.Tracking{
			Package: domain.Package{
				TrackingID:  id,
				Origin:      "North Hub",
				Destination: "South_Hub",
				CurrentHub:  "CentralHub",
				Status:      domain.StatusInTransit,
			},
			Updates: []domain.TrackingUpdate{
				{ID: 1, Hub: "North Hub", ExternalStatus: "CREATED", UpdatedAt: t1},
				{ID: 2, Hub: "CentralHub", ExternalStatus: "IN_TRANSIT", UpdatedAt: t1.Add(2 * time.Hour)},
			},
		}, nil
	}}
	svc := &TrackingService{Backend: be}

	view, err := svc.Track(context.Background(), " TRK001 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Package.TrackingID != "TRK001" {
		t.Fatalf("tracking id = %q, want trimmed TRK001", view.Package.TrackingID)
	}
	if len(view.Stops) != 3 || view.Progress.CurrentIndex != 1 {
		t.Fatalf("progress = %+v", view.Progress)
	}
	if view.Stops[1].Label != "Central Hub" || view.Stops[2].Label != "South Hub" {
		t.Fatalf("stop labels = %q, %q", view.Stops[1].Label, view.Stops[2].Label)
	}
	if view.Stops[0].State != StopCompleted || view.Stops[1].State != StopCurrent || view.Stops[2].State != StopUpcoming {
		t.Fatalf("stop states = %+v", view.Stops)
	}
	if view.Updates[0].ID != 2 {
		t.Fatalf("updates should be newest first, got %d first", view.Updates[0].ID)
	}
	if view.Updates[0].StatusLabel != "In Transit" || view.Updates[1].HubLabel != "North Hub" {
		t.Fatalf("update labels = %+v", view.Updates)
	}
}

func TestTrackNotFound(t *testing.T) {
	be := &fakeBackend{track: func(ctx context.Context, id string) (*domain.Tracking, error) {
		return nil, fmt.Errorf("track %q: %w", id, ports.ErrNotFound)
	}}

	_, err := (&TrackingService{Backend: be}).Track(context.Background(), "NOPE")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ports.ErrNotFound", err)
	}
}

func TestTrackRequiresID(t *testing.T) {
	be := &fakeBackend{}

	_, err := (&TrackingService{Backend: be}).Track(context.Background(), "")
	if !errors.Is(err, ErrNoTrackingID) {
		t.Fatalf("err = %v, want ErrNoTrackingID", err)
	}
	if be.callCount("Track") != 0 {
		t.Fatalf("backend called for empty id")
	}
}
