package services

import (
	"logistichub-console/internal/domain"
	"slices"
)

// StopState is how a route stop is rendered on the tracking progress bar.
type StopState string

const (
	StopCompleted StopState = "completed"
	StopCurrent   StopState = "current"
	StopUpcoming  StopState = "upcoming"
)

// Progress is a package's position along the stops it has been observed at.
type Progress struct {
	Stops        []string
	CurrentIndex int
}

// Fraction is the share of the route covered, in [0, 1].
func (p Progress) Fraction() float64 {
	if len(p.Stops) <= 1 {
		return 0
	}
	return float64(p.CurrentIndex) / float64(len(p.Stops)-1)
}

// StopStates classifies every stop relative to the current index. A completed
// package shows its current stop as completed rather than current.
func (p Progress) StopStates(status domain.Status) []StopState {
	states := make([]StopState, len(p.Stops))
	for i := range p.Stops {
		switch {
		case i < p.CurrentIndex, i == p.CurrentIndex && status == domain.StatusCompleted:
			states[i] = StopCompleted
		case i == p.CurrentIndex:
			states[i] = StopCurrent
		default:
			states[i] = StopUpcoming
		}
	}
	return states
}

// DeriveProgress reconstructs a package's route from its update history.
//
// Stops start at origin and end at destination; in between come the distinct
// hubs from updates in the order they were first seen (updates sorted by time,
// ties kept in input order). The current index is, in priority order: the last
// stop when the package is completed or at its destination, the first stop
// equal to currentHub, the stop of the latest update, and finally the origin.
func DeriveProgress(
	origin string,
	destination string,
	currentHub string,
	status domain.Status,
	updates []domain.TrackingUpdate,
) Progress {
	stops := []string{origin}
	seen := map[string]struct{}{origin: {}}

	sorted := slices.Clone(updates)
	slices.SortStableFunc(sorted, func(a, b domain.TrackingUpdate) int {
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})

	for _, u := range sorted {
		hub := u.Hub
		if hub == "" || hub == origin || hub == destination {
			continue
		}
		if _, ok := seen[hub]; ok {
			continue
		}
		seen[hub] = struct{}{}
		stops = append(stops, hub)
	}

	if stops[len(stops)-1] != destination {
		stops = append(stops, destination)
	}

	return Progress{
		Stops:        stops,
		CurrentIndex: currentStopIndex(stops, destination, currentHub, status, updates),
	}
}

func currentStopIndex(
	stops []string,
	destination string,
	currentHub string,
	status domain.Status,
	updates []domain.TrackingUpdate,
) int {
	last := len(stops) - 1

	if status == domain.StatusCompleted || currentHub == destination {
		return last
	}

	if idx := slices.Index(stops, currentHub); idx != -1 {
		return idx
	}

	if len(updates) > 0 {
		// First of the updates sharing the latest timestamp.
		latest := updates[0]
		for _, u := range updates[1:] {
			if u.UpdatedAt.After(latest.UpdatedAt) {
				latest = u
			}
		}
		if idx := slices.Index(stops, latest.Hub); idx != -1 {
			return idx
		}
	}

	return 0
}
