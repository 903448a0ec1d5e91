package services

import (
	"logistichub-console/internal/domain"
)

const (
	LabelStartTrip     = "Start Trip"
	LabelMarkArrival   = "Mark arrival"
	LabelEndTrip       = "End Trip"
	LabelMarkDeparture = "Mark departure"
)

// CompletedActions reports actions that already succeeded in this session but
// may not yet be reflected in backend data.
type CompletedActions interface {
	Has(consignmentID string, hub string, action domain.ActionKind) bool
}

// ActionState is what the operator may do with a consignment at the selected
// hub.
type ActionState struct {
	ArrivalLabel      string `json:"arrival_label"`
	DepartureLabel    string `json:"departure_label"`
	ArrivalDisabled   bool   `json:"arrival_disabled"`
	DepartureDisabled bool   `json:"departure_disabled"`
	Pending           bool   `json:"pending"`
}

// EvaluateActions gates the arrival and departure actions for c at
// selectedHub. done may be nil.
//
// Arrival is refused at the consignment's current hub and at any hub before
// it on the route; departure only at hubs before it. Either is refused once
// recorded in done, for terminal consignments, and when no hub is selected.
func EvaluateActions(c domain.Consignment, selectedHub string, done CompletedActions) ActionState {
	tripNotStarted := c.CurrentHub == nil
	isOrigin := selectedHub == c.OriginHub
	isDestination := selectedHub == c.DestinationHub
	isCurrentLocation := c.CurrentHub != nil && selectedHub == *c.CurrentHub

	selectedIndex := c.RouteHubs.IndexOf(selectedHub)
	currentIndex := -1
	if c.CurrentHub != nil {
		currentIndex = c.RouteHubs.IndexOf(*c.CurrentHub)
	}
	isBeforeCurrentHub := selectedIndex != -1 && currentIndex != -1 && selectedIndex < currentIndex

	st := ActionState{
		ArrivalLabel:   LabelMarkArrival,
		DepartureLabel: LabelMarkDeparture,
	}
	if tripNotStarted && isOrigin {
		st.ArrivalLabel = LabelStartTrip
	}
	if isDestination {
		st.DepartureLabel = LabelEndTrip
	}

	var arrivalDone, departureDone bool
	if done != nil {
		arrivalDone = done.Has(c.ID, selectedHub, domain.ActionArrival)
		departureDone = done.Has(c.ID, selectedHub, domain.ActionDeparture)
	}

	st.ArrivalDisabled = arrivalDone || isCurrentLocation || isBeforeCurrentHub
	st.DepartureDisabled = departureDone || isBeforeCurrentHub

	if c.Status.IsTerminal() || selectedHub == "" {
		st.ArrivalDisabled = true
		st.DepartureDisabled = true
	}

	return st
}

// WithPending disables both actions while a request for the row is in flight.
func (s ActionState) WithPending(pending bool) ActionState {
	if pending {
		s.Pending = true
		s.ArrivalDisabled = true
		s.DepartureDisabled = true
	}
	return s
}
