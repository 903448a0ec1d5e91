package domain

import (
	"fmt"
	"time"
)

// Consignment is a scheduled or in-progress trip along a route on a given date.
// It is mutated only by the backend; the console requests transitions and
// re-reads it.
type Consignment struct {
	ID               string
	Name             string
	Date             time.Time
	OriginHub        string
	DestinationHub   string
	CurrentHub       *string // nil until the trip starts
	RouteHubs        Route
	Status           Status
	ActivePackets    int
	NewPackets       int
	DepartureTime    *time.Time
	EstimatedArrival *time.Time
}

// Started reports whether the trip has left its origin.
func (c Consignment) Started() bool {
	return c.CurrentHub != nil
}

// Validate checks that the current hub, when set, lies on the route.
// A consignment without route hubs cannot be checked and is accepted.
func (c Consignment) Validate() error {
	if c.CurrentHub == nil || len(c.RouteHubs) == 0 {
		return nil
	}
	if !c.RouteHubs.Contains(*c.CurrentHub) {
		return fmt.Errorf("consignment %s: current hub %q is not on route %v", c.ID, *c.CurrentHub, c.RouteHubs)
	}
	return nil
}
