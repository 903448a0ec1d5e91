package domain

import (
	"encoding/json"
	"slices"
)

// Route is the ordered list of hubs a consignment travels through.
// The origin is the first element and the destination the last; "before" and
// "after" comparisons between hubs use index position.
type Route []string

// IndexOf returns the first position of hub in the route, or -1.
func (r Route) IndexOf(hub string) int {
	return slices.Index(r, hub)
}

// Contains reports whether hub is part of the route.
func (r Route) Contains(hub string) bool {
	return r.IndexOf(hub) != -1
}

// ParseRouteHubs decodes the JSON string array the backend stores route hubs as.
// Anything that is not an array of strings yields an empty route.
func ParseRouteHubs(raw string) Route {
	var hubs []string
	if err := json.Unmarshal([]byte(raw), &hubs); err != nil {
		return Route{}
	}
	if hubs == nil {
		return Route{}
	}
	return Route(hubs)
}
