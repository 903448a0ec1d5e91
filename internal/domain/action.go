package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ActionKind is an operator action on a consignment at a hub.
type ActionKind string

const (
	ActionArrival   ActionKind = "ARRIVAL"
	ActionDeparture ActionKind = "DEPARTURE"
)

var ErrInvalidAction = errors.New("invalid action")

// ParseActionKind accepts "arrival"/"departure" in any case.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionArrival:
		return ActionArrival, nil
	case ActionDeparture:
		return ActionDeparture, nil
	}
	return "", fmt.Errorf("parse action %q: %w", s, ErrInvalidAction)
}

// ActionResult is the backend's verdict on a status update request.
type ActionResult struct {
	ConsignmentID string
	Hub           string
	Status        string
	Message       string
}

const (
	ActionStatusOK      = "OK"
	ActionStatusBlocked = "BLOCKED"
)
