package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the canonical lifecycle state of a consignment or package.
//
// The backend reports "Completed" and "Delivered" in different places for the
// same terminal-success state; both parse to StatusCompleted.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusInTransit Status = "In Transit"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// statusTable maps every raw status spelling the backend emits, normalized to
// upper snake case, onto the canonical status.
var statusTable = map[string]Status{
	"CREATED":    StatusScheduled,
	"ASSIGNED":   StatusScheduled,
	"SCHEDULED":  StatusScheduled,
	"IN_TRANSIT": StatusInTransit,
	"COMPLETED":  StatusCompleted,
	"DELIVERED":  StatusCompleted,
	"CANCELLED":  StatusCancelled,
	"CANCELED":   StatusCancelled,
}

// externalLabels are display phrases for the raw package codes shown in the
// tracking timeline.
var externalLabels = map[string]string{
	"CREATED":    "Created",
	"ASSIGNED":   "Assigned",
	"IN_TRANSIT": "In Transit",
	"DELIVERED":  "Delivered",
	"CANCELLED":  "Cancelled",
}

func normalizeStatusCode(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(s), "_")
}

// ParseStatus accepts raw backend codes ("IN_TRANSIT") and display phrases
// ("In Transit"). Unknown values fall back to StatusScheduled.
func ParseStatus(raw string) Status {
	if s, ok := statusTable[normalizeStatusCode(raw)]; ok {
		return s
	}
	return StatusScheduled
}

// ConsignmentStatus resolves a consignment's status. A trip that has not
// started is Scheduled unless the backend already marked it terminal.
func ConsignmentStatus(raw string, currentHub *string) Status {
	s := ParseStatus(raw)
	if currentHub == nil && !s.IsTerminal() {
		return StatusScheduled
	}
	return s
}

// FormatExternalStatus renders a raw package status code for display.
// Unknown codes are title-cased word by word: OUT_FOR_DELIVERY -> Out For Delivery.
func FormatExternalStatus(raw string) string {
	if label, ok := externalLabels[raw]; ok {
		return label
	}
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(raw), "_", " "))
}
