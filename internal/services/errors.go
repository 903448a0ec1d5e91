package services

import (
	"errors"
	"logistichub-console/internal/ports"
)

var (
	ErrActionPending = errors.New("an update for this consignment is already in flight")
	ErrNoHubSelected = errors.New("no hub selected")
	ErrNoTrackingID  = errors.New("tracking id is required")
	ErrInvalidDate   = errors.New("invalid trip date")
)

// UserMessage turns an error into the text shown to the operator or customer.
// Backend messages are passed through; anything else becomes fallback.
func UserMessage(err error, fallback string) string {
	var (
		be *ports.BlockedError
		ae *ports.APIError
	)
	switch {
	case errors.As(err, &be) && be.Message != "":
		return be.Message
	case errors.As(err, &ae) && ae.Message != "":
		return ae.Message
	}
	return fallback
}
