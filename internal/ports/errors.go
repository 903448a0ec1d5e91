package ports

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a tracking lookup matches no shipment.
var ErrNotFound = errors.New("not found")

// TransportError wraps network failures talking to the backend.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx backend response. Message is taken from the JSON body
// when present, otherwise the HTTP status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
}

// BlockedError is a successful call whose payload rejects the transition on
// business rules.
type BlockedError struct {
	Message string
}

func (e *BlockedError) Error() string {
	return "action blocked: " + e.Message
}
