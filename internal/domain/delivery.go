package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var ErrInvalidDelivery = errors.New("invalid delivery request")

// DeliveryRequest is the input for creating a new shipment.
type DeliveryRequest struct {
	Sender         string
	SenderEmail    string
	Recipient      string
	RecipientEmail string
	Origin         string
	Destination    string
}

// Normalize trims surrounding whitespace from every field.
func (d DeliveryRequest) Normalize() DeliveryRequest {
	return DeliveryRequest{
		Sender:         strings.TrimSpace(d.Sender),
		SenderEmail:    strings.TrimSpace(d.SenderEmail),
		Recipient:      strings.TrimSpace(d.Recipient),
		RecipientEmail: strings.TrimSpace(d.RecipientEmail),
		Origin:         strings.TrimSpace(d.Origin),
		Destination:    strings.TrimSpace(d.Destination),
	}
}

// Validate expects a normalized request.
func (d DeliveryRequest) Validate() error {
	required := []struct {
		name, value string
	}{
		{"sender", d.Sender},
		{"sender_email", d.SenderEmail},
		{"recipient", d.Recipient},
		{"recipient_email", d.RecipientEmail},
		{"origin", d.Origin},
		{"destination", d.Destination},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidDelivery, f.name)
		}
	}

	if _, err := mail.ParseAddress(d.SenderEmail); err != nil {
		return fmt.Errorf("%w: sender_email %q is not a valid address", ErrInvalidDelivery, d.SenderEmail)
	}
	if _, err := mail.ParseAddress(d.RecipientEmail); err != nil {
		return fmt.Errorf("%w: recipient_email %q is not a valid address", ErrInvalidDelivery, d.RecipientEmail)
	}

	if d.Origin == d.Destination {
		return fmt.Errorf("%w: origin and destination must differ", ErrInvalidDelivery)
	}

	return nil
}
