package domain

import (
	"errors"
	"testing"
)

func TestDeliveryRequestValidate(t *testing.T) {
	valid := DeliveryRequest{
		Sender:         "John Smith",
		SenderEmail:    "john@example.com",
		Recipient:      "Alice Johnson",
		RecipientEmail: "alice@example.com",
		Origin:         "North Hub",
		Destination:    "South Hub",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*DeliveryRequest)
	}{
		{"missing sender", func(d *DeliveryRequest) { d.Sender = "" }},
		{"missing destination", func(d *DeliveryRequest) { d.Destination = "" }},
		{"bad sender email", func(d *DeliveryRequest) { d.SenderEmail = "not-an-email" }},
		{"bad recipient email", func(d *DeliveryRequest) { d.RecipientEmail = "@" }},
		{"same hubs", func(d *DeliveryRequest) { d.Destination = d.Origin }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if !errors.Is(err, ErrInvalidDelivery) {
				t.Fatalf("Validate() = %v, want ErrInvalidDelivery", err)
			}
		})
	}
}

func TestDeliveryRequestNormalize(t *testing.T) {
	req := DeliveryRequest{Sender: "  John ", Origin: " North Hub"}.Normalize()
	if req.Sender != "John" || req.Origin != "North Hub" {
		t.Fatalf("Normalize() = %+v", req)
	}
}
