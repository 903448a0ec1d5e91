package domain

import "time"

// Package is a single shipment, identified by a tracking ID that is unique per
// shipment.
type Package struct {
	ID             string
	TrackingID     string
	ConsignmentID  string
	Sender         string
	SenderEmail    string
	Recipient      string
	RecipientEmail string
	Origin         string
	Destination    string
	CurrentHub     string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TrackingUpdate records a package's hub and raw external status at a point in
// time. Updates are immutable and append-only.
type TrackingUpdate struct {
	ID             int
	PacketID       int
	TrackingID     string
	Hub            string
	ExternalStatus string
	UpdatedAt      time.Time
}

// Tracking is a package together with its update history.
type Tracking struct {
	Package Package
	Updates []TrackingUpdate
}
