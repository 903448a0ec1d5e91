package dto

import "logistichub-console/internal/domain"

type CreateDeliveryRequest struct {
	Sender         string `json:"sender"`
	SenderEmail    string `json:"sender_email"`
	Recipient      string `json:"recipient"`
	RecipientEmail string `json:"recipient_email"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
}

func (r CreateDeliveryRequest) ToDomain() domain.DeliveryRequest {
	return domain.DeliveryRequest{
		Sender:         r.Sender,
		SenderEmail:    r.SenderEmail,
		Recipient:      r.Recipient,
		RecipientEmail: r.RecipientEmail,
		Origin:         r.Origin,
		Destination:    r.Destination,
	}
}

type CreateDeliveryResponse struct {
	TrackingID string          `json:"tracking_id"`
	Package    PackageResponse `json:"package"`
}

type ListHubsResponse struct {
	Hubs []string `json:"hubs"`
}
