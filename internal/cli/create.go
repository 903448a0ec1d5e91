package cli

import (
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/services"

	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateCreateCommand(flgs *Flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "create",
		Short: "Book a new delivery",
		Long:  `Book a new delivery between two hubs and print its tracking ID.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, be, err := f.backend(cmd, flgs)
			if err != nil {
				return err
			}

			pkg, err := (&services.DeliveryService{Backend: be}).Create(ctx, domain.DeliveryRequest{
				Sender:         flgs.Sender,
				SenderEmail:    flgs.SenderEmail,
				Recipient:      flgs.Recipient,
				RecipientEmail: flgs.RecipientEmail,
				Origin:         flgs.Origin,
				Destination:    flgs.Destination,
			})
			if err != nil {
				return err
			}
			return printMessageWithData(cmd.OutOrStdout(), "", dto.CreateDeliveryResponse{
				TrackingID: pkg.TrackingID,
				Package:    dto.NewPackageResponse(*pkg),
			})
		},
	}

	fl := c.Flags()
	fl.StringVar(&flgs.Sender, "sender", "", "Sender name.")
	fl.StringVar(&flgs.SenderEmail, "sender-email", "", "Sender email address.")
	fl.StringVar(&flgs.Recipient, "recipient", "", "Recipient name.")
	fl.StringVar(&flgs.RecipientEmail, "recipient-email", "", "Recipient email address.")
	fl.StringVar(&flgs.Origin, "origin", "", "Origin hub.")
	fl.StringVar(&flgs.Destination, "destination", "", "Destination hub.")
	return c
}
