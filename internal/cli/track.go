package cli

import (
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/services"

	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateTrackCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "track TRACKING_ID",
		Short: "Show a package's route progress",
		Long:  `Show a package's route progress and update history, newest first.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, be, err := f.backend(cmd, flgs)
			if err != nil {
				return err
			}
			view, err := (&services.TrackingService{Backend: be}).Track(ctx, args[0])
			if err != nil {
				return err
			}
			return printMessageWithData(cmd.OutOrStdout(), "", dto.NewTrackingResponse(view))
		},
	}
}
