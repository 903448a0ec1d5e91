package cli

import (
	"errors"
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/services"

	"github.com/spf13/cobra"
)

func (f CommandFactory) CreateConsignmentsCommand(flgs *Flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "consignments",
		Short: "List a hub's consignments for a date",
		Long:  `List the consignments passing through a hub on a date, with the arrival and departure actions currently allowed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flgs.Hub == "" {
				return errors.New("--hub is required")
			}
			ctx, be, err := f.backend(cmd, flgs)
			if err != nil {
				return err
			}

			svc := &services.DashboardService{Backend: be, Now: f.now}
			view, err := svc.Load(ctx, nil, flgs.Hub, flgs.Date)
			if err != nil {
				return err
			}
			return printMessageWithData(cmd.OutOrStdout(), "", dto.NewDashboardResponse(view))
		},
	}
	c.Flags().StringVar(&flgs.Hub, flagMap.Hub.Name, flagMap.Hub.Value, flagMap.Hub.Usage)
	c.Flags().StringVar(&flgs.Date, flagMap.Date.Name, flagMap.Date.Value, flagMap.Date.Usage)
	return c
}
