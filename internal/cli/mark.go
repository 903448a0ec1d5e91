package cli

import (
	"errors"
	"fmt"
	"logistichub-console/internal/api/dto"
	"logistichub-console/internal/domain"
	"logistichub-console/internal/ports"
	"logistichub-console/internal/services"

	"github.com/spf13/cobra"
)

type MarkResult struct {
	Result  dto.ActionResponse    `json:"result"`
	Actions *services.ActionState `json:"actions,omitempty"`
}

func (f CommandFactory) CreateMarkCommand(flgs *Flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "mark",
		Short: "Mark a consignment's arrival or departure at a hub",
		Long:  `Mark a consignment's arrival or departure at a hub, then show the actions still allowed there.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flgs.Consignment == "" {
				return errors.New("--consignment is required")
			}
			action, err := domain.ParseActionKind(flgs.Action)
			if err != nil {
				return err
			}
			ctx, be, err := f.backend(cmd, flgs)
			if err != nil {
				return err
			}

			sess := services.NewSession("hubctl", f.Now)
			updater := &services.StatusUpdater{Backend: be}

			res, err := updater.Mark(ctx, sess, flgs.Consignment, flgs.Hub, action)
			var blocked *ports.BlockedError
			if errors.As(err, &blocked) {
				return fmt.Errorf("%s blocked: %s", action, blocked.Message)
			}
			if err != nil {
				return err
			}

			out := MarkResult{Result: dto.ActionResponse{
				ConsignmentID: flgs.Consignment,
				Hub:           res.Hub,
				Action:        string(action),
				Status:        res.Status,
				Message:       res.Message,
			}}

			// Re-read the hub so the printed gating includes this action.
			view, err := (&services.DashboardService{Backend: be, Now: f.now}).Load(ctx, sess, flgs.Hub, flgs.Date)
			if err != nil {
				return printMessageWithData(cmd.OutOrStdout(), "", out)
			}
			for _, row := range view.Rows {
				if row.Consignment.ID == flgs.Consignment {
					st := row.Actions
					out.Actions = &st
					break
				}
			}
			return printMessageWithData(cmd.OutOrStdout(), "", out)
		},
	}
	c.Flags().StringVar(&flgs.Consignment, flagMap.Consignment.Name, flagMap.Consignment.Value, flagMap.Consignment.Usage)
	c.Flags().StringVar(&flgs.Hub, flagMap.Hub.Name, flagMap.Hub.Value, flagMap.Hub.Usage)
	c.Flags().StringVar(&flgs.Action, flagMap.Action.Name, flagMap.Action.Value, flagMap.Action.Usage)
	c.Flags().StringVar(&flgs.Date, flagMap.Date.Name, flagMap.Date.Value, flagMap.Date.Usage)
	return c
}
