package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type HubsResult struct {
	Hubs []string `json:"hubs"`
}

func (f CommandFactory) CreateHubsCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "hubs",
		Short: "List all hubs",
		Long:  `List all hub names known to the backend.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, be, err := f.backend(cmd, flgs)
			if err != nil {
				return err
			}
			hubs, err := be.ListHubs(ctx)
			if err != nil {
				return fmt.Errorf("list hubs: %w", err)
			}
			return printMessageWithData(cmd.OutOrStdout(), "", HubsResult{Hubs: hubs})
		},
	}
}
