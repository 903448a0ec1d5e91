package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"logistichub-console/internal/adapters/backend"
	"logistichub-console/internal/config"
	"logistichub-console/internal/platform/bearer"
	"logistichub-console/internal/ports"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// CommandFactory builds hubctl commands. CreateBackend is swapped out in tests.
type CommandFactory struct {
	CreateBackend func(ctx context.Context, flags *Flags) (ports.LogisticsBackend, error)
	Now           func() time.Time
}

var DefaultCommandFactory = CommandFactory{
	CreateBackend: createBackend,
	Now:           time.Now,
}

func createBackend(ctx context.Context, flags *Flags) (ports.LogisticsBackend, error) {
	if flags.BackendURL == "" {
		return backend.NewDemoBackend(time.Now()), nil
	}
	c, err := backend.NewClient(flags.BackendURL, flags.Timeout)
	if err != nil {
		return nil, fmt.Errorf("backend client could not be created: %w", err)
	}
	return c, nil
}

// CreateRootCommand returns hubctl with all subcommands attached.
func (f CommandFactory) CreateRootCommand(flgs *Flags) *cobra.Command {
	root := &cobra.Command{
		Use:           "hubctl",
		Short:         "hubctl is an operator tool for the LogisticHub backend",
		Long:          `hubctl lists hubs and consignments, tracks packages, marks arrivals and departures, and books deliveries against the LogisticHub backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flgs.BackendURL, flagMap.BackendURL.Name, config.Get("BACKEND_URL", flagMap.BackendURL.Value), flagMap.BackendURL.Usage)
	pf.StringVar(&flgs.Token, flagMap.Token.Name, config.Get("BACKEND_TOKEN", flagMap.Token.Value), flagMap.Token.Usage)
	pf.DurationVar(&flgs.Timeout, flagMap.Timeout.Name, flagMap.Timeout.Value, flagMap.Timeout.Usage)
	pf.BoolVarP(&flgs.Verbose, flagMap.Verbose.Name, "v", flagMap.Verbose.Value, flagMap.Verbose.Usage)

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if !flgs.Verbose {
			log.SetOutput(io.Discard)
		}
	}

	root.AddCommand(
		f.CreateHubsCommand(flgs),
		f.CreateConsignmentsCommand(flgs),
		f.CreateTrackCommand(flgs),
		f.CreateMarkCommand(flgs),
		f.CreateCreateCommand(flgs),
	)
	return root
}

// backend returns the backend client and a context carrying the CLI's token.
func (f CommandFactory) backend(cmd *cobra.Command, flgs *Flags) (context.Context, ports.LogisticsBackend, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = bearer.WithToken(ctx, flgs.Token)

	be, err := f.CreateBackend(ctx, flgs)
	if err != nil {
		return nil, nil, err
	}
	return ctx, be, nil
}

func (f CommandFactory) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Execute runs hubctl against os.Args and exits non-zero on failure.
func Execute() {
	root := DefaultCommandFactory.CreateRootCommand(&Flags{})
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
