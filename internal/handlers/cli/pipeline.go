package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gosh-sh/gosh-proposer/internal/relay"

	"github.com/urfave/cli/v3"
)

// startCommand runs the validator loop until SIGINT or SIGTERM.
//
//	bridgecheck start
func startCommand(svc relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the validator loop verifying and voting on bridge proposals.",
		Usage:       "Runs until Ctrl+C or a termination signal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if svc == nil {
				return ErrVotingDisabled
			}

			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
