package cli

import (
	"context"

	"github.com/gosh-sh/gosh-proposer/internal/relay"

	"github.com/urfave/cli/v3"
)

type outcomeView struct {
	Direction relay.Direction `json:"direction"`
	Proposal  string          `json:"proposal"`
	Accepted  bool            `json:"accepted"`
	Reason    string          `json:"reason,omitempty"`
	Stage     string          `json:"stage,omitempty"`
	Detail    string          `json:"detail,omitempty"`
}

func outcomeViews(outcomes []relay.Outcome) []outcomeView {
	views := make([]outcomeView, 0, len(outcomes))
	for _, o := range outcomes {
		views = append(views, outcomeView{
			Direction: o.Direction,
			Proposal:  o.Proposal,
			Accepted:  o.Verdict.Accepted,
			Reason:    string(o.Verdict.Reason),
			Stage:     string(o.Verdict.Stage),
			Detail:    o.Verdict.Detail,
		})
	}
	return views
}

// checkCommand verifies open proposals without claiming or voting.
//
//	bridgecheck check deposits
//	bridgecheck check withdrawals
func checkCommand(svc relay.Service) *cli.Command {
	run := func(check func(relay.Service, context.Context) ([]relay.Outcome, error)) cli.ActionFunc {
		return func(ctx context.Context, c *cli.Command) error {
			outcomes, err := check(svc, ctx)
			if err != nil {
				return err
			}
			return writeJSON(c.Root().Writer, outcomeViews(outcomes))
		}
	}

	return &cli.Command{
		Name:        "check",
		Description: "Verifies the open proposals of one direction and prints the verdicts.",
		Usage:       "Dry run: nothing is claimed or voted.",
		Commands: []*cli.Command{
			{
				Name:   "deposits",
				Usage:  "Verifies the deposit proposals held by the GOSH checker.",
				Action: run(relay.Service.CheckDeposits),
			},
			{
				Name:   "withdrawals",
				Usage:  "Verifies the withdrawal proposals held by ELock.",
				Action: run(relay.Service.CheckWithdrawals),
			},
		},
	}
}
