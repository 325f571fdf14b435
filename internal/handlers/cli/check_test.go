package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/gosh-sh/gosh-proposer/internal/relay"
	relaytest "github.com/gosh-sh/gosh-proposer/internal/relay/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runWithOutput(t *testing.T, cmd *cli.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.Command{
		Writer:   &out,
		Commands: []*cli.Command{cmd},
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	t.Run("prints deposit verdicts", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().CheckDeposits(mock.Anything).Return([]relay.Outcome{
			{Direction: relay.Deposit, Proposal: "0:aa", Verdict: reconcile.Verdict{Accepted: true, Stage: reconcile.StateFactsReDerived}},
			{
				Direction: relay.Deposit,
				Proposal:  "0:bb",
				Verdict: reconcile.Verdict{
					Reason: reconcile.ReasonCountMismatch,
					Stage:  reconcile.StateFactsReDerived,
					Detail: "counter delta 2, found 1 transfers",
				},
			},
		}, nil).Once()

		out, err := runWithOutput(t, checkCommand(svc), "check", "deposits")
		require.NoError(t, err)

		var views []outcomeView
		require.NoError(t, json.Unmarshal([]byte(out), &views))
		require.Len(t, views, 2)

		assert.True(t, views[0].Accepted)
		assert.Empty(t, views[0].Reason)
		assert.Equal(t, "0:bb", views[1].Proposal)
		assert.Equal(t, "CountMismatch", views[1].Reason)
		assert.Equal(t, "FactsReDerived", views[1].Stage)
	})

	t.Run("prints an empty list when nothing is open", func(t *testing.T) {
		svc := relaytest.NewService(t)
		svc.EXPECT().CheckWithdrawals(mock.Anything).Return(nil, nil).Once()

		out, err := runWithOutput(t, checkCommand(svc), "check", "withdrawals")
		require.NoError(t, err)
		assert.JSONEq(t, "[]", out)
	})

	t.Run("returns the service error", func(t *testing.T) {
		svc := relaytest.NewService(t)
		boom := errors.New("elock unavailable")
		svc.EXPECT().CheckWithdrawals(mock.Anything).Return(nil, boom).Once()

		_, err := runWithOutput(t, checkCommand(svc), "check", "withdrawals")
		assert.ErrorIs(t, err, boom)
	})
}
