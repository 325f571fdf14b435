package cli

import (
	"os"
	"testing"

	clitest "github.com/gosh-sh/gosh-proposer/internal/handlers/cli/mocks"
	relaytest "github.com/gosh-sh/gosh-proposer/internal/relay/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDependencies(t *testing.T) (Dependencies, *relaytest.Service, *relaytest.Service) {
	t.Helper()

	voting := relaytest.NewService(t)
	checker := relaytest.NewService(t)

	return Dependencies{
		Relay:   voting,
		Checker: checker,
		Headers: clitest.NewHeaderSource(t),
		Status:  clitest.NewStatusSource(t),
	}, voting, checker
}

func TestRun(t *testing.T) {
	// Save original os.Args to restore after tests
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	t.Run("help lists the commands", func(t *testing.T) {
		deps, _, _ := newDependencies(t)
		os.Args = []string{"bridgecheck", "--help"}

		assert.NoError(t, Run(t.Context(), deps))
	})

	t.Run("start without validator keys", func(t *testing.T) {
		deps, _, _ := newDependencies(t)
		deps.Relay = nil
		os.Args = []string{"bridgecheck", "start"}

		err := Run(t.Context(), deps)
		assert.ErrorIs(t, err, ErrVotingDisabled)
	})

	t.Run("check uses the read-only service", func(t *testing.T) {
		deps, _, checker := newDependencies(t)
		checker.EXPECT().CheckWithdrawals(mock.Anything).Return(nil, nil).Once()

		devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		require.NoError(t, err)
		defer devnull.Close()

		stdout := os.Stdout
		os.Stdout = devnull
		defer func() { os.Stdout = stdout }()

		os.Args = []string{"bridgecheck", "check", "withdrawals"}
		assert.NoError(t, Run(t.Context(), deps))
	})
}
