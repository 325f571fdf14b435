package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/bridgestat"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/proposer"
	"github.com/gosh-sh/gosh-proposer/internal/relay"

	"github.com/urfave/cli/v3"
)

// ErrVotingDisabled is returned by commands that vote when the validator
// keys are not configured.
var ErrVotingDisabled = errors.New("voting disabled: validator keys are not configured")

// ErrProposingDisabled is returned by the propose commands when no proposer
// is wired.
var ErrProposingDisabled = errors.New("proposing disabled")

// HeaderSource fetches Ethereum block headers.
type HeaderSource interface {
	HeaderByHash(ctx context.Context, hash common.Hash) (header.BlockHeader, error)
	// HeaderByNumber fetches the latest header when number is nil.
	HeaderByNumber(ctx context.Context, number *uint64) (header.BlockHeader, error)
}

// StatusSource takes bridge snapshots.
type StatusSource interface {
	Take(ctx context.Context) (bridgestat.Snapshot, error)
}

// Dependencies are the services behind the commands.
type Dependencies struct {
	// Relay votes. It is nil when the validator keys are missing.
	Relay relay.Service
	// Checker verifies proposals without voting.
	Checker relay.Service
	// Proposer opens proposals. Directions it cannot serve fail with
	// proposer.ErrDirectionDisabled.
	Proposer proposer.Service
	Headers HeaderSource
	Status  StatusSource
}

// Run executes the command line in os.Args.
//
//   - `start`: runs the validator loop until interrupted.
//   - `check deposits|withdrawals`: verifies open proposals without voting.
//   - `propose deposits|withdrawals`: opens one proposal.
//   - `verify-header`: re-hashes an Ethereum header.
//   - `status`: prints ELock counters, chain heads and queued burns.
//   - `burns`: prints the burns queued since the last withdrawal.
func Run(ctx context.Context, deps Dependencies) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "bridgecheck",
		Description:           "Verifies and votes on ETH-GOSH bridge proposals.",
		Usage:                 "bridgecheck [command] [flags]",
		Commands: []*cli.Command{
			startCommand(deps.Relay),
			checkCommand(deps.Checker),
			proposeCommand(deps.Proposer),
			verifyHeaderCommand(deps.Headers),
			statusCommand(deps.Status),
			burnsCommand(deps.Status),
		},
	}

	return app.Run(ctx, os.Args)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func decimal(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
