// Package proposer opens bridge proposals in both directions. A deposit
// proposal sends the Ethereum headers produced since the checker contract's
// last block, together with the deposits locked in them, to GOSH. A
// withdrawal proposal sends the burns received on GOSH since the last
// processed master block to ELock.
//
// Every call proposes once; scheduling is left to the caller.
package proposer

import (
	"context"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/gosh-sh/gosh-proposer/internal/proposer"

// DefaultMaxBlocks is the largest number of headers sent in one deposit
// proposal.
const DefaultMaxBlocks = 20

// Service opens proposals.
type Service interface {
	// ProposeDeposits submits the headers after the checker contract's last
	// block, at most the configured maximum, with the deposits they contain.
	// It returns ErrDirectionDisabled when no checker is configured and
	// ErrChainMismatch when the node's chain does not extend the checker's
	// block. A result with Submitted false means there was nothing to send.
	ProposeDeposits(ctx context.Context) (DepositResult, error)

	// ProposeWithdrawal submits the burns received since the ELock's last
	// processed master block up to the latest one. It returns
	// ErrDirectionDisabled when no withdrawal proposer is configured. A result
	// with Submitted false means no burn was queued.
	ProposeWithdrawal(ctx context.Context) (WithdrawalResult, error)
}

// Dependencies are the collaborators of the proposer.
type Dependencies struct {
	// Headers reads Ethereum headers for deposit proposals.
	Headers HeaderReader
	// Checker receives deposit proposals. A nil Checker disables
	// ProposeDeposits.
	Checker DepositTarget
	// Deposits re-derives the deposits of a block range.
	Deposits DepositFinder

	// Lock reads the withdrawal cursor from ELock.
	Lock LockReader
	// Gosh resolves master blocks.
	Gosh GoshHead
	// Burns re-derives the burns of a master block range.
	Burns BurnFinder
	// Withdrawals receives withdrawal proposals. A nil Withdrawals disables
	// ProposeWithdrawal.
	Withdrawals WithdrawalProposer
}

type config struct {
	maxBlocks uint64
}

// Option configures the service.
type Option func(*config)

// WithMaxBlocks caps the headers of one deposit proposal. Default
// DefaultMaxBlocks.
func WithMaxBlocks(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBlocks = n
		}
	}
}

type service struct {
	deps      Dependencies
	cfg       config
	submitted metric.Int64Counter
}

var _ Service = (*service)(nil)

// New creates a proposer.
func New(deps Dependencies, opts ...Option) *service {
	cfg := config{
		maxBlocks: DefaultMaxBlocks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	submitted, err := otel.Meter(meterName).Int64Counter(
		"bridge.proposals.submitted",
		metric.WithDescription("Proposals submitted, by direction."),
	)
	if err != nil {
		logger.Warn(context.Background(), "submission counter unavailable", "error", err)
	}

	return &service{
		deps:      deps,
		cfg:       cfg,
		submitted: submitted,
	}
}

func (s *service) record(ctx context.Context, direction string) {
	if s.submitted == nil {
		return
	}

	s.submitted.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", direction)))
}
