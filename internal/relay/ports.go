package relay

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

var (
	// ErrAlreadyVoted is returned by a ClaimStore when this validator has
	// already voted on the proposal.
	ErrAlreadyVoted = errors.New("proposal already voted")

	// ErrClaimHeld is returned by a ClaimStore when another worker holds an
	// unexpired claim on the proposal.
	ErrClaimHeld = errors.New("proposal claimed by another worker")
)

// DepositSource lists the open deposit proposals on GOSH.
type DepositSource interface {
	DepositProposals(ctx context.Context) ([]reconcile.DepositProposal, error)
}

// DepositVoter approves a deposit proposal on GOSH.
type DepositVoter interface {
	VoteForDeposit(ctx context.Context, proposal string) error
}

// WithdrawalSource lists the open withdrawal proposals held by ELock.
type WithdrawalSource interface {
	WithdrawalProposals(ctx context.Context) ([]reconcile.WithdrawalProposal, error)
}

// WithdrawalVoter approves a withdrawal proposal on Ethereum and returns the
// vote transaction hash.
type WithdrawalVoter interface {
	VoteForWithdrawal(ctx context.Context, key common.Hash) (common.Hash, error)
}

// ClaimStore makes sure a proposal is verified and voted by one worker at a
// time and at most once.
//
// A claim that is never marked expires after ttl so that another cycle can
// retry the proposal.
type ClaimStore interface {
	ClaimProposal(ctx context.Context, direction Direction, proposal string, ttl time.Duration) error
	MarkProposalVoted(ctx context.Context, direction Direction, proposal string) error
}
