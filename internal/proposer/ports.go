package proposer

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

var (
	// ErrDirectionDisabled is returned when the collaborators of a direction
	// are not configured.
	ErrDirectionDisabled = errors.New("proposing disabled for direction")

	// ErrChainMismatch is returned when the headers walked back from the
	// proposal tip do not reach the block the checker contract holds.
	ErrChainMismatch = errors.New("headers do not link to checker block")
)

// Block is one Ethereum header as sent to the checker contract.
type Block struct {
	Hash common.Hash
	// Data is the canonical RLP serialization of the header.
	Data []byte
}

// HeaderReader reads Ethereum headers.
type HeaderReader interface {
	HeaderByHash(ctx context.Context, hash common.Hash) (header.BlockHeader, error)
	// HeaderByNumber returns the latest header when number is nil.
	HeaderByNumber(ctx context.Context, number *uint64) (header.BlockHeader, error)
}

// DepositTarget is the GOSH checker contract.
type DepositTarget interface {
	// CheckerStatus returns the hash of the last block the checker accepted.
	CheckerStatus(ctx context.Context) (common.Hash, error)
	// SubmitBlocks sends headers, oldest first, with the deposits they hold.
	SubmitBlocks(ctx context.Context, blocks []Block, transfers []extract.TransferRecord) error
}

// DepositFinder returns the deposits locked in blocks (from, till].
type DepositFinder interface {
	Deposits(ctx context.Context, from, till uint64) ([]extract.TransferRecord, error)
}

// LockReader reads the ELock withdrawal cursor.
type LockReader interface {
	LastProcessedBlock(ctx context.Context) (string, error)
}

// GoshHead reads the GOSH masterchain.
type GoshHead interface {
	LatestMasterBlock(ctx context.Context) (reconcile.MasterBlock, error)
	MasterSeqNo(ctx context.Context, blockID string) (uint64, error)
}

// BurnFinder returns the burns received in master blocks [start, end).
type BurnFinder interface {
	Burns(ctx context.Context, start, end uint64) ([]extract.BurnRecord, error)
}

// WithdrawalProposer opens a withdrawal proposal on ELock and returns the
// transaction hash.
type WithdrawalProposer interface {
	ProposeWithdrawal(ctx context.Context, from, till common.Hash, burns []extract.BurnRecord) (common.Hash, error)
}
