// Package bridgestat reads a point-in-time view of the bridge: ELock
// counters and balances on Ethereum, both chain heads, and the burns queued
// on GOSH since the last processed withdrawal.
package bridgestat

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"golang.org/x/sync/errgroup"
)

// LockReader reads the ELock contract state.
type LockReader interface {
	Counters(ctx context.Context) (send, receive *big.Int, err error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	CollectedCommissions(ctx context.Context) (*big.Int, error)
	LastProcessedBlock(ctx context.Context) (string, error)
}

// EthHead returns the latest Ethereum block number.
type EthHead interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// GoshHead reads the GOSH masterchain.
type GoshHead interface {
	LatestMasterBlock(ctx context.Context) (reconcile.MasterBlock, error)
	MasterSeqNo(ctx context.Context, blockID string) (uint64, error)
}

// BurnFinder re-derives the burns received between two master blocks.
type BurnFinder interface {
	Burns(ctx context.Context, start, end uint64) ([]extract.BurnRecord, error)
}

// Snapshot is the bridge state at one moment.
type Snapshot struct {
	DepositCounter       *big.Int
	WithdrawalCounter    *big.Int
	TotalSupply          *big.Int
	CollectedCommissions *big.Int
	LastProcessedBlock   string
	EthBlock             uint64
	GoshBlock            reconcile.MasterBlock
	// QueuedBurns lists the burns received from LastProcessedBlock up to
	// and including GoshBlock.
	QueuedBurns []extract.BurnRecord
	// QueuedValue sums QueuedBurns per Ethereum token root.
	QueuedValue map[common.Address]*big.Int
}

// Reader builds snapshots.
type Reader struct {
	lock  LockReader
	eth   EthHead
	gosh  GoshHead
	burns BurnFinder
}

// New returns a Reader.
func New(lock LockReader, eth EthHead, gosh GoshHead, burns BurnFinder) *Reader {
	return &Reader{lock: lock, eth: eth, gosh: gosh, burns: burns}
}

// Take reads a snapshot. Independent reads run concurrently.
func (r *Reader) Take(ctx context.Context) (Snapshot, error) {
	var s Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		send, receive, err := r.lock.Counters(gctx)
		if err != nil {
			return fmt.Errorf("counters: %w", err)
		}
		s.DepositCounter, s.WithdrawalCounter = send, receive
		return nil
	})
	g.Go(func() (err error) {
		if s.TotalSupply, err = r.lock.TotalSupply(gctx); err != nil {
			return fmt.Errorf("total supply: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.CollectedCommissions, err = r.lock.CollectedCommissions(gctx); err != nil {
			return fmt.Errorf("collected commissions: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.LastProcessedBlock, err = r.lock.LastProcessedBlock(gctx); err != nil {
			return fmt.Errorf("last processed block: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.EthBlock, err = r.eth.BlockNumber(gctx); err != nil {
			return fmt.Errorf("eth block number: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if s.GoshBlock, err = r.gosh.LatestMasterBlock(gctx); err != nil {
			return fmt.Errorf("gosh master block: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	burns, err := r.QueuedBurns(ctx, s.LastProcessedBlock, s.GoshBlock)
	if err != nil {
		return Snapshot{}, err
	}

	s.QueuedBurns = burns
	s.QueuedValue = SumByRoot(burns)

	return s, nil
}

// QueuedBurns returns the burns received in master blocks from lastID up to
// and including head. The burns of lastID itself belong to the next
// withdrawal proposal.
func (r *Reader) QueuedBurns(ctx context.Context, lastID string, head reconcile.MasterBlock) ([]extract.BurnRecord, error) {
	start, err := r.gosh.MasterSeqNo(ctx, lastID)
	if err != nil {
		return nil, fmt.Errorf("seq no of last processed block: %w", err)
	}

	if start > head.SeqNo {
		return nil, nil
	}

	burns, err := r.burns.Burns(ctx, start, head.SeqNo+1)
	if err != nil {
		return nil, fmt.Errorf("queued burns: %w", err)
	}

	return burns, nil
}

// SumByRoot adds up burn values per token root.
func SumByRoot(burns []extract.BurnRecord) map[common.Address]*big.Int {
	sums := make(map[common.Address]*big.Int)
	for _, b := range burns {
		sum, ok := sums[b.EthRoot]
		if !ok {
			sum = new(big.Int)
			sums[b.EthRoot] = sum
		}
		sum.Add(sum, b.Value)
	}

	return sums
}
