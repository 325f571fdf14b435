package proposer

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
)

// DepositResult describes one deposit proposal.
type DepositResult struct {
	// From is the checker's last block; FromBlock its number.
	From      common.Hash
	FromBlock uint64
	// Till is the newest header sent; TillBlock its number. Both are zero
	// when nothing was sent.
	Till      common.Hash
	TillBlock uint64
	Blocks    int
	Transfers []extract.TransferRecord
	Submitted bool
}

func (s *service) ProposeDeposits(ctx context.Context) (DepositResult, error) {
	if s.deps.Checker == nil {
		return DepositResult{}, fmt.Errorf("%w: deposit", ErrDirectionDisabled)
	}

	ctx = logger.Derive(ctx, "direction", "deposit")

	prev, err := s.deps.Checker.CheckerStatus(ctx)
	if err != nil {
		return DepositResult{}, err
	}

	first, err := s.headerByHash(ctx, prev)
	if err != nil {
		return DepositResult{}, fmt.Errorf("checker block: %w", err)
	}

	latest, err := s.deps.Headers.HeaderByNumber(ctx, nil)
	if err != nil {
		return DepositResult{}, fmt.Errorf("latest block: %w", err)
	}

	from, err := number(first)
	if err != nil {
		return DepositResult{}, fmt.Errorf("checker block: %w", err)
	}

	head, err := number(latest)
	if err != nil {
		return DepositResult{}, fmt.Errorf("latest block: %w", err)
	}

	result := DepositResult{From: prev, FromBlock: from}
	if head <= from {
		logger.Info(ctx, "no blocks to propose", "checker_block", from, "head", head)
		return result, nil
	}

	till := min(head, from+s.cfg.maxBlocks)
	tip := latest
	if till != head {
		logger.Info(ctx, "proposal capped", "head", head, "till", till)
		if tip, err = s.deps.Headers.HeaderByNumber(ctx, &till); err != nil {
			return DepositResult{}, fmt.Errorf("block %d: %w", till, err)
		}
	}

	blocks, err := s.linkedBlocks(ctx, tip, prev, till-from)
	if err != nil {
		return DepositResult{}, err
	}

	transfers, err := s.deps.Deposits.Deposits(ctx, from, till)
	if err != nil {
		return DepositResult{}, fmt.Errorf("deposits over (%d, %d]: %w", from, till, err)
	}

	if err := s.deps.Checker.SubmitBlocks(ctx, blocks, transfers); err != nil {
		return DepositResult{}, fmt.Errorf("submit blocks (%d, %d]: %w", from, till, err)
	}

	s.record(ctx, "deposit")
	logger.Info(ctx, "deposit proposal submitted", "from", from, "till", till, "transfers", len(transfers))

	result.Till = tip.Hash
	result.TillBlock = till
	result.Blocks = len(blocks)
	result.Transfers = transfers
	result.Submitted = true

	return result, nil
}

// linkedBlocks walks n headers back from tip through parent hashes, checks
// that the oldest one is a child of prev and returns them encoded, oldest
// first.
func (s *service) linkedBlocks(ctx context.Context, tip header.BlockHeader, prev common.Hash, n uint64) ([]Block, error) {
	blocks := make([]Block, n)

	h := tip
	for i := int(n) - 1; i >= 0; i-- {
		if err := header.Verify(h); err != nil {
			return nil, fmt.Errorf("block %s: %w", h.Hash.Hex(), err)
		}

		data, err := header.Encode(h)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", h.Hash.Hex(), err)
		}
		blocks[i] = Block{Hash: h.Hash, Data: data}

		if i == 0 {
			break
		}

		if h, err = s.headerByHash(ctx, h.ParentHash); err != nil {
			return nil, err
		}
	}

	if h.ParentHash != prev {
		return nil, fmt.Errorf("%w: block %s has parent %s, checker holds %s", ErrChainMismatch, h.Hash.Hex(), h.ParentHash.Hex(), prev.Hex())
	}

	return blocks, nil
}

// headerByHash pins the claimed hash to the requested one so that Verify
// checks the node answered with the block that was asked for.
func (s *service) headerByHash(ctx context.Context, hash common.Hash) (header.BlockHeader, error) {
	h, err := s.deps.Headers.HeaderByHash(ctx, hash)
	if err != nil {
		return header.BlockHeader{}, fmt.Errorf("block %s: %w", hash.Hex(), err)
	}

	h.Hash = hash
	return h, nil
}

func number(h header.BlockHeader) (uint64, error) {
	if h.Number == nil {
		return 0, fmt.Errorf("%w: number", header.ErrMissingField)
	}
	if !h.Number.IsUint64() {
		return 0, fmt.Errorf("block number %s out of range", h.Number)
	}

	return h.Number.Uint64(), nil
}
