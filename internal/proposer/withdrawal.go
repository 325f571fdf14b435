package proposer

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
)

// WithdrawalResult describes one withdrawal proposal.
type WithdrawalResult struct {
	// From is the last processed master block id, Till the latest one.
	From      string
	Till      string
	Burns     []extract.BurnRecord
	Tx        common.Hash
	Submitted bool
}

func (s *service) ProposeWithdrawal(ctx context.Context) (WithdrawalResult, error) {
	if s.deps.Withdrawals == nil {
		return WithdrawalResult{}, fmt.Errorf("%w: withdrawal", ErrDirectionDisabled)
	}

	ctx = logger.Derive(ctx, "direction", "withdrawal")

	last, err := s.deps.Lock.LastProcessedBlock(ctx)
	if err != nil {
		return WithdrawalResult{}, fmt.Errorf("last processed block: %w", err)
	}

	start, err := s.deps.Gosh.MasterSeqNo(ctx, last)
	if err != nil {
		return WithdrawalResult{}, fmt.Errorf("seq no of %s: %w", last, err)
	}

	head, err := s.deps.Gosh.LatestMasterBlock(ctx)
	if err != nil {
		return WithdrawalResult{}, fmt.Errorf("latest master block: %w", err)
	}

	result := WithdrawalResult{From: last, Till: head.ID}
	if head.SeqNo <= start {
		logger.Info(ctx, "no master blocks to propose", "start", start, "head", head.SeqNo)
		return result, nil
	}

	burns, err := s.deps.Burns.Burns(ctx, start, head.SeqNo)
	if err != nil {
		return WithdrawalResult{}, fmt.Errorf("burns over [%d, %d): %w", start, head.SeqNo, err)
	}

	result.Burns = burns
	if len(burns) == 0 {
		logger.Info(ctx, "no burns queued", "start", start, "head", head.SeqNo)
		return result, nil
	}

	tx, err := s.deps.Withdrawals.ProposeWithdrawal(ctx, common.HexToHash(last), common.HexToHash(head.ID), burns)
	if err != nil {
		return WithdrawalResult{}, fmt.Errorf("propose withdrawal %s..%s: %w", last, head.ID, err)
	}

	s.record(ctx, "withdrawal")
	logger.Info(ctx, "withdrawal proposal submitted", "from", last, "till", head.ID, "burns", len(burns), "tx", tx.Hex())

	result.Tx = tx
	result.Submitted = true

	return result, nil
}
