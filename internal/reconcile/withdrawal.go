package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
)

func (e *engine) CheckWithdrawal(ctx context.Context, p WithdrawalProposal) (Verdict, error) {
	ctx, span := e.startSpan(ctx, "reconcile.CheckWithdrawal", p.Key.Hex())
	ctx = logger.Derive(ctx, "direction", "withdrawal", "proposal", p.Key.Hex())

	v, err := e.checkWithdrawal(ctx, p)
	return finish(span, v, err)
}

func (e *engine) checkWithdrawal(ctx context.Context, p WithdrawalProposal) (Verdict, error) {
	start, v, err := e.masterSeqNo(ctx, p.Key.Hex(), p.From)
	if err != nil || v != nil {
		return deref(v), err
	}

	end, v, err := e.masterSeqNo(ctx, p.Key.Hex(), p.Till)
	if err != nil || v != nil {
		return deref(v), err
	}

	if start >= end {
		return reject(ReasonInvalidRange, StateHeadersVerified, "from seq no %d is not before till seq no %d", start, end), nil
	}

	if e.exceedsSpan(start, end) {
		return reject(ReasonInvalidRange, StateHeadersVerified, "span %d exceeds maximum %d", end-start, e.cfg.maxProposalSpan), nil
	}

	burns, err := e.Burns(ctx, start, end)
	if err != nil {
		if errors.Is(err, extract.ErrMalformedRecord) {
			return reject(ReasonMalformedRecord, StateFactsReDerived, "%v", err), nil
		}
		return Verdict{}, fmt.Errorf("proposal %s: %w", p.Key.Hex(), err)
	}

	logger.Debug(ctx, "burns re-derived", "start", start, "end", end, "burns", len(burns))

	if len(burns) != len(p.Burns) {
		return reject(ReasonCountMismatch, StateCounterDeltaComputed, "found %d burns, proposal claims %d", len(burns), len(p.Burns)), nil
	}

	if i := extract.EqualBurns(burns, p.Burns); i >= 0 {
		return reject(ReasonFactMismatch, StateFactsReDerived, "burn %d differs: found %s, proposal claims %s", i, burns[i], p.Burns[i]), nil
	}

	return accept(), nil
}

// Burns returns the burns received by the receiver contract in master
// blocks [start, end), in chain order. Undecodable messages are skipped; a
// malformed burn fails with extract.ErrMalformedRecord.
func (e *engine) Burns(ctx context.Context, start, end uint64) ([]extract.BurnRecord, error) {
	messages, err := e.deps.Target.InboundMessages(ctx, e.cfg.receiver, start, end)
	if err != nil {
		return nil, fmt.Errorf("query messages over [%d, %d): %w", start, end, err)
	}

	decoded, err := gather(ctx, messages, e.cfg.concurrency, e.decodeMessage, func(err error) bool {
		return errors.Is(err, ErrUndecodable)
	})
	if err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	burns, err := extract.ExtractBurns(decoded, e.cfg.burnFunction)
	if err != nil {
		return nil, fmt.Errorf("extract burns: %w", err)
	}

	return burns, nil
}

func (e *engine) masterSeqNo(ctx context.Context, key, blockID string) (uint64, *Verdict, error) {
	seqNo, err := e.deps.Target.MasterSeqNo(ctx, blockID)
	if err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			return 0, rejectPtr(ReasonUnresolvedBlock, StateStart, "master block %s not found", blockID), nil
		}
		return 0, nil, fmt.Errorf("proposal %s: resolve master block %s: %w", key, blockID, err)
	}

	return seqNo, nil, nil
}

func (e *engine) decodeMessage(ctx context.Context, msg Message) (extract.DecodedMessage, error) {
	name, args, err := e.deps.Decoder.DecodeBody(ctx, msg.Body)
	if err != nil {
		return extract.DecodedMessage{}, err
	}

	return extract.DecodedMessage{
		ID:      msg.ID,
		TxID:    msg.TxID,
		BlockID: msg.BlockID,
		Lt:      msg.Lt,
		Name:    name,
		Args:    args,
	}, nil
}
