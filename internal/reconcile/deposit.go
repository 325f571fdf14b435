package reconcile

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
)

// blockRange is the verified output of the first reconciliation steps.
type blockRange struct {
	from, till uint64
	expected   uint64
}

func (e *engine) CheckDeposit(ctx context.Context, p DepositProposal) (Verdict, error) {
	ctx, span := e.startSpan(ctx, "reconcile.CheckDeposit", p.Key)
	ctx = logger.Derive(ctx, "direction", "deposit", "proposal", p.Key)

	v, err := e.checkDeposit(ctx, p)
	return finish(span, v, err)
}

func (e *engine) checkDeposit(ctx context.Context, p DepositProposal) (Verdict, error) {
	r, v, err := e.resolveDepositRange(ctx, p)
	if err != nil || v != nil {
		return deref(v), err
	}

	logs, err := e.scanLogs(ctx, r.from+1, r.till)
	if err != nil {
		return Verdict{}, fmt.Errorf("scan deposits of proposal %s over (%d, %d]: %w", p.Key, r.from, r.till, err)
	}

	records, err := extract.ExtractDeposits(ctx, logs, e.deps.Table, e.deps.Resolver, extract.WithResolveLimit(e.cfg.concurrency))
	if err != nil {
		if errors.Is(err, extract.ErrMalformedRecord) {
			return reject(ReasonMalformedRecord, StateFactsReDerived, "%v", err), nil
		}
		return Verdict{}, fmt.Errorf("extract deposits of proposal %s over (%d, %d]: %w", p.Key, r.from, r.till, err)
	}

	return compareTransfers(records, p.Transfers), nil
}

func (e *engine) CheckCallDeposit(ctx context.Context, p DepositProposal) (Verdict, error) {
	ctx, span := e.startSpan(ctx, "reconcile.CheckCallDeposit", p.Key)
	ctx = logger.Derive(ctx, "direction", "deposit", "mode", "call", "proposal", p.Key)

	v, err := e.checkCallDeposit(ctx, p)
	return finish(span, v, err)
}

// errNotExecuted marks a claimed call that is unmined or reverted.
var errNotExecuted = errors.New("transaction not executed")

func (e *engine) checkCallDeposit(ctx context.Context, p DepositProposal) (Verdict, error) {
	r, v, err := e.resolveDepositRange(ctx, p)
	if err != nil || v != nil {
		return deref(v), err
	}

	hashes := make([]common.Hash, len(p.Transfers))
	seen := make(map[common.Hash]struct{}, len(p.Transfers))
	for i, t := range p.Transfers {
		if _, ok := seen[t.Hash]; ok {
			return reject(ReasonFactMismatch, StateCounterDeltaComputed, "transaction %s claimed more than once", t.Hash.Hex()), nil
		}
		seen[t.Hash] = struct{}{}
		hashes[i] = t.Hash
	}

	txs, err := gather(ctx, hashes, e.cfg.concurrency, e.deps.Source.TransactionByHash, func(err error) bool {
		return errors.Is(err, ErrTxNotFound)
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("fetch deposit calls of proposal %s: %w", p.Key, err)
	}

	type located struct {
		record        extract.TransferRecord
		block, txIndx uint64
	}

	candidates := make([]located, 0, len(txs))
	for _, tx := range txs {
		if tx.BlockNumber == nil {
			continue
		}

		block := uint64(*tx.BlockNumber)
		if block <= r.from || block > r.till {
			logger.Warn(ctx, "deposit call outside proposal range", "tx", tx.Hash.Hex(), "block", block)
			continue
		}

		record, err := extract.ExtractCallTransfer(tx, e.deps.Table, e.cfg.lock, e.cfg.depositFunction)
		if err != nil {
			if errors.Is(err, extract.ErrNotApplicable) {
				continue
			}
			if errors.Is(err, extract.ErrMalformedRecord) {
				return reject(ReasonMalformedRecord, StateFactsReDerived, "%v", err), nil
			}
			return Verdict{}, fmt.Errorf("decode deposit call %s of proposal %s: %w", tx.Hash.Hex(), p.Key, err)
		}

		var idx uint64
		if tx.TxIndex != nil {
			idx = uint64(*tx.TxIndex)
		}
		candidates = append(candidates, located{record: record, block: block, txIndx: idx})
	}

	found, err := gather(ctx, candidates, e.cfg.concurrency, func(ctx context.Context, l located) (located, error) {
		receipt, err := e.deps.Source.TransactionReceipt(ctx, l.record.Hash)
		if err != nil {
			return located{}, err
		}

		if receipt == nil || uint64(receipt.Status) != types.ReceiptStatusSuccessful {
			logger.Warn(ctx, "deposit call not executed", "tx", l.record.Hash.Hex(), "block", l.block)
			return located{}, errNotExecuted
		}

		return l, nil
	}, func(err error) bool {
		return errors.Is(err, errNotExecuted)
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("fetch deposit call receipts of proposal %s: %w", p.Key, err)
	}

	slices.SortStableFunc(found, func(a, b located) int {
		return cmp.Or(cmp.Compare(a.block, b.block), cmp.Compare(a.txIndx, b.txIndx))
	})

	records := make([]extract.TransferRecord, len(found))
	for i, f := range found {
		records[i] = f.record
	}

	return compareTransfers(records, p.Transfers), nil
}

// Deposits returns the deposits locked in blocks (from, till], in chain
// order. It reads the counter delta first and scans no logs when it is zero.
func (e *engine) Deposits(ctx context.Context, from, till uint64) ([]extract.TransferRecord, error) {
	fromSend, err := e.sendCounter(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("read counters at %d: %w", from, err)
	}

	tillSend, err := e.sendCounter(ctx, till)
	if err != nil {
		return nil, fmt.Errorf("read counters at %d: %w", till, err)
	}

	delta := new(big.Int).Sub(tillSend, fromSend)
	switch delta.Sign() {
	case -1:
		return nil, fmt.Errorf("%w: %s at %d, %s at %d", ErrCounterRegression, fromSend, from, tillSend, till)
	case 0:
		return nil, nil
	}

	logs, err := e.scanLogs(ctx, from+1, till)
	if err != nil {
		return nil, fmt.Errorf("scan deposits over (%d, %d]: %w", from, till, err)
	}

	records, err := extract.ExtractDeposits(ctx, logs, e.deps.Table, e.deps.Resolver, extract.WithResolveLimit(e.cfg.concurrency))
	if err != nil {
		return nil, fmt.Errorf("extract deposits over (%d, %d]: %w", from, till, err)
	}

	if !delta.IsUint64() || uint64(len(records)) != delta.Uint64() {
		return nil, fmt.Errorf("%w: found %d, counters moved by %s", ErrCountMismatch, len(records), delta)
	}

	return records, nil
}

// resolveDepositRange runs the steps shared by both deposit modes. A non-nil
// Verdict is a rejection.
func (e *engine) resolveDepositRange(ctx context.Context, p DepositProposal) (blockRange, *Verdict, error) {
	from, v, err := e.verifiedHeader(ctx, p.Key, p.From)
	if err != nil || v != nil {
		return blockRange{}, v, err
	}

	till, v, err := e.verifiedHeader(ctx, p.Key, p.Till)
	if err != nil || v != nil {
		return blockRange{}, v, err
	}

	if from.Number == nil || till.Number == nil {
		return blockRange{}, nil, fmt.Errorf("proposal %s: %w: number", p.Key, header.ErrMissingField)
	}

	if !from.Number.IsUint64() || !till.Number.IsUint64() {
		return blockRange{}, rejectPtr(ReasonInvalidRange, StateHeadersVerified, "block numbers %s..%s out of range", from.Number, till.Number), nil
	}

	r := blockRange{from: from.Number.Uint64(), till: till.Number.Uint64()}
	if r.from >= r.till {
		return blockRange{}, rejectPtr(ReasonInvalidRange, StateHeadersVerified, "from block %d is not before till block %d", r.from, r.till), nil
	}

	if e.exceedsSpan(r.from, r.till) {
		return blockRange{}, rejectPtr(ReasonInvalidRange, StateHeadersVerified, "span %d exceeds maximum %d", r.till-r.from, e.cfg.maxProposalSpan), nil
	}

	fromSend, err := e.sendCounter(ctx, r.from)
	if err != nil {
		return blockRange{}, nil, fmt.Errorf("proposal %s: read counters at %d: %w", p.Key, r.from, err)
	}

	tillSend, err := e.sendCounter(ctx, r.till)
	if err != nil {
		return blockRange{}, nil, fmt.Errorf("proposal %s: read counters at %d: %w", p.Key, r.till, err)
	}

	delta := new(big.Int).Sub(tillSend, fromSend)
	if delta.Sign() < 0 {
		return blockRange{}, nil, fmt.Errorf("proposal %s: %w: %s at %d, %s at %d", p.Key, ErrCounterRegression, fromSend, r.from, tillSend, r.till)
	}

	claimed := big.NewInt(int64(len(p.Transfers)))
	if delta.Cmp(claimed) != 0 {
		return blockRange{}, rejectPtr(ReasonCountMismatch, StateCounterDeltaComputed, "counter delta %s, proposal claims %d", delta, len(p.Transfers)), nil
	}

	r.expected = delta.Uint64()
	logger.Debug(ctx, "deposit range verified", "from", r.from, "till", r.till, "expected", r.expected)

	return r, nil, nil
}

// verifiedHeader resolves hash and checks that the header it names hashes
// back to it.
func (e *engine) verifiedHeader(ctx context.Context, key string, hash common.Hash) (header.BlockHeader, *Verdict, error) {
	h, err := e.deps.Source.HeaderByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			return header.BlockHeader{}, rejectPtr(ReasonUnresolvedBlock, StateStart, "block %s not found", hash.Hex()), nil
		}
		return header.BlockHeader{}, nil, fmt.Errorf("proposal %s: fetch block %s: %w", key, hash.Hex(), err)
	}

	// The node may answer with a different block than requested.
	h.Hash = hash
	if err := header.Verify(h); err != nil {
		return header.BlockHeader{}, nil, fmt.Errorf("proposal %s: block %s: %w", key, hash.Hex(), err)
	}

	return h, nil, nil
}

func (e *engine) sendCounter(ctx context.Context, block uint64) (*big.Int, error) {
	word, err := e.deps.Source.StorageAt(ctx, e.cfg.lock, storageword.Index(storageword.SlotCounters), block)
	if err != nil {
		return nil, err
	}

	send, _ := storageword.ReadCounters(word)
	return send, nil
}

// scanLogs fetches the ELock deposit logs of [first, last] in chunks of at
// most maxBlocksPerRequest blocks and returns them sorted by block number
// and log index.
func (e *engine) scanLogs(ctx context.Context, first, last uint64) ([]eventlog.RawLog, error) {
	topic, ok := e.deps.Table.Topic(extract.DepositEvent)
	if !ok {
		return nil, fmt.Errorf("%w: no %s event", eventlog.ErrInvalidTable, extract.DepositEvent)
	}

	var filters []LogFilter
	for start := first; start <= last; start += e.cfg.maxBlocksPerRequest {
		end := min(start+e.cfg.maxBlocksPerRequest-1, last)
		filters = append(filters, LogFilter{
			Address:   e.cfg.lock,
			Topic:     topic,
			FromBlock: start,
			ToBlock:   end,
		})

		if end == last {
			break
		}
	}

	chunks, err := gather(ctx, filters, e.cfg.concurrency, e.deps.Source.Logs, nil)
	if err != nil {
		return nil, err
	}

	logs := slices.Concat(chunks...)
	slices.SortStableFunc(logs, func(a, b eventlog.RawLog) int {
		return cmp.Or(cmp.Compare(a.BlockNumber, b.BlockNumber), cmp.Compare(a.LogIndex, b.LogIndex))
	})

	return logs, nil
}

func compareTransfers(derived, claimed []extract.TransferRecord) Verdict {
	if len(derived) != len(claimed) {
		return reject(ReasonFactMismatch, StateFactsReDerived, "found %d transfers, proposal claims %d", len(derived), len(claimed))
	}

	if i := extract.EqualTransfers(derived, claimed); i >= 0 {
		return reject(ReasonFactMismatch, StateFactsReDerived, "transfer %d differs: found %s, proposal claims %s", i, derived[i], claimed[i])
	}

	return accept()
}

func rejectPtr(reason Reason, stage State, format string, args ...any) *Verdict {
	v := reject(reason, stage, format, args...)
	return &v
}

func deref(v *Verdict) Verdict {
	if v == nil {
		return Verdict{}
	}
	return *v
}
