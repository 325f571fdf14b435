package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/hexbuf"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
)

var (
	selectorProposalList = eventlog.SelectorOf("getProposalList()")
	selectorProposal     = eventlog.SelectorOf("getProposal(uint256)")
)

// proposalTransferWords is the size of one (root, dest, value, txid) tuple.
const proposalTransferWords = 4

// ContractReader combines contract calls and latest storage reads.
type ContractReader interface {
	Caller
	LatestStorageAt(ctx context.Context, contract common.Address, key common.Hash) (storageword.Word, error)
}

// Lock reads the ELock contract.
type Lock struct {
	reader  ContractReader
	address common.Address
}

// NewLock returns a reader of the ELock contract at address.
func NewLock(reader ContractReader, address common.Address) *Lock {
	return &Lock{reader: reader, address: address}
}

// Address returns the contract address.
func (l *Lock) Address() common.Address {
	return l.address
}

// ProposalKeys returns the keys of the pending withdrawal proposals.
func (l *Lock) ProposalKeys(ctx context.Context) ([]common.Hash, error) {
	out, err := l.reader.Call(ctx, l.address, selectorProposalList[:])
	if err != nil {
		return nil, fmt.Errorf("getProposalList: %w", err)
	}

	offset, err := out.Int(0)
	if err != nil {
		return nil, fmt.Errorf("getProposalList: %w", err)
	}

	n, err := out.Int(offset)
	if err != nil {
		return nil, fmt.Errorf("getProposalList: %w", err)
	}

	keys := make([]common.Hash, n)
	for i := range keys {
		w, err := out.WordAt(offset + (i+1)*hexbuf.WordSize)
		if err != nil {
			return nil, fmt.Errorf("getProposalList item %d: %w", i, err)
		}
		keys[i] = common.Hash(w)
	}

	return keys, nil
}

// Proposal loads one withdrawal proposal.
func (l *Lock) Proposal(ctx context.Context, key common.Hash) (reconcile.WithdrawalProposal, error) {
	data := append(selectorProposal[:], key.Bytes()...)

	out, err := l.reader.Call(ctx, l.address, data)
	if err != nil {
		return reconcile.WithdrawalProposal{}, fmt.Errorf("getProposal %s: %w", key.Hex(), err)
	}

	p, err := decodeProposal(out)
	if err != nil {
		return reconcile.WithdrawalProposal{}, fmt.Errorf("getProposal %s: %w", key.Hex(), err)
	}
	p.Key = key

	return p, nil
}

// WithdrawalProposals loads every pending withdrawal proposal.
func (l *Lock) WithdrawalProposals(ctx context.Context) ([]reconcile.WithdrawalProposal, error) {
	keys, err := l.ProposalKeys(ctx)
	if err != nil {
		return nil, err
	}

	proposals := make([]reconcile.WithdrawalProposal, 0, len(keys))
	for _, key := range keys {
		p, err := l.Proposal(ctx, key)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}

	return proposals, nil
}

// decodeProposal decodes (uint256 from, uint256 till, (address,address,uint256,uint256)[]).
func decodeProposal(out hexbuf.Buffer) (reconcile.WithdrawalProposal, error) {
	from, err := out.Word(0)
	if err != nil {
		return reconcile.WithdrawalProposal{}, err
	}

	till, err := out.Word(1)
	if err != nil {
		return reconcile.WithdrawalProposal{}, err
	}

	offset, err := out.Int(2 * hexbuf.WordSize)
	if err != nil {
		return reconcile.WithdrawalProposal{}, err
	}

	n, err := out.Int(offset)
	if err != nil {
		return reconcile.WithdrawalProposal{}, err
	}

	burns := make([]extract.BurnRecord, n)
	for i := range burns {
		head := offset + hexbuf.WordSize + i*proposalTransferWords*hexbuf.WordSize

		root, err := out.Address(head)
		if err != nil {
			return reconcile.WithdrawalProposal{}, fmt.Errorf("transfer %d: %w", i, err)
		}

		dest, err := out.Address(head + hexbuf.WordSize)
		if err != nil {
			return reconcile.WithdrawalProposal{}, fmt.Errorf("transfer %d: %w", i, err)
		}

		value, err := out.Uint(head + 2*hexbuf.WordSize)
		if err != nil {
			return reconcile.WithdrawalProposal{}, fmt.Errorf("transfer %d: %w", i, err)
		}

		txID, err := out.WordAt(head + 3*hexbuf.WordSize)
		if err != nil {
			return reconcile.WithdrawalProposal{}, fmt.Errorf("transfer %d: %w", i, err)
		}

		burns[i] = extract.BurnRecord{
			Dest:    dest,
			Value:   value,
			TxID:    common.Hash(txID),
			EthRoot: root,
		}
	}

	return reconcile.WithdrawalProposal{
		From:  BlockID(from),
		Till:  BlockID(till),
		Burns: burns,
	}, nil
}

// BlockID renders a GOSH block id stored as uint256: 64 lowercase hex
// characters without prefix.
func BlockID(w [hexbuf.WordSize]byte) string {
	return strings.TrimPrefix(common.Hash(w).Hex(), "0x")
}

func (l *Lock) scalar(ctx context.Context, slot uint64) (*big.Int, error) {
	w, err := l.reader.LatestStorageAt(ctx, l.address, storageword.Index(slot))
	if err != nil {
		return nil, err
	}

	return storageword.ReadScalar(w), nil
}

// Counters returns the deposit (send) and withdrawal (receive) counters.
func (l *Lock) Counters(ctx context.Context) (send, receive *big.Int, err error) {
	w, err := l.reader.LatestStorageAt(ctx, l.address, storageword.Index(storageword.SlotCounters))
	if err != nil {
		return nil, nil, err
	}

	send, receive = storageword.ReadCounters(w)
	return send, receive, nil
}

// TotalSupply returns the total supply recorded by the lock.
func (l *Lock) TotalSupply(ctx context.Context) (*big.Int, error) {
	return l.scalar(ctx, storageword.SlotTotalSupply)
}

// CollectedCommissions returns the commissions collected by the lock.
func (l *Lock) CollectedCommissions(ctx context.Context) (*big.Int, error) {
	return l.scalar(ctx, storageword.SlotCollectedCommissions)
}

// LastProcessedBlock returns the id of the last GOSH master block whose
// burns were withdrawn.
func (l *Lock) LastProcessedBlock(ctx context.Context) (string, error) {
	w, err := l.reader.LatestStorageAt(ctx, l.address, storageword.Index(storageword.SlotLastProcessedBlock))
	if err != nil {
		return "", err
	}

	return BlockID(w), nil
}
