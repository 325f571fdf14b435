// Package votegate tells whether a validator has already voted for an ELock
// withdrawal proposal.
package votegate

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
)

// StorageReader reads a storage word at the latest block.
type StorageReader interface {
	LatestStorageAt(ctx context.Context, contract common.Address, key common.Hash) (storageword.Word, error)
}

// Gate answers vote queries against one lock contract.
type Gate interface {
	HasVoted(ctx context.Context, proposalKey common.Hash, validator common.Address) (bool, error)
}

type gate struct {
	reader StorageReader
	lock   common.Address
}

var _ Gate = (*gate)(nil)

// New returns a Gate reading the votes mapping of lock.
func New(reader StorageReader, lock common.Address) *gate {
	return &gate{reader: reader, lock: lock}
}

// VoteSlot returns the storage key of votes[proposalKey][validator].
func VoteSlot(proposalKey common.Hash, validator common.Address) common.Hash {
	inner := storageword.MappingKey(proposalKey, storageword.Index(storageword.SlotVotes))
	return storageword.MappingKey(storageword.PadAddress(validator), inner)
}

// HasVoted reports whether the vote slot of validator holds a non-zero word.
func (g *gate) HasVoted(ctx context.Context, proposalKey common.Hash, validator common.Address) (bool, error) {
	word, err := g.reader.LatestStorageAt(ctx, g.lock, VoteSlot(proposalKey, validator))
	if err != nil {
		return false, fmt.Errorf("read vote of %s on %s: %w", validator.Hex(), proposalKey.Hex(), err)
	}

	return !word.IsZero(), nil
}
