package storageword

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Storage layout of the ELock contract.
const (
	SlotTotalSupply          uint64 = 0x00
	SlotCounters             uint64 = 0x01
	SlotLastProcessedBlock   uint64 = 0x03
	SlotVotes                uint64 = 0x0D
	SlotCollectedCommissions uint64 = 0x13
)

// Index returns the storage key of a plain slot index.
func Index(slot uint64) common.Hash {
	return common.BigToHash(new(big.Int).SetUint64(slot))
}

// MappingKey returns the storage key of entry key inside the mapping rooted
// at slot: keccak256(key ++ slot).
func MappingKey(key, slot common.Hash) common.Hash {
	return crypto.Keccak256Hash(key.Bytes(), slot.Bytes())
}

// PadAddress left-pads an address to a full storage key.
func PadAddress(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}
