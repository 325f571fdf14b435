// Package header rebuilds the canonical RLP serialization of an Ethereum block
// header from the fields reported by a node and checks that its Keccak-256
// digest matches the hash the node claims for the block.
//
// Only the pre-Cancun layouts are supported: the 15 legacy fields, plus the
// London base fee (16 fields), plus the Shanghai withdrawals root (17 fields).
// Headers that carry later fork fields are refused with ErrUnsupportedVariant
// because their reported hash covers fields this package does not encode.
package header

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

const (
	// LegacyFieldCount is the number of fields of a pre-London header.
	LegacyFieldCount = 15

	// LondonFieldCount adds the base fee.
	LondonFieldCount = 16

	// ShanghaiFieldCount adds the withdrawals root.
	ShanghaiFieldCount = 17
)

var (
	// ErrMissingField is returned when a field that is mandatory for the
	// serialization is absent from the header.
	ErrMissingField = errors.New("header field missing")

	// ErrHashMismatch is returned when the recomputed digest differs from
	// the self-reported block hash.
	ErrHashMismatch = errors.New("block hash mismatch")

	// ErrUnsupportedVariant is returned for headers of a fork after
	// Shanghai.
	ErrUnsupportedVariant = errors.New("unsupported header variant")
)

// BlockHeader holds the fields of an Ethereum block header as reported by a
// node. LogsBloom, MixHash and Nonce are pointers because transports may omit
// them; they must be present for the header to be encoded.
type BlockHeader struct {
	ParentHash      common.Hash
	OmmersHash      common.Hash
	Author          common.Address
	StateRoot       common.Hash
	TxRoot          common.Hash
	ReceiptsRoot    common.Hash
	LogsBloom       *types.Bloom
	Difficulty      *big.Int
	Number          *big.Int
	GasLimit        uint64
	GasUsed         uint64
	Timestamp       uint64
	ExtraData       []byte
	MixHash         *common.Hash
	Nonce           *types.BlockNonce
	BaseFee         *big.Int
	WithdrawalsRoot *common.Hash

	// LaterForkFields names the post-Shanghai fields the node reported,
	// such as blobGasUsed. A header listing any cannot be encoded.
	LaterForkFields []string

	// Hash is the hash claimed by the node for this header.
	Hash common.Hash
}

// FieldCount returns how many fields Encode emits for h.
func FieldCount(h BlockHeader) int {
	switch {
	case h.BaseFee == nil:
		return LegacyFieldCount
	case h.WithdrawalsRoot == nil:
		return LondonFieldCount
	default:
		return ShanghaiFieldCount
	}
}

// fields returns the ordered list of values to serialize.
func fields(h BlockHeader) ([]any, error) {
	if len(h.LaterForkFields) > 0 {
		return nil, fmt.Errorf("%w: block %v carries %s", ErrUnsupportedVariant, h.Number, strings.Join(h.LaterForkFields, ", "))
	}

	var missing []error
	if h.LogsBloom == nil {
		missing = append(missing, fmt.Errorf("%w: logsBloom", ErrMissingField))
	}
	if h.MixHash == nil {
		missing = append(missing, fmt.Errorf("%w: mixHash", ErrMissingField))
	}
	if h.Nonce == nil {
		missing = append(missing, fmt.Errorf("%w: nonce", ErrMissingField))
	}
	if h.Difficulty == nil {
		missing = append(missing, fmt.Errorf("%w: difficulty", ErrMissingField))
	}
	if h.Number == nil {
		missing = append(missing, fmt.Errorf("%w: number", ErrMissingField))
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	list := make([]any, 0, ShanghaiFieldCount)
	list = append(list,
		h.ParentHash,
		h.OmmersHash,
		h.Author,
		h.StateRoot,
		h.TxRoot,
		h.ReceiptsRoot,
		*h.LogsBloom,
		h.Difficulty,
		h.Number,
		h.GasLimit,
		h.GasUsed,
		h.Timestamp,
		h.ExtraData,
		*h.MixHash,
		*h.Nonce,
	)

	// The withdrawals root is only meaningful after London, so it is never
	// emitted without a base fee.
	if h.BaseFee != nil {
		list = append(list, h.BaseFee)
		if h.WithdrawalsRoot != nil {
			list = append(list, *h.WithdrawalsRoot)
		}
	}

	return list, nil
}

// Encode returns the canonical RLP serialization of h.
func Encode(h BlockHeader) ([]byte, error) {
	list, err := fields(h)
	if err != nil {
		return nil, err
	}

	return rlp.EncodeToBytes(list)
}

// Hash returns the Keccak-256 digest of the canonical serialization of h.
func Hash(h BlockHeader) (common.Hash, error) {
	encoded, err := Encode(h)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(encoded), nil
}

// Verify recomputes the digest of h and compares it with the reported hash.
// A mismatch is reported as ErrHashMismatch.
func Verify(h BlockHeader) error {
	computed, err := Hash(h)
	if err != nil {
		return err
	}

	if computed != h.Hash {
		return fmt.Errorf("%w: block %v computed %s, reported %s", ErrHashMismatch, h.Number, computed.Hex(), h.Hash.Hex())
	}

	return nil
}
