// Package storageword decodes 32-byte EVM storage words read from the ELock
// contract and computes the slot addresses used to read them.
package storageword

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/hexbuf"
)

// Size is the length of a storage word in bytes.
const Size = hexbuf.WordSize

// counterHalf is the width of each packed counter.
const counterHalf = Size / 2

// ErrMalformedWord is returned when a storage read does not yield exactly one
// 32-byte word.
var ErrMalformedWord = errors.New("malformed storage word")

// Word is a single 32-byte storage value.
type Word [Size]byte

// FromBytes builds a Word from exactly 32 bytes.
func FromBytes(b []byte) (Word, error) {
	var w Word
	if len(b) != Size {
		return w, fmt.Errorf("%w: got %d bytes", ErrMalformedWord, len(b))
	}

	copy(w[:], b)
	return w, nil
}

// FromHex builds a Word from a hex string carrying exactly 32 bytes, as
// returned by eth_getStorageAt.
func FromHex(s string) (Word, error) {
	b, err := hexbuf.Decode(s)
	if err != nil {
		return Word{}, fmt.Errorf("%w: %v", ErrMalformedWord, err)
	}

	return FromBytes(b)
}

// IsZero reports whether every byte of the word is zero.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Hash returns the word as a common.Hash.
func (w Word) Hash() common.Hash {
	return common.Hash(w)
}

// ReadCounters splits a packed counters word. The high half (bytes 0..16)
// holds the receive counter and the low half (bytes 16..32) holds the send
// counter, each an unsigned big-endian integer.
func ReadCounters(w Word) (send, receive *big.Int) {
	receive = new(big.Int).SetBytes(w[:counterHalf])
	send = new(big.Int).SetBytes(w[counterHalf:])
	return send, receive
}

// ReadScalar interprets the whole word as an unsigned big-endian integer.
func ReadScalar(w Word) *big.Int {
	return new(big.Int).SetBytes(w[:])
}
