// Package hexbuf provides a length-checked byte buffer for reading ABI words
// out of hex payloads returned by chain nodes (log data, call results, storage
// words). Every accessor validates its bounds and returns ErrOutOfRange
// instead of panicking on short or truncated input.
package hexbuf

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// WordSize is the size of an ABI word in bytes.
const WordSize = 32

var (
	// ErrInvalidHex is returned when the input is not valid hexadecimal.
	ErrInvalidHex = errors.New("invalid hex payload")

	// ErrOutOfRange is returned when a read extends past the end of the buffer.
	ErrOutOfRange = errors.New("read out of range")
)

// Buffer is a decoded byte sequence with bounds-checked word accessors.
type Buffer []byte

// Decode parses a hex string into a Buffer. The "0x" prefix is optional and
// an empty payload ("0x" or "") yields an empty Buffer.
func Decode(s string) (Buffer, error) {
	if s == "" {
		return Buffer{}, nil
	}

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	return Buffer(b), nil
}

// Len returns the buffer length in bytes.
func (b Buffer) Len() int {
	return len(b)
}

// Slice returns n bytes starting at off.
func (b Buffer) Slice(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		return nil, fmt.Errorf("%w: [%d:%d] of %d bytes", ErrOutOfRange, off, off+n, len(b))
	}

	return b[off : off+n], nil
}

// WordAt returns the 32-byte word starting at byte offset off.
func (b Buffer) WordAt(off int) ([WordSize]byte, error) {
	var w [WordSize]byte

	raw, err := b.Slice(off, WordSize)
	if err != nil {
		return w, err
	}

	copy(w[:], raw)
	return w, nil
}

// Word returns the i-th 32-byte slot.
func (b Buffer) Word(i int) ([WordSize]byte, error) {
	if i < 0 || i > math.MaxInt/WordSize {
		return [WordSize]byte{}, fmt.Errorf("%w: slot %d", ErrOutOfRange, i)
	}

	return b.WordAt(i * WordSize)
}

// Uint reads the word at byte offset off as an unsigned big-endian integer.
func (b Buffer) Uint(off int) (*big.Int, error) {
	w, err := b.WordAt(off)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(w[:]), nil
}

// Int reads the word at byte offset off as a non-negative int, for use as a
// dynamic offset or length. Values that do not fit the buffer are rejected.
func (b Buffer) Int(off int) (int, error) {
	v, err := b.Uint(off)
	if err != nil {
		return 0, err
	}

	if !v.IsInt64() || v.Int64() > int64(len(b)) {
		return 0, fmt.Errorf("%w: offset or length %s exceeds %d bytes", ErrOutOfRange, v, len(b))
	}

	return int(v.Int64()), nil
}

// Address reads the low 20 bytes of the word at byte offset off.
func (b Buffer) Address(off int) (common.Address, error) {
	w, err := b.WordAt(off)
	if err != nil {
		return common.Address{}, err
	}

	return common.BytesToAddress(w[WordSize-common.AddressLength:]), nil
}

// Bytes reads an ABI-encoded dynamic byte string whose head (the offset
// pointer) is located at byte offset head. Offsets are relative to base.
func (b Buffer) Bytes(base, head int) ([]byte, error) {
	rel, err := b.Int(base + head)
	if err != nil {
		return nil, err
	}

	size, err := b.Int(base + rel)
	if err != nil {
		return nil, err
	}

	return b.Slice(base+rel+WordSize, size)
}

// PadLeft returns data left-padded with zeros to a full word. Inputs longer
// than a word keep their low 32 bytes.
func PadLeft(data []byte) [WordSize]byte {
	var w [WordSize]byte
	if len(data) > WordSize {
		data = data[len(data)-WordSize:]
	}

	copy(w[WordSize-len(data):], data)
	return w
}
