// Package extract turns decoded chain data into normalized bridge records:
// deposits locked in the ELock contract on Ethereum and burns sent to the
// receiver contract on GOSH.
package extract

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/hexbuf"
)

var (
	// ErrMissingField is returned when a recognized event lacks a field the
	// record requires. It means the signature table and the deployed
	// contract disagree.
	ErrMissingField = errors.New("recognized event is missing a required field")

	// ErrMalformedRecord is returned when a single record carries a value
	// that cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
)

// Native asset descriptor, used for the zero token address.
const (
	NativeName     = "geth"
	NativeSymbol   = "gth"
	NativeDecimals = 18
)

// TokenRoot describes a bridged asset.
type TokenRoot struct {
	Name     string
	Symbol   string
	Decimals uint8
	EthRoot  common.Address
}

// IsNative reports whether the root is the native asset sentinel.
func (r TokenRoot) IsNative() bool {
	return r.EthRoot == (common.Address{})
}

// NativeRoot returns the descriptor of the native asset.
func NativeRoot() TokenRoot {
	return TokenRoot{
		Name:     NativeName,
		Symbol:   NativeSymbol,
		Decimals: NativeDecimals,
	}
}

// TransferRecord is a deposit credited to a GOSH public key.
type TransferRecord struct {
	Pubkey common.Hash
	Value  *big.Int
	Hash   common.Hash
	Root   TokenRoot
}

// Equal reports whether both records are identical field by field.
func (r TransferRecord) Equal(o TransferRecord) bool {
	return r.Pubkey == o.Pubkey &&
		r.Hash == o.Hash &&
		r.Root == o.Root &&
		equalInt(r.Value, o.Value)
}

func (r TransferRecord) String() string {
	return fmt.Sprintf("{pubkey:%s value:%v hash:%s root:%s}", r.Pubkey.Hex(), r.Value, r.Hash.Hex(), r.Root.EthRoot.Hex())
}

// BurnRecord is a withdrawal requested on GOSH.
type BurnRecord struct {
	Dest    common.Address
	Value   *big.Int
	TxID    common.Hash
	EthRoot common.Address
}

// Equal reports whether both records are identical field by field.
func (r BurnRecord) Equal(o BurnRecord) bool {
	return r.Dest == o.Dest &&
		r.TxID == o.TxID &&
		r.EthRoot == o.EthRoot &&
		equalInt(r.Value, o.Value)
}

func (r BurnRecord) String() string {
	return fmt.Sprintf("{dest:%s value:%v tx:%s root:%s}", r.Dest.Hex(), r.Value, r.TxID.Hex(), r.EthRoot.Hex())
}

// EqualTransfers compares two ordered transfer lists. It returns the index of
// the first difference, or -1 when the lists are equal.
func EqualTransfers(a, b []TransferRecord) int {
	return firstDiff(a, b, TransferRecord.Equal)
}

// EqualBurns compares two ordered burn lists. It returns the index of the
// first difference, or -1 when the lists are equal.
func EqualBurns(a, b []BurnRecord) int {
	return firstDiff(a, b, BurnRecord.Equal)
}

func firstDiff[T any](a, b []T, eq func(T, T) bool) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !eq(a[i], b[i]) {
			return i
		}
	}

	if len(a) != len(b) {
		return n
	}

	return -1
}

func equalInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Cmp(b) == 0
}

// ParseUint parses an unsigned integer rendered in decimal, or in hex with a
// "0x" prefix. Empty, signed and oversized inputs are rejected.
func ParseUint(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)

	base, digits := 10, s
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		base, digits = 16, rest
	}

	if digits == "" || strings.ContainsAny(digits[:1], "+-") {
		return nil, fmt.Errorf("%w: %q is not an unsigned integer", ErrMalformedRecord, s)
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an unsigned integer", ErrMalformedRecord, s)
	}

	if v.BitLen() > 256 {
		return nil, fmt.Errorf("%w: %q overflows 256 bits", ErrMalformedRecord, s)
	}

	return v, nil
}

// StripAddressPadding returns the address held in a 32-byte hex word such as
// "0x000000000000000000000000<40 hex chars>". The 12 bytes of padding must be
// zero.
func StripAddressPadding(s string) (common.Address, error) {
	word, err := hexbuf.Decode(s)
	if err != nil || word.Len() != hexbuf.WordSize {
		return common.Address{}, fmt.Errorf("%w: %q is not a padded address", ErrMalformedRecord, s)
	}

	padding, _ := word.Slice(0, hexbuf.WordSize-common.AddressLength)
	for _, b := range padding {
		if b != 0 {
			return common.Address{}, fmt.Errorf("%w: %q has non-zero padding", ErrMalformedRecord, s)
		}
	}

	return word.Address(0)
}
