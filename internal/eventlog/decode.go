// Package eventlog decodes raw EVM event logs and call data into named,
// string-valued arguments using a static signature table. Only the argument
// types used by the bridge contracts are supported: address, uintN and
// string. Values are rendered as canonical strings (lowercase hex addresses,
// decimal integers, raw text) so callers choose the numeric type.
package eventlog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/hexbuf"
)

var (
	// ErrUnrecognized is returned for logs without topics or whose first
	// topic is not in the signature table. Callers skip such logs.
	ErrUnrecognized = errors.New("unrecognized event")

	// ErrUnsupportedType is returned when a declared parameter type has no
	// decode rule.
	ErrUnsupportedType = errors.New("unsupported parameter type")

	// ErrMalformed is returned when a log or call payload does not match its
	// declaration (missing topics, truncated data, invalid UTF-8).
	ErrMalformed = errors.New("malformed payload")
)

// RawLog is a log entry as returned by eth_getLogs.
type RawLog struct {
	Address     common.Address `json:"address"`
	Topics      []common.Hash  `json:"topics"`
	Data        hexutil.Bytes  `json:"data"`
	BlockNumber hexutil.Uint64 `json:"blockNumber"`
	BlockHash   common.Hash    `json:"blockHash"`
	TxHash      common.Hash    `json:"transactionHash"`
	TxIndex     hexutil.Uint   `json:"transactionIndex"`
	LogIndex    hexutil.Uint   `json:"logIndex"`
	Removed     bool           `json:"removed"`
}

// DecodedEvent is a decoded log or call. BlockNumber and LogIndex locate it in
// chain order; they are zero for decoded calls.
type DecodedEvent struct {
	Name        string
	Params      map[string]string
	TxHash      common.Hash
	BlockNumber uint64
	LogIndex    uint
}

// Decode decodes raw against table. Indexed parameters consume topics after
// topic[0] in order; every other parameter reads the data slot given by its
// position among the non-indexed parameters.
func Decode(raw RawLog, table Table) (DecodedEvent, error) {
	if len(raw.Topics) == 0 {
		return DecodedEvent{}, fmt.Errorf("%w: log %d of tx %s has no topics", ErrUnrecognized, raw.LogIndex, raw.TxHash.Hex())
	}

	entry, ok := table.Event(raw.Topics[0])
	if !ok {
		return DecodedEvent{}, fmt.Errorf("%w: topic %s", ErrUnrecognized, raw.Topics[0].Hex())
	}

	data := hexbuf.Buffer(raw.Data)
	params := make(map[string]string, len(entry.Params))
	nextTopic, position := 1, 0

	for _, p := range entry.Params {
		var (
			value string
			err   error
		)

		if p.Indexed {
			if nextTopic >= len(raw.Topics) {
				return DecodedEvent{}, fmt.Errorf("%w: %s.%s: no topic left for indexed parameter", ErrMalformed, entry.Name, p.Name)
			}

			value, err = decodeTopic(p.Type, raw.Topics[nextTopic])
			nextTopic++
		} else {
			value, err = decodeSlot(p.Type, data, 0, position)
			position++
		}

		if err != nil {
			return DecodedEvent{}, fmt.Errorf("%s.%s: %w", entry.Name, p.Name, err)
		}

		params[p.Name] = value
	}

	return DecodedEvent{
		Name:        entry.Name,
		Params:      params,
		TxHash:      raw.TxHash,
		BlockNumber: uint64(raw.BlockNumber),
		LogIndex:    uint(raw.LogIndex),
	}, nil
}

// DecodeCall decodes transaction input against the function selectors of
// table. Arguments follow the selector and use the same slot rules as
// non-indexed event parameters.
func DecodeCall(input []byte, txHash common.Hash, table Table) (DecodedEvent, error) {
	if len(input) < len(Selector{}) {
		return DecodedEvent{}, fmt.Errorf("%w: input of %d bytes has no selector", ErrUnrecognized, len(input))
	}

	var sel Selector
	copy(sel[:], input)

	entry, ok := table.Call(sel)
	if !ok {
		return DecodedEvent{}, fmt.Errorf("%w: selector %s", ErrUnrecognized, hexutil.Encode(sel[:]))
	}

	args := hexbuf.Buffer(input[len(sel):])
	params := make(map[string]string, len(entry.Params))

	for i, p := range entry.Params {
		value, err := decodeSlot(p.Type, args, 0, i)
		if err != nil {
			return DecodedEvent{}, fmt.Errorf("%s.%s: %w", entry.Name, p.Name, err)
		}

		params[p.Name] = value
	}

	return DecodedEvent{Name: entry.Name, Params: params, TxHash: txHash}, nil
}

// decodeTopic decodes an indexed parameter. Dynamic types are stored as their
// hash in topics and cannot be recovered.
func decodeTopic(typ string, topic common.Hash) (string, error) {
	switch {
	case typ == "address":
		return encodeAddress(common.BytesToAddress(topic[common.HashLength-common.AddressLength:])), nil
	case isUint(typ):
		return topic.Big().String(), nil
	default:
		return "", fmt.Errorf("%w: indexed %q", ErrUnsupportedType, typ)
	}
}

// decodeSlot decodes the non-indexed parameter at the given slot position of
// data. Offsets of dynamic values are relative to base.
func decodeSlot(typ string, data hexbuf.Buffer, base, position int) (string, error) {
	head := base + position*hexbuf.WordSize

	switch {
	case typ == "address":
		addr, err := data.Address(head)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return encodeAddress(addr), nil

	case isUint(typ):
		v, err := data.Uint(head)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return v.String(), nil

	case typ == "string":
		return DecodeString(data, base, head-base)

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
	}
}

// DecodeString reads an ABI dynamic string whose offset word sits at byte
// offset head. The offset is relative to base; at the offset, one word holds
// the byte length followed by the UTF-8 payload.
func DecodeString(data hexbuf.Buffer, base, head int) (string, error) {
	raw, err := data.Bytes(base, head)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: string is not valid UTF-8", ErrMalformed)
	}

	return string(raw), nil
}

// isUint reports whether typ is uint or uintN with N a multiple of 8 up to 256.
func isUint(typ string) bool {
	if typ == "uint" {
		return true
	}

	bits, ok := strings.CutPrefix(typ, "uint")
	if !ok {
		return false
	}

	n, err := strconv.Atoi(bits)
	return err == nil && n > 0 && n <= 256 && n%8 == 0
}

func encodeAddress(addr common.Address) string {
	return hexutil.Encode(addr.Bytes())
}
