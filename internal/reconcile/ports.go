package reconcile

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
)

var (
	// ErrBlockNotFound is returned by chain readers when a block identifier
	// does not resolve to a known block.
	ErrBlockNotFound = errors.New("block not found")

	// ErrTxNotFound is returned by SourceChain.TransactionByHash for unknown
	// transactions.
	ErrTxNotFound = errors.New("transaction not found")

	// ErrUndecodable is returned by a MessageDecoder when a body does not
	// match the receiver ABI.
	ErrUndecodable = errors.New("message body cannot be decoded")

	// ErrTransport wraps failures of the underlying chain transports.
	ErrTransport = errors.New("chain transport failure")

	// ErrCounterRegression is returned when the ELock send counter at the
	// end of a range is lower than at its start.
	ErrCounterRegression = errors.New("deposit counter decreased over range")

	// ErrCountMismatch is returned by Deposits when the logs found over a
	// range disagree with the ELock counter delta.
	ErrCountMismatch = errors.New("deposit logs disagree with counter delta")
)

// LogFilter selects logs of one contract and topic over an inclusive block
// range.
type LogFilter struct {
	Address   common.Address
	Topic     common.Hash
	FromBlock uint64
	ToBlock   uint64
}

// SourceChain reads the Ethereum chain.
type SourceChain interface {
	// HeaderByHash returns ErrBlockNotFound for unknown hashes.
	HeaderByHash(ctx context.Context, hash common.Hash) (header.BlockHeader, error)
	StorageAt(ctx context.Context, contract common.Address, key common.Hash, block uint64) (storageword.Word, error)
	Logs(ctx context.Context, filter LogFilter) ([]eventlog.RawLog, error)
	// TransactionByHash returns ErrTxNotFound for unknown hashes.
	TransactionByHash(ctx context.Context, hash common.Hash) (eventlog.RawTransaction, error)
	// TransactionReceipt returns nil when the transaction is not mined.
	TransactionReceipt(ctx context.Context, hash common.Hash) (*eventlog.RawReceipt, error)
}

// Message is an inbound GOSH message with an undecoded body. Aborted and
// bodiless messages are filtered out by the reader.
type Message struct {
	ID      string
	Body    string
	TxID    common.Hash
	BlockID string
	Lt      uint64
}

// MasterBlock identifies a GOSH masterchain block.
type MasterBlock struct {
	SeqNo uint64
	ID    string
}

// TargetChain reads the GOSH chain.
type TargetChain interface {
	// MasterSeqNo returns the masterchain sequence number of blockID, or
	// ErrBlockNotFound.
	MasterSeqNo(ctx context.Context, blockID string) (uint64, error)
	// InboundMessages returns the internal messages received by address
	// between two master sequence numbers, in chain order.
	InboundMessages(ctx context.Context, address string, startSeqNo, endSeqNo uint64) ([]Message, error)
}

// MessageDecoder decodes a message body against the receiver ABI.
type MessageDecoder interface {
	// DecodeBody returns the called function name and its JSON arguments, or
	// ErrUndecodable.
	DecodeBody(ctx context.Context, body string) (name string, args json.RawMessage, err error)
}
