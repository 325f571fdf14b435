package ethereum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/hexbuf"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
)

func (c *client) storageAt(ctx context.Context, contract common.Address, key common.Hash, block any) (storageword.Word, error) {
	var raw string
	if err := c.call(ctx, &raw, "eth_getStorageAt", contract, key, block); err != nil {
		return storageword.Word{}, err
	}

	word, err := storageword.FromHex(raw)
	if err != nil {
		return storageword.Word{}, fmt.Errorf("storage %s of %s: %w", key.Hex(), contract.Hex(), err)
	}

	return word, nil
}

// StorageAt reads one storage word of contract at block.
func (c *client) StorageAt(ctx context.Context, contract common.Address, key common.Hash, block uint64) (storageword.Word, error) {
	return c.storageAt(ctx, contract, key, hexutil.Uint64(block))
}

// LatestStorageAt reads one storage word of contract at the latest block.
func (c *client) LatestStorageAt(ctx context.Context, contract common.Address, key common.Hash) (storageword.Word, error) {
	return c.storageAt(ctx, contract, key, "latest")
}

type logQuery struct {
	Address   common.Address  `json:"address"`
	Topics    [][]common.Hash `json:"topics"`
	FromBlock hexutil.Uint64  `json:"fromBlock"`
	ToBlock   hexutil.Uint64  `json:"toBlock"`
}

// Logs returns the logs matching filter.
func (c *client) Logs(ctx context.Context, filter reconcile.LogFilter) ([]eventlog.RawLog, error) {
	query := logQuery{
		Address:   filter.Address,
		Topics:    [][]common.Hash{{filter.Topic}},
		FromBlock: hexutil.Uint64(filter.FromBlock),
		ToBlock:   hexutil.Uint64(filter.ToBlock),
	}

	var logs []eventlog.RawLog
	if err := c.call(ctx, &logs, "eth_getLogs", query); err != nil && !errors.Is(err, errNullResult) {
		return nil, err
	}

	return logs, nil
}

// TransactionByHash returns the transaction with the given hash, or
// reconcile.ErrTxNotFound.
func (c *client) TransactionByHash(ctx context.Context, hash common.Hash) (eventlog.RawTransaction, error) {
	var tx eventlog.RawTransaction
	if err := c.call(ctx, &tx, "eth_getTransactionByHash", hash); err != nil {
		if errors.Is(err, errNullResult) {
			return eventlog.RawTransaction{}, fmt.Errorf("%w: %s", reconcile.ErrTxNotFound, hash.Hex())
		}
		return eventlog.RawTransaction{}, err
	}

	return tx, nil
}

type callMsg struct {
	To   common.Address `json:"to"`
	Data hexutil.Bytes  `json:"data"`
}

// Call executes a read-only call of contract at the latest block and
// returns the raw return data.
func (c *client) Call(ctx context.Context, contract common.Address, data []byte) (hexbuf.Buffer, error) {
	var out hexutil.Bytes
	if err := c.call(ctx, &out, "eth_call", callMsg{To: contract, Data: data}, "latest"); err != nil {
		return nil, err
	}

	return hexbuf.Buffer(out), nil
}
