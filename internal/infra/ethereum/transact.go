package ethereum

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
)

// ChainID returns the chain id used for transaction signing.
func (c *client) ChainID(ctx context.Context) (*big.Int, error) {
	var id hexutil.Big
	if err := c.call(ctx, &id, "eth_chainId"); err != nil {
		return nil, err
	}

	return id.ToInt(), nil
}

// PendingNonceAt returns the next nonce of account, counting pending
// transactions.
func (c *client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	var nonce hexutil.Uint64
	if err := c.call(ctx, &nonce, "eth_getTransactionCount", account, "pending"); err != nil {
		return 0, err
	}

	return uint64(nonce), nil
}

// SuggestGasTipCap returns the priority fee suggested by the node.
func (c *client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	var tip hexutil.Big
	if err := c.call(ctx, &tip, "eth_maxPriorityFeePerGas"); err != nil {
		return nil, err
	}

	return tip.ToInt(), nil
}

// SendRawTransaction submits a signed transaction and returns its hash.
func (c *client) SendRawTransaction(ctx context.Context, raw []byte) (common.Hash, error) {
	var hash common.Hash
	if err := c.call(ctx, &hash, "eth_sendRawTransaction", hexutil.Bytes(raw)); err != nil {
		return common.Hash{}, err
	}

	return hash, nil
}

// TransactionReceipt returns the receipt of hash, or nil when the
// transaction is not mined yet.
func (c *client) TransactionReceipt(ctx context.Context, hash common.Hash) (*eventlog.RawReceipt, error) {
	var receipt eventlog.RawReceipt
	if err := c.call(ctx, &receipt, "eth_getTransactionReceipt", hash); err != nil {
		if errors.Is(err, errNullResult) {
			return nil, nil
		}
		return nil, err
	}

	return &receipt, nil
}
