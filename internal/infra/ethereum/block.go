package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

// BlockResponse is the header part of an eth_getBlockBy* result. Fields
// introduced after Shanghai are decoded only to flag the header as a variant
// that cannot be encoded.
type BlockResponse struct {
	Hash                  common.Hash       `json:"hash"`
	ParentHash            common.Hash       `json:"parentHash"`
	Sha3Uncles            common.Hash       `json:"sha3Uncles"`
	Miner                 common.Address    `json:"miner"`
	StateRoot             common.Hash       `json:"stateRoot"`
	TransactionsRoot      common.Hash       `json:"transactionsRoot"`
	ReceiptsRoot          common.Hash       `json:"receiptsRoot"`
	LogsBloom             *types.Bloom      `json:"logsBloom"`
	Difficulty            *hexutil.Big      `json:"difficulty"`
	Number                *hexutil.Big      `json:"number"`
	GasLimit              hexutil.Uint64    `json:"gasLimit"`
	GasUsed               hexutil.Uint64    `json:"gasUsed"`
	Timestamp             hexutil.Uint64    `json:"timestamp"`
	ExtraData             hexutil.Bytes     `json:"extraData"`
	MixHash               *common.Hash      `json:"mixHash"`
	Nonce                 *types.BlockNonce `json:"nonce"`
	BaseFeePerGas         *hexutil.Big      `json:"baseFeePerGas"`
	WithdrawalsRoot       *common.Hash      `json:"withdrawalsRoot"`
	BlobGasUsed           *hexutil.Uint64   `json:"blobGasUsed"`
	ExcessBlobGas         *hexutil.Uint64   `json:"excessBlobGas"`
	ParentBeaconBlockRoot *common.Hash      `json:"parentBeaconBlockRoot"`
}

func toBig(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}
	return v.ToInt()
}

func (b BlockResponse) laterForkFields() []string {
	var names []string
	if b.BlobGasUsed != nil {
		names = append(names, "blobGasUsed")
	}
	if b.ExcessBlobGas != nil {
		names = append(names, "excessBlobGas")
	}
	if b.ParentBeaconBlockRoot != nil {
		names = append(names, "parentBeaconBlockRoot")
	}
	return names
}

// toHeader converts the response into a header.BlockHeader.
func (b BlockResponse) toHeader() header.BlockHeader {
	return header.BlockHeader{
		ParentHash:      b.ParentHash,
		OmmersHash:      b.Sha3Uncles,
		Author:          b.Miner,
		StateRoot:       b.StateRoot,
		TxRoot:          b.TransactionsRoot,
		ReceiptsRoot:    b.ReceiptsRoot,
		LogsBloom:       b.LogsBloom,
		Difficulty:      toBig(b.Difficulty),
		Number:          toBig(b.Number),
		GasLimit:        uint64(b.GasLimit),
		GasUsed:         uint64(b.GasUsed),
		Timestamp:       uint64(b.Timestamp),
		ExtraData:       b.ExtraData,
		MixHash:         b.MixHash,
		Nonce:           b.Nonce,
		BaseFee:         toBig(b.BaseFeePerGas),
		WithdrawalsRoot: b.WithdrawalsRoot,
		LaterForkFields: b.laterForkFields(),
		Hash:            b.Hash,
	}
}

func (c *client) block(ctx context.Context, method string, id any) (header.BlockHeader, error) {
	var resp BlockResponse
	if err := c.call(ctx, &resp, method, id, false); err != nil {
		if errors.Is(err, errNullResult) {
			return header.BlockHeader{}, fmt.Errorf("%w: %v", reconcile.ErrBlockNotFound, id)
		}
		return header.BlockHeader{}, err
	}

	return resp.toHeader(), nil
}

// HeaderByHash returns the header of the block with the given hash, or
// reconcile.ErrBlockNotFound.
func (c *client) HeaderByHash(ctx context.Context, hash common.Hash) (header.BlockHeader, error) {
	return c.block(ctx, "eth_getBlockByHash", hash)
}

// HeaderByNumber returns the header of the block at number. A nil number
// selects the latest block.
func (c *client) HeaderByNumber(ctx context.Context, number *uint64) (header.BlockHeader, error) {
	var id any = "latest"
	if number != nil {
		id = hexutil.Uint64(*number)
	}

	return c.block(ctx, "eth_getBlockByNumber", id)
}

// BlockNumber returns the number of the latest block.
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	var n hexutil.Uint64
	if err := c.call(ctx, &n, "eth_blockNumber"); err != nil {
		return 0, err
	}

	return uint64(n), nil
}
