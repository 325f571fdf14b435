package eventlog

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RawTransaction is the subset of an eth_getTransactionByHash result needed to
// decode direct contract calls.
type RawTransaction struct {
	Hash        common.Hash     `json:"hash"`
	From        common.Address  `json:"from"`
	To          *common.Address `json:"to"`
	Input       hexutil.Bytes   `json:"input"`
	Value       *hexutil.Big    `json:"value"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
	TxIndex     *hexutil.Uint   `json:"transactionIndex"`
}

// RawReceipt is the subset of an eth_getTransactionReceipt result needed to
// tell executed transactions from reverted ones.
type RawReceipt struct {
	TxHash      common.Hash    `json:"transactionHash"`
	Status      hexutil.Uint64 `json:"status"`
	BlockNumber hexutil.Uint64 `json:"blockNumber"`
	GasUsed     hexutil.Uint64 `json:"gasUsed"`
}
