package reconcile

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
)

// DepositProposal claims the deposits locked in ELock between two Ethereum
// blocks. From is the last block already credited on GOSH.
type DepositProposal struct {
	// Key is the address of the proposal contract on GOSH.
	Key       string
	From      common.Hash
	Till      common.Hash
	Transfers []extract.TransferRecord
	Index     uint64
	Need      uint64
}

// WithdrawalProposal claims the burns received on GOSH between two master
// blocks, identified by their block ids.
type WithdrawalProposal struct {
	Key   common.Hash
	From  string
	Till  string
	Burns []extract.BurnRecord
}
