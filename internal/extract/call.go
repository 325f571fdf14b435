package extract

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
)

// ErrNotApplicable is returned by ExtractCallTransfer for transactions that
// are not deposit calls to the lock contract.
var ErrNotApplicable = errors.New("transaction is not a deposit call")

// ExtractCallTransfer builds a native-asset TransferRecord from a direct call
// of functionName on lock. The recipient is the first call argument and the
// amount is the transaction value.
func ExtractCallTransfer(tx eventlog.RawTransaction, table eventlog.Table, lock common.Address, functionName string) (TransferRecord, error) {
	if tx.To == nil || *tx.To != lock {
		return TransferRecord{}, fmt.Errorf("%w: tx %s is not sent to %s", ErrNotApplicable, tx.Hash.Hex(), lock.Hex())
	}

	call, err := eventlog.DecodeCall(tx.Input, tx.Hash, table)
	if err != nil {
		return TransferRecord{}, fmt.Errorf("%w: %v", ErrNotApplicable, err)
	}

	if call.Name != functionName {
		return TransferRecord{}, fmt.Errorf("%w: tx %s calls %s", ErrNotApplicable, tx.Hash.Hex(), call.Name)
	}

	raw, ok := call.Params["pubkey"]
	if !ok {
		return TransferRecord{}, fmt.Errorf("%w: %s in tx %s has no \"pubkey\"", ErrMissingField, call.Name, tx.Hash.Hex())
	}

	pubkey, err := ParseUint(raw)
	if err != nil {
		return TransferRecord{}, err
	}

	if tx.Value == nil {
		return TransferRecord{}, fmt.Errorf("%w: tx %s has no value", ErrMissingField, tx.Hash.Hex())
	}

	return TransferRecord{
		Pubkey: common.BigToHash(pubkey),
		Value:  tx.Value.ToInt(),
		Hash:   tx.Hash,
		Root:   NativeRoot(),
	}, nil
}
