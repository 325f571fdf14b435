package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/resilience/retry"
)

const (
	// DefaultVoteGasLimit is the gas limit of a vote transaction.
	DefaultVoteGasLimit uint64 = 1_000_000

	defaultReceiptInterval = 4 * time.Second
)

// ErrVoteReverted is returned when a vote or proposal transaction is mined
// with a failed status.
var ErrVoteReverted = errors.New("vote transaction reverted")

// DefaultVoteValue is the value attached to a vote: 0.001 ETH.
var DefaultVoteValue = big.NewInt(1_000_000_000_000_000)

var selectorVoteForWithdrawal = eventlog.SelectorOf("voteForWithdrawal(uint256)")

const lockABIJSON = `[{
	"type": "function",
	"name": "proposeWithdrawal",
	"inputs": [
		{"name": "first_block", "type": "uint256"},
		{"name": "last_block", "type": "uint256"},
		{"name": "transfers", "type": "tuple[]", "components": [
			{"name": "ethRoot", "type": "address"},
			{"name": "to", "type": "address"},
			{"name": "value", "type": "uint256"},
			{"name": "txId", "type": "uint256"}
		]}
	],
	"outputs": []
}]`

var lockABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(lockABIJSON))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// withdrawalTransfer is one (ethRoot, to, value, txId) tuple of a withdrawal
// proposal.
type withdrawalTransfer struct {
	EthRoot common.Address `abi:"ethRoot"`
	To      common.Address `abi:"to"`
	Value   *big.Int       `abi:"value"`
	TxID    *big.Int       `abi:"txId"`
}

// Transactor is the node surface needed to sign and submit transactions.
type Transactor interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *uint64) (header.BlockHeader, error)
	SendRawTransaction(ctx context.Context, raw []byte) (common.Hash, error)
	TransactionReceipt(ctx context.Context, hash common.Hash) (*eventlog.RawReceipt, error)
}

type voterConfig struct {
	gasLimit        uint64
	value           *big.Int
	waitReceipt     bool
	receiptInterval time.Duration
}

// VoterOption configures a Voter.
type VoterOption func(*voterConfig)

// WithGasLimit overrides the gas limit of vote transactions.
func WithGasLimit(gas uint64) VoterOption {
	return func(c *voterConfig) {
		c.gasLimit = gas
	}
}

// WithValue overrides the value attached to vote transactions.
func WithValue(v *big.Int) VoterOption {
	return func(c *voterConfig) {
		c.value = v
	}
}

// WithReceiptWait makes every sent transaction wait until it is mined,
// polling every interval. A non-positive interval keeps the 4s default.
func WithReceiptWait(interval time.Duration) VoterOption {
	return func(c *voterConfig) {
		c.waitReceipt = true
		if interval > 0 {
			c.receiptInterval = interval
		}
	}
}

// Voter casts withdrawal votes and opens withdrawal proposals on the ELock
// contract.
type Voter struct {
	node Transactor
	lock common.Address
	key  *ecdsa.PrivateKey
	from common.Address
	cfg  voterConfig
}

// NewVoter returns a Voter signing with key.
func NewVoter(node Transactor, lock common.Address, key *ecdsa.PrivateKey, opts ...VoterOption) *Voter {
	cfg := voterConfig{
		gasLimit:        DefaultVoteGasLimit,
		value:           DefaultVoteValue,
		receiptInterval: defaultReceiptInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Voter{
		node: node,
		lock: lock,
		key:  key,
		from: crypto.PubkeyToAddress(key.PublicKey),
		cfg:  cfg,
	}
}

// LoadKey reads a hex-encoded secp256k1 private key from path.
func LoadKey(path string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.LoadECDSA(path)
	if err != nil {
		return nil, fmt.Errorf("load key %s: %w", path, err)
	}

	return key, nil
}

// Address returns the account votes are sent from.
func (v *Voter) Address() common.Address {
	return v.from
}

// VoteForWithdrawal votes for the withdrawal proposal identified by key and
// returns the transaction hash.
func (v *Voter) VoteForWithdrawal(ctx context.Context, key common.Hash) (common.Hash, error) {
	hash, err := v.send(logger.Derive(ctx, "proposal", key.Hex()), "withdrawal vote", append(selectorVoteForWithdrawal[:], key.Bytes()...))
	if err != nil {
		return hash, fmt.Errorf("vote for %s: %w", key.Hex(), err)
	}

	return hash, nil
}

// ProposeWithdrawal opens a withdrawal proposal for the burns received on
// GOSH between master blocks from and till and returns the transaction hash.
func (v *Voter) ProposeWithdrawal(ctx context.Context, from, till common.Hash, burns []extract.BurnRecord) (common.Hash, error) {
	transfers := make([]withdrawalTransfer, len(burns))
	for i, b := range burns {
		transfers[i] = withdrawalTransfer{
			EthRoot: b.EthRoot,
			To:      b.Dest,
			Value:   b.Value,
			TxID:    new(big.Int).SetBytes(b.TxID.Bytes()),
		}
	}

	data, err := lockABI.Pack("proposeWithdrawal", from.Big(), till.Big(), transfers)
	if err != nil {
		return common.Hash{}, fmt.Errorf("propose withdrawal %s..%s: %w", from.Hex(), till.Hex(), err)
	}

	hash, err := v.send(logger.Derive(ctx, "from", from.Hex(), "till", till.Hex()), "withdrawal proposal", data)
	if err != nil {
		return hash, fmt.Errorf("propose withdrawal %s..%s: %w", from.Hex(), till.Hex(), err)
	}

	return hash, nil
}

// send signs and submits a call of the lock contract. When receipts are
// awaited, the returned hash is set even if the transaction reverted.
func (v *Voter) send(ctx context.Context, what string, data []byte) (common.Hash, error) {
	tx, err := v.buildTx(ctx, data)
	if err != nil {
		return common.Hash{}, err
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return common.Hash{}, err
	}

	hash, err := v.node.SendRawTransaction(ctx, raw)
	if err != nil {
		return common.Hash{}, err
	}

	logger.Info(ctx, what+" sent", "tx", hash.Hex(), "nonce", tx.Nonce())

	if v.cfg.waitReceipt {
		if err := v.wait(ctx, hash); err != nil {
			return hash, err
		}
	}

	return hash, nil
}

func (v *Voter) buildTx(ctx context.Context, data []byte) (*types.Transaction, error) {
	chainID, err := v.node.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	nonce, err := v.node.PendingNonceAt(ctx, v.from)
	if err != nil {
		return nil, err
	}

	tip, err := v.node.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, err
	}

	head, err := v.node.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}

	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	lock := v.lock
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       v.cfg.gasLimit,
		To:        &lock,
		Value:     v.cfg.value,
		Data:      data,
	})

	return types.SignTx(tx, types.LatestSignerForChainID(chainID), v.key)
}

// errReceiptPending is retried by wait until the transaction is mined.
var errReceiptPending = errors.New("receipt pending")

func (v *Voter) wait(ctx context.Context, hash common.Hash) error {
	poll := retry.New(
		retry.WithAttempts(0),
		retry.WithDelay(v.cfg.receiptInterval),
		retry.WithMaxDelay(v.cfg.receiptInterval),
		retry.WithRetryIf(func(err error) bool {
			return errors.Is(err, errReceiptPending)
		}),
	)

	return poll.Execute(ctx, func() error {
		receipt, err := v.node.TransactionReceipt(ctx, hash)
		if err != nil {
			return err
		}

		if receipt == nil {
			return errReceiptPending
		}

		if uint64(receipt.Status) != types.ReceiptStatusSuccessful {
			return fmt.Errorf("%w: %s in block %d", ErrVoteReverted, hash.Hex(), uint64(receipt.BlockNumber))
		}

		return nil
	})
}
