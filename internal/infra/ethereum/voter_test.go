package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	jsonrpctest "github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func expectTxContext(t *testing.T, conn *jsonrpctest.Client, from common.Address) {
	t.Helper()

	head, err := json.Marshal(shanghaiHeader())
	require.NoError(t, err)

	conn.On("Fetch", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil).Once()
	conn.On("Fetch", mock.Anything, "eth_getTransactionCount", from, "pending").Return(json.RawMessage(`"0x2a"`), nil).Once()
	conn.On("Fetch", mock.Anything, "eth_maxPriorityFeePerGas").Return(json.RawMessage(`"0x3b9aca00"`), nil).Once()
	conn.On("Fetch", mock.Anything, "eth_getBlockByNumber", "latest", false).Return(json.RawMessage(head), nil).Once()
}

func TestVoter_VoteForWithdrawal(t *testing.T) {
	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)
	proposal := common.BigToHash(big.NewInt(7))

	t.Run("signs a dynamic fee vote", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectTxContext(t, conn, from)

		var raw hexutil.Bytes
		conn.On("Fetch", mock.Anything, "eth_sendRawTransaction", mock.Anything).
			Run(func(args mock.Arguments) { raw = args.Get(2).(hexutil.Bytes) }).
			Return(json.RawMessage(`"0x00000000000000000000000000000000000000000000000000000000000000ff"`), nil).Once()

		voter := NewVoter(NewClient(conn), lockAddress, key)
		hash, err := voter.VoteForWithdrawal(t.Context(), proposal)
		require.NoError(t, err)
		assert.Equal(t, common.HexToHash("0xff"), hash)

		tx := new(types.Transaction)
		require.NoError(t, tx.UnmarshalBinary(raw))

		sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1)), tx)
		require.NoError(t, err)

		assert.Equal(t, from, sender)
		assert.Equal(t, from, voter.Address())
		assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
		assert.Equal(t, uint64(42), tx.Nonce())
		assert.Equal(t, DefaultVoteGasLimit, tx.Gas())
		assert.Equal(t, DefaultVoteValue, tx.Value())
		assert.Equal(t, &lockAddress, tx.To())
		assert.Equal(t, big.NewInt(1_000_000_000), tx.GasTipCap())
		assert.Equal(t, big.NewInt(27_000_000_000), tx.GasFeeCap())
		assert.Equal(t, concat(selectorVoteForWithdrawal[:], proposal.Bytes()), tx.Data())
	})

	t.Run("waits for a successful receipt", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectTxContext(t, conn, from)

		txHash := common.HexToHash("0xff")
		conn.On("Fetch", mock.Anything, "eth_sendRawTransaction", mock.Anything).Return(json.RawMessage(`"`+txHash.Hex()+`"`), nil).Once()
		conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", txHash).Return(json.RawMessage("null"), nil).Once()
		conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", txHash).
			Return(json.RawMessage(`{"transactionHash":"`+txHash.Hex()+`","status":"0x1","blockNumber":"0x10","gasUsed":"0x5208"}`), nil).Once()

		voter := NewVoter(NewClient(conn), lockAddress, key, WithReceiptWait(time.Millisecond))
		_, err := voter.VoteForWithdrawal(t.Context(), proposal)
		assert.NoError(t, err)
	})

	t.Run("reverted vote", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectTxContext(t, conn, from)

		txHash := common.HexToHash("0xff")
		conn.On("Fetch", mock.Anything, "eth_sendRawTransaction", mock.Anything).Return(json.RawMessage(`"`+txHash.Hex()+`"`), nil).Once()
		conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", txHash).
			Return(json.RawMessage(`{"transactionHash":"`+txHash.Hex()+`","status":"0x0","blockNumber":"0x10","gasUsed":"0x5208"}`), nil).Once()

		voter := NewVoter(NewClient(conn), lockAddress, key, WithReceiptWait(time.Millisecond), WithGasLimit(500_000), WithValue(big.NewInt(0)))
		hash, err := voter.VoteForWithdrawal(t.Context(), proposal)
		assert.ErrorIs(t, err, ErrVoteReverted)
		assert.Equal(t, txHash, hash)
	})

	t.Run("send failure", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectTxContext(t, conn, from)
		conn.On("Fetch", mock.Anything, "eth_sendRawTransaction", mock.Anything).Return(nil, errors.New("nonce too low")).Once()

		_, err := NewVoter(NewClient(conn), lockAddress, key).VoteForWithdrawal(t.Context(), proposal)
		assert.ErrorContains(t, err, "nonce too low")
	})
}

func TestVoter_ProposeWithdrawal(t *testing.T) {
	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	first := common.HexToHash("0x0b1c")
	last := common.HexToHash("0x0e2f")
	usdt := common.HexToAddress("0xdac17f958d2ee523a2206206994597c13d831ec7")
	alice := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	burns := []extract.BurnRecord{{Dest: alice, Value: big.NewInt(7), TxID: common.HexToHash("0x02"), EthRoot: usdt}}

	t.Run("encodes the burns", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectTxContext(t, conn, from)

		var raw hexutil.Bytes
		conn.On("Fetch", mock.Anything, "eth_sendRawTransaction", mock.Anything).
			Run(func(args mock.Arguments) { raw = args.Get(2).(hexutil.Bytes) }).
			Return(json.RawMessage(`"0x00000000000000000000000000000000000000000000000000000000000000ee"`), nil).Once()

		hash, err := NewVoter(NewClient(conn), lockAddress, key).ProposeWithdrawal(t.Context(), first, last, burns)
		require.NoError(t, err)
		assert.Equal(t, common.HexToHash("0xee"), hash)

		tx := new(types.Transaction)
		require.NoError(t, tx.UnmarshalBinary(raw))

		sel := eventlog.SelectorOf("proposeWithdrawal(uint256,uint256,(address,address,uint256,uint256)[])")
		assert.Equal(t, concat(
			sel[:],
			first.Bytes(),
			last.Bytes(),
			common.BigToHash(big.NewInt(96)).Bytes(),
			common.BigToHash(big.NewInt(1)).Bytes(),
			common.BytesToHash(usdt.Bytes()).Bytes(),
			common.BytesToHash(alice.Bytes()).Bytes(),
			common.BigToHash(big.NewInt(7)).Bytes(),
			common.HexToHash("0x02").Bytes(),
		), tx.Data())
		assert.Equal(t, DefaultVoteValue, tx.Value())
	})

	t.Run("reverted proposal", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectTxContext(t, conn, from)

		txHash := common.HexToHash("0xee")
		conn.On("Fetch", mock.Anything, "eth_sendRawTransaction", mock.Anything).Return(json.RawMessage(`"`+txHash.Hex()+`"`), nil).Once()
		conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", txHash).Return(json.RawMessage("null"), nil).Twice()
		conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", txHash).
			Return(json.RawMessage(`{"transactionHash":"`+txHash.Hex()+`","status":"0x0","blockNumber":"0x10","gasUsed":"0x5208"}`), nil).Once()

		hash, err := NewVoter(NewClient(conn), lockAddress, key, WithReceiptWait(time.Millisecond)).ProposeWithdrawal(t.Context(), first, last, burns)
		assert.ErrorIs(t, err, ErrVoteReverted)
		assert.Equal(t, txHash, hash)
	})
}

func TestVoter_WaitHonoursCancellation(t *testing.T) {
	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	conn := jsonrpctest.NewClient(t)
	expectTxContext(t, conn, from)

	txHash := common.HexToHash("0xff")
	conn.On("Fetch", mock.Anything, "eth_sendRawTransaction", mock.Anything).Return(json.RawMessage(`"`+txHash.Hex()+`"`), nil).Once()
	conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", txHash).Return(json.RawMessage("null"), nil).Maybe()

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err = NewVoter(NewClient(conn), lockAddress, key, WithReceiptWait(5*time.Millisecond)).VoteForWithdrawal(ctx, common.HexToHash("0x07"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoadKey(t *testing.T) {
	t.Run("reads a hex key file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "eth.key")
		require.NoError(t, os.WriteFile(path, []byte(testKeyHex+"\n"), 0o600))

		key, err := LoadKey(path)
		require.NoError(t, err)
		assert.Equal(t, testKeyHex, hexutil.Encode(crypto.FromECDSA(key))[2:])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadKey(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}
