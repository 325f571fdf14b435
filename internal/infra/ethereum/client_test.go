package ethereum

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/resilience/retry"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc"
	jsonrpctest "github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shanghaiHeader() *types.Header {
	withdrawals := common.HexToHash("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

	return &types.Header{
		ParentHash:      common.HexToHash("0x1f"),
		UncleHash:       types.EmptyUncleHash,
		Coinbase:        common.HexToAddress("0x95222290dd7278aa3ddd389cc1e1d165cc4bafe5"),
		Root:            common.HexToHash("0x2e"),
		TxHash:          types.EmptyTxsHash,
		ReceiptHash:     types.EmptyReceiptsHash,
		Difficulty:      big.NewInt(0),
		Number:          big.NewInt(18_000_000),
		GasLimit:        30_000_000,
		GasUsed:         21_000,
		Time:            1_693_066_895,
		Extra:           []byte("beaverbuild.org"),
		MixDigest:       common.HexToHash("0x3d"),
		BaseFee:         big.NewInt(13_000_000_000),
		WithdrawalsHash: &withdrawals,
	}
}

func TestNewClient(t *testing.T) {
	t.Run("returns client over the given connection", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		c := NewClient(conn)

		assert.NotNil(t, c)
		assert.Equal(t, conn, c.conn)
		assert.NotNil(t, c.retry)
	})
}

func TestClient_HeaderByHash(t *testing.T) {
	t.Run("decodes a header that verifies", func(t *testing.T) {
		h := shanghaiHeader()
		raw, err := json.Marshal(h)
		require.NoError(t, err)

		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getBlockByHash", h.Hash(), false).Return(json.RawMessage(raw), nil).Once()

		got, err := NewClient(conn).HeaderByHash(t.Context(), h.Hash())
		require.NoError(t, err)

		assert.Equal(t, h.Hash(), got.Hash)
		assert.Equal(t, uint64(18_000_000), got.Number.Uint64())
		assert.Equal(t, header.ShanghaiFieldCount, header.FieldCount(got))
		assert.Empty(t, got.LaterForkFields)
		assert.NoError(t, header.Verify(got))
	})

	t.Run("cancun header is an unsupported variant", func(t *testing.T) {
		h := shanghaiHeader()
		blobGas, excess := uint64(131_072), uint64(0)
		beacon := common.HexToHash("0x4b")
		h.BlobGasUsed, h.ExcessBlobGas, h.ParentBeaconRoot = &blobGas, &excess, &beacon

		raw, err := json.Marshal(h)
		require.NoError(t, err)

		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getBlockByHash", h.Hash(), false).Return(json.RawMessage(raw), nil).Once()

		got, err := NewClient(conn).HeaderByHash(t.Context(), h.Hash())
		require.NoError(t, err)

		assert.Equal(t, []string{"blobGasUsed", "excessBlobGas", "parentBeaconBlockRoot"}, got.LaterForkFields)
		assert.ErrorIs(t, header.Verify(got), header.ErrUnsupportedVariant)
	})

	t.Run("null result means unknown block", func(t *testing.T) {
		hash := common.HexToHash("0xabc")

		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getBlockByHash", hash, false).Return(json.RawMessage("null"), nil).Once()

		_, err := NewClient(conn).HeaderByHash(t.Context(), hash)
		assert.ErrorIs(t, err, reconcile.ErrBlockNotFound)
	})

	t.Run("fetch failure is a transport error", func(t *testing.T) {
		hash := common.HexToHash("0xabc")

		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getBlockByHash", hash, false).Return(nil, errors.New("dial tcp: i/o timeout")).Once()

		_, err := NewClient(conn).HeaderByHash(t.Context(), hash)
		assert.ErrorIs(t, err, reconcile.ErrTransport)
		assert.NotErrorIs(t, err, reconcile.ErrBlockNotFound)
	})
}

func TestClient_HeaderByNumber(t *testing.T) {
	h := shanghaiHeader()
	raw, err := json.Marshal(h)
	require.NoError(t, err)

	t.Run("latest", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getBlockByNumber", "latest", false).Return(json.RawMessage(raw), nil).Once()

		got, err := NewClient(conn).HeaderByNumber(t.Context(), nil)
		require.NoError(t, err)
		assert.Equal(t, h.Hash(), got.Hash)
	})

	t.Run("by number", func(t *testing.T) {
		n := uint64(18_000_000)

		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getBlockByNumber", hexutil.Uint64(n), false).Return(json.RawMessage(raw), nil).Once()

		got, err := NewClient(conn).HeaderByNumber(t.Context(), &n)
		require.NoError(t, err)
		assert.Equal(t, h.Number, got.Number)
	})
}

func TestClient_BlockNumber(t *testing.T) {
	conn := jsonrpctest.NewClient(t)
	conn.On("Fetch", mock.Anything, "eth_blockNumber").Return(json.RawMessage(`"0x10"`), nil).Once()

	n, err := NewClient(conn).BlockNumber(t.Context())
	require.NoError(t, err)
	assert.Equal(t, uint64(16), n)
}

func TestClient_StorageAt(t *testing.T) {
	lock := common.HexToAddress("0x8a0e4b4a9d7d5c6f2b1e3a4c5d6e7f8091a2b3c4")
	key := storageword.Index(storageword.SlotCounters)

	t.Run("reads the word at a block", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getStorageAt", lock, key, hexutil.Uint64(100)).
			Return(json.RawMessage(`"0x0000000000000000000000000000000200000000000000000000000000000007"`), nil).Once()

		w, err := NewClient(conn).StorageAt(t.Context(), lock, key, 100)
		require.NoError(t, err)

		send, receive := storageword.ReadCounters(w)
		assert.Equal(t, int64(7), send.Int64())
		assert.Equal(t, int64(2), receive.Int64())
	})

	t.Run("reads the latest word", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getStorageAt", lock, key, "latest").
			Return(json.RawMessage(`"0x0000000000000000000000000000000000000000000000000000000000000000"`), nil).Once()

		w, err := NewClient(conn).LatestStorageAt(t.Context(), lock, key)
		require.NoError(t, err)
		assert.True(t, w.IsZero())
	})

	t.Run("short word is malformed", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getStorageAt", lock, key, hexutil.Uint64(100)).
			Return(json.RawMessage(`"0x07"`), nil).Once()

		_, err := NewClient(conn).StorageAt(t.Context(), lock, key, 100)
		assert.ErrorIs(t, err, storageword.ErrMalformedWord)
	})
}

func TestClient_Logs(t *testing.T) {
	lock := common.HexToAddress("0x8a0e4b4a9d7d5c6f2b1e3a4c5d6e7f8091a2b3c4")
	topic := common.HexToHash("0xf5681f9d0db1b911ac18ee83d515a1cf1051853a9eae418316a2fdf7dea427c5")

	filter := reconcile.LogFilter{Address: lock, Topic: topic, FromBlock: 101, ToBlock: 200}
	query := logQuery{
		Address:   lock,
		Topics:    [][]common.Hash{{topic}},
		FromBlock: 101,
		ToBlock:   200,
	}

	t.Run("decodes logs", func(t *testing.T) {
		raw := `[{"address":"0x8a0e4b4a9d7d5c6f2b1e3a4c5d6e7f8091a2b3c4","topics":["0xf5681f9d0db1b911ac18ee83d515a1cf1051853a9eae418316a2fdf7dea427c5","0x0000000000000000000000000000000000000000000000000000000000000000"],"data":"0x0000000000000000000000000000000000000000000000000000000000000064","blockNumber":"0x66","blockHash":"0x01","transactionHash":"0x00000000000000000000000000000000000000000000000000000000000000aa","transactionIndex":"0x2","logIndex":"0x5","removed":false}]`

		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getLogs", query).Return(json.RawMessage(raw), nil).Once()

		logs, err := NewClient(conn).Logs(t.Context(), filter)
		require.NoError(t, err)
		require.Len(t, logs, 1)

		assert.Equal(t, hexutil.Uint64(102), logs[0].BlockNumber)
		assert.Equal(t, hexutil.Uint(5), logs[0].LogIndex)
		assert.Equal(t, common.HexToHash("0xaa"), logs[0].TxHash)
		assert.Len(t, logs[0].Topics, 2)
	})

	t.Run("empty result", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getLogs", query).Return(json.RawMessage(`[]`), nil).Once()

		logs, err := NewClient(conn).Logs(t.Context(), filter)
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}

func TestClient_TransactionByHash(t *testing.T) {
	hash := common.HexToHash("0xa6028e247df8db8929db5b006dd68cee2c8797ac10a2a0c4fe396116870b13bf")

	t.Run("decodes the transaction", func(t *testing.T) {
		raw := `{"hash":"0xa6028e247df8db8929db5b006dd68cee2c8797ac10a2a0c4fe396116870b13bf","from":"0x1111111111111111111111111111111111111111","to":"0x8a0e4b4a9d7d5c6f2b1e3a4c5d6e7f8091a2b3c4","input":"0xb6b55f25","value":"0x5af3107a4000","blockNumber":"0x10","transactionIndex":"0x0"}`

		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getTransactionByHash", hash).Return(json.RawMessage(raw), nil).Once()

		tx, err := NewClient(conn).TransactionByHash(t.Context(), hash)
		require.NoError(t, err)

		assert.Equal(t, hash, tx.Hash)
		assert.Equal(t, big.NewInt(100_000_000_000_000), tx.Value.ToInt())
		require.NotNil(t, tx.BlockNumber)
		assert.Equal(t, hexutil.Uint64(16), *tx.BlockNumber)
	})

	t.Run("null result means unknown transaction", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getTransactionByHash", hash).Return(json.RawMessage("null"), nil).Once()

		_, err := NewClient(conn).TransactionByHash(t.Context(), hash)
		assert.ErrorIs(t, err, reconcile.ErrTxNotFound)
	})
}

func TestClient_TransactionReceipt(t *testing.T) {
	hash := common.HexToHash("0xa6028e247df8db8929db5b006dd68cee2c8797ac10a2a0c4fe396116870b13bf")

	t.Run("decodes the status", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", hash).
			Return(json.RawMessage(`{"transactionHash":"`+hash.Hex()+`","status":"0x0","blockNumber":"0x10","gasUsed":"0x5208"}`), nil).Once()

		receipt, err := NewClient(conn).TransactionReceipt(t.Context(), hash)
		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, hexutil.Uint64(0), receipt.Status)
		assert.Equal(t, hexutil.Uint64(16), receipt.BlockNumber)
	})

	t.Run("null result means not mined", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_getTransactionReceipt", hash).Return(json.RawMessage("null"), nil).Once()

		receipt, err := NewClient(conn).TransactionReceipt(t.Context(), hash)
		require.NoError(t, err)
		assert.Nil(t, receipt)
	})
}

func TestClient_Retry(t *testing.T) {
	t.Run("transient failures are retried", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_blockNumber").Return(nil, errors.New("connection reset")).Twice()
		conn.On("Fetch", mock.Anything, "eth_blockNumber").Return(json.RawMessage(`"0x2"`), nil).Once()

		c := NewClient(conn, WithRetry(retry.New(retry.WithAttempts(3), retry.WithDelay(time.Millisecond))))

		n, err := c.BlockNumber(t.Context())
		require.NoError(t, err)
		assert.Equal(t, uint64(2), n)
	})

	t.Run("provider errors are not retried", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_blockNumber").Return(nil, jsonrpc.ErrProviderReturnedError).Once()

		c := NewClient(conn, WithRetry(NewRetry(3)))

		_, err := c.BlockNumber(t.Context())
		assert.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
		assert.ErrorIs(t, err, reconcile.ErrTransport)
	})
}
