package ethereum

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	jsonrpctest "github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func abiWord(v int64) []byte {
	return common.BigToHash(big.NewInt(v)).Bytes()
}

func abiString(s string) []byte {
	out := append(abiWord(32), abiWord(int64(len(s)))...)
	padded := make([]byte, (len(s)+31)/32*32)
	copy(padded, s)
	return append(out, padded...)
}

func callResult(t *testing.T, data []byte) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(hexutil.Bytes(data))
	require.NoError(t, err)
	return raw
}

func expectCall(t *testing.T, conn *jsonrpctest.Client, to common.Address, input []byte, out []byte) *mock.Call {
	t.Helper()

	return conn.On("Fetch", mock.Anything, "eth_call", callMsg{To: to, Data: input}, "latest").
		Return(callResult(t, out), nil)
}

func TestTokenResolver_Resolve(t *testing.T) {
	usdc := common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	mkr := common.HexToAddress("0x9f8f72aa9304c8b593d555f12ef6589cc3a579a2")

	t.Run("reads and caches metadata", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectCall(t, conn, usdc, selectorName[:], abiString("USD Coin")).Once()
		expectCall(t, conn, usdc, selectorSymbol[:], abiString("USDC")).Once()
		expectCall(t, conn, usdc, selectorDecimals[:], abiWord(6)).Once()

		r, err := NewTokenResolver(NewClient(conn), 0)
		require.NoError(t, err)

		want := extract.TokenRoot{Name: "USD Coin", Symbol: "USDC", Decimals: 6, EthRoot: usdc}
		for range 3 {
			root, err := r.Resolve(t.Context(), usdc)
			require.NoError(t, err)
			assert.Equal(t, want, root)
		}
	})

	t.Run("bytes32 name and symbol", func(t *testing.T) {
		name := make([]byte, 32)
		copy(name, "Maker")
		symbol := make([]byte, 32)
		copy(symbol, "MKR")

		conn := jsonrpctest.NewClient(t)
		expectCall(t, conn, mkr, selectorName[:], name).Once()
		expectCall(t, conn, mkr, selectorSymbol[:], symbol).Once()
		expectCall(t, conn, mkr, selectorDecimals[:], abiWord(18)).Once()

		r, err := NewTokenResolver(NewClient(conn), 4)
		require.NoError(t, err)

		root, err := r.Resolve(t.Context(), mkr)
		require.NoError(t, err)
		assert.Equal(t, "Maker", root.Name)
		assert.Equal(t, "MKR", root.Symbol)
		assert.Equal(t, uint8(18), root.Decimals)
	})

	t.Run("zero address is native without calls", func(t *testing.T) {
		r, err := NewTokenResolver(NewClient(jsonrpctest.NewClient(t)), 4)
		require.NoError(t, err)

		root, err := r.Resolve(t.Context(), common.Address{})
		require.NoError(t, err)
		assert.Equal(t, extract.NativeRoot(), root)
	})

	t.Run("decimals out of range", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		expectCall(t, conn, usdc, selectorName[:], abiString("USD Coin")).Once()
		expectCall(t, conn, usdc, selectorSymbol[:], abiString("USDC")).Once()
		expectCall(t, conn, usdc, selectorDecimals[:], abiWord(256)).Once()

		r, err := NewTokenResolver(NewClient(conn), 4)
		require.NoError(t, err)

		_, err = r.Resolve(t.Context(), usdc)
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("call failure", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "eth_call", callMsg{To: usdc, Data: selectorName[:]}, "latest").
			Return(nil, errors.New("connection refused")).Once()

		r, err := NewTokenResolver(NewClient(conn), 4)
		require.NoError(t, err)

		_, err = r.Resolve(t.Context(), usdc)
		assert.ErrorIs(t, err, reconcile.ErrTransport)
	})
}
