package header

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHeaderPair returns the same header in both the local representation and
// go-ethereum's, which serves as the reference encoder.
func newHeaderPair(baseFee *big.Int, withdrawals *common.Hash) (BlockHeader, *types.Header) {
	bloom := types.Bloom{}
	bloom[0] = 0x01
	bloom[255] = 0x80
	mix := common.HexToHash("0x5f2a")
	nonce := types.EncodeNonce(0x1234)

	ref := &types.Header{
		ParentHash:      common.HexToHash("0x01"),
		UncleHash:       types.EmptyUncleHash,
		Coinbase:        common.HexToAddress("0x00000000219ab540356cbb839cbe05303d7705fa"),
		Root:            common.HexToHash("0x02"),
		TxHash:          types.EmptyTxsHash,
		ReceiptHash:     types.EmptyReceiptsHash,
		Bloom:           bloom,
		Difficulty:      big.NewInt(0),
		Number:          big.NewInt(18_000_000),
		GasLimit:        30_000_000,
		GasUsed:         12_345_678,
		Time:            1_700_000_000,
		Extra:           []byte("beaverbuild.org"),
		MixDigest:       mix,
		Nonce:           nonce,
		BaseFee:         baseFee,
		WithdrawalsHash: withdrawals,
	}

	h := BlockHeader{
		ParentHash:      ref.ParentHash,
		OmmersHash:      ref.UncleHash,
		Author:          ref.Coinbase,
		StateRoot:       ref.Root,
		TxRoot:          ref.TxHash,
		ReceiptsRoot:    ref.ReceiptHash,
		LogsBloom:       &bloom,
		Difficulty:      ref.Difficulty,
		Number:          ref.Number,
		GasLimit:        ref.GasLimit,
		GasUsed:         ref.GasUsed,
		Timestamp:       ref.Time,
		ExtraData:       ref.Extra,
		MixHash:         &mix,
		Nonce:           &nonce,
		BaseFee:         baseFee,
		WithdrawalsRoot: withdrawals,
		Hash:            ref.Hash(),
	}

	return h, ref
}

func TestFieldCount(t *testing.T) {
	withdrawals := common.HexToHash("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

	tests := []struct {
		name        string
		baseFee     *big.Int
		withdrawals *common.Hash
		want        int
	}{
		{name: "legacy", want: LegacyFieldCount},
		{name: "london", baseFee: big.NewInt(7), want: LondonFieldCount},
		{name: "shanghai", baseFee: big.NewInt(7), withdrawals: &withdrawals, want: ShanghaiFieldCount},
		{name: "withdrawals without base fee", withdrawals: &withdrawals, want: LegacyFieldCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newHeaderPair(tt.baseFee, tt.withdrawals)
			assert.Equal(t, tt.want, FieldCount(h))

			encoded, err := Encode(h)
			require.NoError(t, err)

			var decoded []rlp.RawValue
			require.NoError(t, rlp.DecodeBytes(encoded, &decoded))
			assert.Len(t, decoded, tt.want)
		})
	}
}

func TestHash_MatchesReferenceEncoder(t *testing.T) {
	withdrawals := common.HexToHash("0x56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

	t.Run("legacy", func(t *testing.T) {
		h, ref := newHeaderPair(nil, nil)
		got, err := Hash(h)
		require.NoError(t, err)
		assert.Equal(t, ref.Hash(), got)
	})

	t.Run("london", func(t *testing.T) {
		h, ref := newHeaderPair(big.NewInt(25_000_000_000), nil)
		got, err := Hash(h)
		require.NoError(t, err)
		assert.Equal(t, ref.Hash(), got)
	})

	t.Run("shanghai", func(t *testing.T) {
		h, ref := newHeaderPair(big.NewInt(25_000_000_000), &withdrawals)
		got, err := Hash(h)
		require.NoError(t, err)
		assert.Equal(t, ref.Hash(), got)
	})

	t.Run("zero base fee is still encoded", func(t *testing.T) {
		h, ref := newHeaderPair(big.NewInt(0), nil)
		assert.Equal(t, LondonFieldCount, FieldCount(h))

		got, err := Hash(h)
		require.NoError(t, err)
		assert.Equal(t, ref.Hash(), got)
	})
}

func TestVerify(t *testing.T) {
	t.Run("matching hash", func(t *testing.T) {
		h, _ := newHeaderPair(big.NewInt(9), nil)
		assert.NoError(t, Verify(h))
	})

	t.Run("one byte of extra data flipped", func(t *testing.T) {
		h, _ := newHeaderPair(big.NewInt(9), nil)
		extra := append([]byte(nil), h.ExtraData...)
		extra[0] ^= 0xff
		h.ExtraData = extra

		err := Verify(h)
		assert.ErrorIs(t, err, ErrHashMismatch)
	})

	t.Run("one byte of the reported hash flipped", func(t *testing.T) {
		h, _ := newHeaderPair(nil, nil)
		h.Hash[31] ^= 0x01

		assert.ErrorIs(t, Verify(h), ErrHashMismatch)
	})

	t.Run("gas used changed", func(t *testing.T) {
		h, _ := newHeaderPair(nil, nil)
		h.GasUsed++

		assert.ErrorIs(t, Verify(h), ErrHashMismatch)
	})
}

func TestEncode_MissingFields(t *testing.T) {
	t.Run("logs bloom", func(t *testing.T) {
		h, _ := newHeaderPair(nil, nil)
		h.LogsBloom = nil

		_, err := Encode(h)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "logsBloom")
	})

	t.Run("mix hash and nonce", func(t *testing.T) {
		h, _ := newHeaderPair(nil, nil)
		h.MixHash = nil
		h.Nonce = nil

		err := Verify(h)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.NotErrorIs(t, err, ErrHashMismatch)
		assert.Contains(t, err.Error(), "mixHash")
		assert.Contains(t, err.Error(), "nonce")
	})
}

func TestVerify_LaterForkFields(t *testing.T) {
	withdrawals := common.HexToHash("0x56")
	h, _ := newHeaderPair(big.NewInt(9), &withdrawals)
	h.LaterForkFields = []string{"blobGasUsed", "parentBeaconBlockRoot"}

	err := Verify(h)
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
	assert.NotErrorIs(t, err, ErrHashMismatch)
	assert.Contains(t, err.Error(), "parentBeaconBlockRoot")

	_, err = Encode(h)
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}
