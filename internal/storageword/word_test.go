package storageword

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCounters(t *testing.T) {
	t.Run("split at the middle of the word", func(t *testing.T) {
		var w Word
		w[15] = 10
		w[31] = 5

		send, receive := ReadCounters(w)
		assert.Equal(t, 0, send.Cmp(big.NewInt(5)))
		assert.Equal(t, 0, receive.Cmp(big.NewInt(10)))
	})

	t.Run("from hex", func(t *testing.T) {
		w, err := FromHex("0x" +
			strings.Repeat("0", 30) + "0a" +
			strings.Repeat("0", 30) + "05")
		require.NoError(t, err)

		send, receive := ReadCounters(w)
		assert.Equal(t, "5", send.String())
		assert.Equal(t, "10", receive.String())
	})

	t.Run("full width halves", func(t *testing.T) {
		var w Word
		for i := range w {
			w[i] = 0xff
		}

		send, receive := ReadCounters(w)
		max128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
		assert.Equal(t, 0, send.Cmp(max128))
		assert.Equal(t, 0, receive.Cmp(max128))
	})
}

func TestReadScalar(t *testing.T) {
	var w Word
	w[30] = 0x01
	w[31] = 0x02

	assert.Equal(t, int64(0x0102), ReadScalar(w).Int64())
	assert.Equal(t, int64(0), ReadScalar(Word{}).Int64())
}

func TestFromBytes(t *testing.T) {
	t.Run("exact size", func(t *testing.T) {
		w, err := FromBytes(make([]byte, Size))
		require.NoError(t, err)
		assert.True(t, w.IsZero())
	})

	t.Run("short and long inputs", func(t *testing.T) {
		for _, n := range []int{0, 31, 33} {
			_, err := FromBytes(make([]byte, n))
			assert.ErrorIs(t, err, ErrMalformedWord, "length %d", n)
		}
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := FromHex("0xnothex")
		assert.ErrorIs(t, err, ErrMalformedWord)
	})

	t.Run("truncated hex", func(t *testing.T) {
		_, err := FromHex("0x05")
		assert.ErrorIs(t, err, ErrMalformedWord)
	})
}

func TestSlots(t *testing.T) {
	t.Run("index", func(t *testing.T) {
		assert.Equal(t, common.HexToHash("0x0d"), Index(SlotVotes))
		assert.Equal(t, common.Hash{}, Index(SlotTotalSupply))
	})

	t.Run("mapping key", func(t *testing.T) {
		key := common.HexToHash("0x2a")
		slot := Index(SlotVotes)

		want := crypto.Keccak256Hash(append(key.Bytes(), slot.Bytes()...))
		assert.Equal(t, want, MappingKey(key, slot))
	})

	t.Run("pad address", func(t *testing.T) {
		addr := common.HexToAddress("0x00000000219ab540356cbb839cbe05303d7705fa")
		padded := PadAddress(addr)
		assert.Equal(t, make([]byte, 12), padded.Bytes()[:12])
		assert.Equal(t, addr.Bytes(), padded.Bytes()[12:])
	})
}
