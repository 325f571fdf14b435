package hexbuf

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		b, err := Decode("0x0a0b")
		require.NoError(t, err)
		assert.Equal(t, Buffer{0x0a, 0x0b}, b)
	})

	t.Run("without prefix", func(t *testing.T) {
		b, err := Decode("ff")
		require.NoError(t, err)
		assert.Equal(t, Buffer{0xff}, b)
	})

	t.Run("empty payloads", func(t *testing.T) {
		for _, in := range []string{"", "0x"} {
			b, err := Decode(in)
			require.NoError(t, err)
			assert.Equal(t, 0, b.Len())
		}
	})

	t.Run("odd length", func(t *testing.T) {
		_, err := Decode("0xabc")
		assert.ErrorIs(t, err, ErrInvalidHex)
	})

	t.Run("invalid characters", func(t *testing.T) {
		_, err := Decode("0xzz")
		assert.ErrorIs(t, err, ErrInvalidHex)
	})
}

func TestBuffer_Words(t *testing.T) {
	payload := "0x" +
		strings.Repeat("0", 62) + "2a" +
		strings.Repeat("0", 24) + "00000000000000000000000000000000000000aa"
	b, err := Decode(payload)
	require.NoError(t, err)

	t.Run("uint", func(t *testing.T) {
		v, err := b.Uint(0)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(big.NewInt(42)))
	})

	t.Run("address", func(t *testing.T) {
		addr, err := b.Address(WordSize)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xaa"), addr)
	})

	t.Run("word index", func(t *testing.T) {
		w, err := b.Word(1)
		require.NoError(t, err)
		assert.Equal(t, byte(0xaa), w[31])
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := b.Word(2)
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = b.Slice(60, 10)
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = b.Slice(-1, 1)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("int rejects lengths past the buffer", func(t *testing.T) {
		_, err := b.Int(WordSize)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBuffer_Bytes(t *testing.T) {
	// offset 0x20, length 5, "hello" padded
	payload := "0x" +
		strings.Repeat("0", 62) + "20" +
		strings.Repeat("0", 62) + "05" +
		"68656c6c6f" + strings.Repeat("0", 54)
	b, err := Decode(payload)
	require.NoError(t, err)

	data, err := b.Bytes(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	t.Run("truncated payload", func(t *testing.T) {
		short := b[:WordSize*2+2]
		_, err := short.Bytes(0, 0)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestPadLeft(t *testing.T) {
	w := PadLeft([]byte{0x0d})
	assert.Equal(t, byte(0x0d), w[31])
	assert.Equal(t, make([]byte, 31), w[:31])
}
