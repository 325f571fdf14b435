package votegate_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
	"github.com/gosh-sh/gosh-proposer/internal/votegate"
	"github.com/gosh-sh/gosh-proposer/internal/votegate/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	lock      = common.HexToAddress("0x8a0e4b4a9d7d5c6f2b1e3a4c5d6e7f8091a2b3c4")
	validator = common.HexToAddress("0x1111111111111111111111111111111111111111")
	proposal  = common.HexToHash("0x2a")
)

func TestVoteSlot(t *testing.T) {
	var buf []byte
	buf = append(buf, proposal.Bytes()...)
	buf = append(buf, common.LeftPadBytes([]byte{0x0d}, 32)...)
	inner := crypto.Keccak256(buf)

	want := crypto.Keccak256Hash(common.LeftPadBytes(validator.Bytes(), 32), inner)

	assert.Equal(t, want, votegate.VoteSlot(proposal, validator))
	assert.NotEqual(t, want, votegate.VoteSlot(common.HexToHash("0x2b"), validator))
}

func TestHasVoted(t *testing.T) {
	slot := votegate.VoteSlot(proposal, validator)

	t.Run("zero word means not voted", func(t *testing.T) {
		reader := mocks.NewStorageReader(t)
		reader.EXPECT().LatestStorageAt(mock.Anything, lock, slot).Return(storageword.Word{}, nil).Once()

		voted, err := votegate.New(reader, lock).HasVoted(t.Context(), proposal, validator)
		require.NoError(t, err)
		assert.False(t, voted)
	})

	t.Run("non-zero word means voted", func(t *testing.T) {
		var w storageword.Word
		w[storageword.Size-1] = 1

		reader := mocks.NewStorageReader(t)
		reader.EXPECT().LatestStorageAt(mock.Anything, lock, slot).Return(w, nil).Once()

		voted, err := votegate.New(reader, lock).HasVoted(t.Context(), proposal, validator)
		require.NoError(t, err)
		assert.True(t, voted)
	})

	t.Run("read failure", func(t *testing.T) {
		boom := errors.New("connection refused")

		reader := mocks.NewStorageReader(t)
		reader.EXPECT().LatestStorageAt(mock.Anything, lock, slot).Return(storageword.Word{}, boom).Once()

		_, err := votegate.New(reader, lock).HasVoted(t.Context(), proposal, validator)
		assert.ErrorIs(t, err, boom)
	})
}
