package proposer_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/header"
	"github.com/gosh-sh/gosh-proposer/internal/proposer"
	"github.com/gosh-sh/gosh-proposer/internal/proposer/mocks"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	headers     *mocks.HeaderReader
	checker     *mocks.DepositTarget
	deposits    *mocks.DepositFinder
	lock        *mocks.LockReader
	gosh        *mocks.GoshHead
	burns       *mocks.BurnFinder
	withdrawals *mocks.WithdrawalProposer
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		headers:     mocks.NewHeaderReader(t),
		checker:     mocks.NewDepositTarget(t),
		deposits:    mocks.NewDepositFinder(t),
		lock:        mocks.NewLockReader(t),
		gosh:        mocks.NewGoshHead(t),
		burns:       mocks.NewBurnFinder(t),
		withdrawals: mocks.NewWithdrawalProposer(t),
	}
}

func (f *fixture) service(opts ...proposer.Option) proposer.Service {
	return proposer.New(proposer.Dependencies{
		Headers:     f.headers,
		Checker:     f.checker,
		Deposits:    f.deposits,
		Lock:        f.lock,
		Gosh:        f.gosh,
		Burns:       f.burns,
		Withdrawals: f.withdrawals,
	}, opts...)
}

// chain returns n linked London headers numbered from first.
func chain(t *testing.T, first int64, n int) []header.BlockHeader {
	t.Helper()

	var (
		bloom types.Bloom
		mix   = common.HexToHash("0x5d")
		nonce types.BlockNonce
	)

	parent := common.BigToHash(big.NewInt(first - 1))
	out := make([]header.BlockHeader, n)
	for i := range out {
		h := header.BlockHeader{
			ParentHash: parent,
			LogsBloom:  &bloom,
			Difficulty: big.NewInt(0),
			Number:     big.NewInt(first + int64(i)),
			GasLimit:   30_000_000,
			GasUsed:    21_000,
			Timestamp:  1_700_000_000 + uint64(i)*12,
			MixHash:    &mix,
			Nonce:      &nonce,
			BaseFee:    big.NewInt(7),
		}

		hash, err := header.Hash(h)
		require.NoError(t, err)
		h.Hash = hash

		out[i] = h
		parent = hash
	}

	return out
}

func blocksOf(t *testing.T, headers []header.BlockHeader) []proposer.Block {
	t.Helper()

	blocks := make([]proposer.Block, len(headers))
	for i, h := range headers {
		data, err := header.Encode(h)
		require.NoError(t, err)
		blocks[i] = proposer.Block{Hash: h.Hash, Data: data}
	}

	return blocks
}

func latest() any {
	return mock.MatchedBy(func(n *uint64) bool { return n == nil })
}

func numbered(want uint64) any {
	return mock.MatchedBy(func(n *uint64) bool { return n != nil && *n == want })
}

func TestService_ProposeDeposits(t *testing.T) {
	transfers := []extract.TransferRecord{{
		Pubkey: common.HexToHash("0x01"),
		Value:  big.NewInt(5),
		Hash:   common.HexToHash("0xa1"),
		Root:   extract.NativeRoot(),
	}}

	t.Run("submits the headers after the checker block", func(t *testing.T) {
		c := chain(t, 100, 4)
		f := newFixture(t)

		f.checker.EXPECT().CheckerStatus(mock.Anything).Return(c[0].Hash, nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[0].Hash).Return(c[0], nil).Once()
		f.headers.EXPECT().HeaderByNumber(mock.Anything, latest()).Return(c[3], nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[2].Hash).Return(c[2], nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[1].Hash).Return(c[1], nil).Once()
		f.deposits.EXPECT().Deposits(mock.Anything, uint64(100), uint64(103)).Return(transfers, nil).Once()
		f.checker.EXPECT().SubmitBlocks(mock.Anything, blocksOf(t, c[1:]), transfers).Return(nil).Once()

		result, err := f.service().ProposeDeposits(t.Context())
		require.NoError(t, err)

		assert.True(t, result.Submitted)
		assert.Equal(t, c[0].Hash, result.From)
		assert.Equal(t, c[3].Hash, result.Till)
		assert.Equal(t, uint64(100), result.FromBlock)
		assert.Equal(t, uint64(103), result.TillBlock)
		assert.Equal(t, 3, result.Blocks)
		assert.Equal(t, transfers, result.Transfers)
	})

	t.Run("capped at the maximum block count", func(t *testing.T) {
		c := chain(t, 100, 6)
		f := newFixture(t)

		f.checker.EXPECT().CheckerStatus(mock.Anything).Return(c[0].Hash, nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[0].Hash).Return(c[0], nil).Once()
		f.headers.EXPECT().HeaderByNumber(mock.Anything, latest()).Return(c[5], nil).Once()
		f.headers.EXPECT().HeaderByNumber(mock.Anything, numbered(102)).Return(c[2], nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[1].Hash).Return(c[1], nil).Once()
		f.deposits.EXPECT().Deposits(mock.Anything, uint64(100), uint64(102)).Return(nil, nil).Once()
		f.checker.EXPECT().SubmitBlocks(mock.Anything, blocksOf(t, c[1:3]), []extract.TransferRecord(nil)).Return(nil).Once()

		result, err := f.service(proposer.WithMaxBlocks(2)).ProposeDeposits(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 2, result.Blocks)
		assert.Equal(t, c[2].Hash, result.Till)
	})

	t.Run("nothing to propose", func(t *testing.T) {
		c := chain(t, 100, 1)
		f := newFixture(t)

		f.checker.EXPECT().CheckerStatus(mock.Anything).Return(c[0].Hash, nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[0].Hash).Return(c[0], nil).Once()
		f.headers.EXPECT().HeaderByNumber(mock.Anything, latest()).Return(c[0], nil).Once()

		result, err := f.service().ProposeDeposits(t.Context())
		require.NoError(t, err)
		assert.False(t, result.Submitted)
		assert.Equal(t, uint64(100), result.FromBlock)
	})

	t.Run("chain does not extend the checker block", func(t *testing.T) {
		c := chain(t, 100, 3)
		f := newFixture(t)
		forked := common.HexToHash("0xf0")

		f.checker.EXPECT().CheckerStatus(mock.Anything).Return(forked, nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, forked).Return(c[0], nil).Once()
		f.headers.EXPECT().HeaderByNumber(mock.Anything, latest()).Return(c[2], nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[1].Hash).Return(c[1], nil).Once()

		_, err := f.service().ProposeDeposits(t.Context())
		assert.ErrorIs(t, err, proposer.ErrChainMismatch)
	})

	t.Run("header that does not hash to its id", func(t *testing.T) {
		c := chain(t, 100, 3)
		f := newFixture(t)

		tampered := c[1]
		tampered.GasUsed++

		f.checker.EXPECT().CheckerStatus(mock.Anything).Return(c[0].Hash, nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[0].Hash).Return(c[0], nil).Once()
		f.headers.EXPECT().HeaderByNumber(mock.Anything, latest()).Return(c[2], nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[1].Hash).Return(tampered, nil).Once()

		_, err := f.service().ProposeDeposits(t.Context())
		assert.ErrorIs(t, err, header.ErrHashMismatch)
	})

	t.Run("deposit count mismatch aborts", func(t *testing.T) {
		c := chain(t, 100, 2)
		f := newFixture(t)

		f.checker.EXPECT().CheckerStatus(mock.Anything).Return(c[0].Hash, nil).Once()
		f.headers.EXPECT().HeaderByHash(mock.Anything, c[0].Hash).Return(c[0], nil).Once()
		f.headers.EXPECT().HeaderByNumber(mock.Anything, latest()).Return(c[1], nil).Once()
		f.deposits.EXPECT().Deposits(mock.Anything, uint64(100), uint64(101)).Return(nil, reconcile.ErrCountMismatch).Once()

		_, err := f.service().ProposeDeposits(t.Context())
		assert.ErrorIs(t, err, reconcile.ErrCountMismatch)
	})

	t.Run("disabled without a checker", func(t *testing.T) {
		_, err := proposer.New(proposer.Dependencies{}).ProposeDeposits(t.Context())
		assert.ErrorIs(t, err, proposer.ErrDirectionDisabled)
	})
}

func TestService_ProposeWithdrawal(t *testing.T) {
	last := strings.Repeat("a", 64)
	head := reconcile.MasterBlock{SeqNo: 14, ID: strings.Repeat("b", 64)}
	burns := []extract.BurnRecord{{
		Dest:    common.HexToAddress("0x00000000000000000000000000000000000a11ce"),
		Value:   big.NewInt(7),
		TxID:    common.HexToHash("0x02"),
		EthRoot: common.HexToAddress("0xdac17f958d2ee523a2206206994597c13d831ec7"),
	}}

	expectCursor := func(f *fixture, start uint64) {
		f.lock.EXPECT().LastProcessedBlock(mock.Anything).Return(last, nil).Once()
		f.gosh.EXPECT().MasterSeqNo(mock.Anything, last).Return(start, nil).Once()
		f.gosh.EXPECT().LatestMasterBlock(mock.Anything).Return(head, nil).Once()
	}

	t.Run("submits the queued burns", func(t *testing.T) {
		f := newFixture(t)
		expectCursor(f, 10)
		f.burns.EXPECT().Burns(mock.Anything, uint64(10), uint64(14)).Return(burns, nil).Once()
		f.withdrawals.EXPECT().ProposeWithdrawal(mock.Anything, common.HexToHash(last), common.HexToHash(head.ID), burns).
			Return(common.HexToHash("0xee"), nil).Once()

		result, err := f.service().ProposeWithdrawal(t.Context())
		require.NoError(t, err)
		assert.Equal(t, proposer.WithdrawalResult{
			From:      last,
			Till:      head.ID,
			Burns:     burns,
			Tx:        common.HexToHash("0xee"),
			Submitted: true,
		}, result)
	})

	t.Run("no burns queued", func(t *testing.T) {
		f := newFixture(t)
		expectCursor(f, 10)
		f.burns.EXPECT().Burns(mock.Anything, uint64(10), uint64(14)).Return(nil, nil).Once()

		result, err := f.service().ProposeWithdrawal(t.Context())
		require.NoError(t, err)
		assert.False(t, result.Submitted)
	})

	t.Run("head has not advanced", func(t *testing.T) {
		f := newFixture(t)
		expectCursor(f, 14)

		result, err := f.service().ProposeWithdrawal(t.Context())
		require.NoError(t, err)
		assert.False(t, result.Submitted)
		assert.Empty(t, result.Burns)
	})

	t.Run("submission failure", func(t *testing.T) {
		f := newFixture(t)
		expectCursor(f, 10)
		f.burns.EXPECT().Burns(mock.Anything, uint64(10), uint64(14)).Return(burns, nil).Once()
		f.withdrawals.EXPECT().ProposeWithdrawal(mock.Anything, mock.Anything, mock.Anything, burns).
			Return(common.Hash{}, errors.New("insufficient funds")).Once()

		_, err := f.service().ProposeWithdrawal(t.Context())
		assert.ErrorContains(t, err, "insufficient funds")
	})

	t.Run("disabled without an Ethereum key", func(t *testing.T) {
		_, err := proposer.New(proposer.Dependencies{}).ProposeWithdrawal(t.Context())
		assert.ErrorIs(t, err, proposer.ErrDirectionDisabled)
	})
}
