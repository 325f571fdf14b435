package ethereum

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	jsonrpctest "github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gosh-sh/gosh-proposer/internal/storageword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var lockAddress = common.HexToAddress("0x8a0e4b4a9d7d5c6f2b1e3a4c5d6e7f8091a2b3c4")

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestLock_ProposalKeys(t *testing.T) {
	out := concat(abiWord(32), abiWord(2), abiWord(7), abiWord(9))

	conn := jsonrpctest.NewClient(t)
	expectCall(t, conn, lockAddress, selectorProposalList[:], out).Once()

	keys, err := NewLock(NewClient(conn), lockAddress).ProposalKeys(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []common.Hash{common.BigToHash(big.NewInt(7)), common.BigToHash(big.NewInt(9))}, keys)
}

func TestLock_WithdrawalProposals(t *testing.T) {
	usdt := common.HexToAddress("0xdac17f958d2ee523a2206206994597c13d831ec7")
	alice := common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	from := common.HexToHash("0x66cf5d5ca4f2b1d0d2d0b6ac3a52b1c2dbd7f1b7d5ae3ac57c1ef0d6d0d4a1b2")
	till := common.HexToHash("0x0f")

	key := common.BigToHash(big.NewInt(7))
	proposal := concat(
		from.Bytes(),
		till.Bytes(),
		abiWord(96),
		abiWord(1),
		common.BytesToHash(usdt.Bytes()).Bytes(),
		common.BytesToHash(alice.Bytes()).Bytes(),
		abiWord(1000),
		abiWord(0xbeef),
	)

	conn := jsonrpctest.NewClient(t)
	expectCall(t, conn, lockAddress, selectorProposalList[:], concat(abiWord(32), abiWord(1), key.Bytes())).Once()
	expectCall(t, conn, lockAddress, concat(selectorProposal[:], key.Bytes()), proposal).Once()

	proposals, err := NewLock(NewClient(conn), lockAddress).WithdrawalProposals(t.Context())
	require.NoError(t, err)
	require.Len(t, proposals, 1)

	p := proposals[0]
	assert.Equal(t, key, p.Key)
	assert.Equal(t, strings.TrimPrefix(from.Hex(), "0x"), p.From)
	assert.Equal(t, strings.Repeat("0", 62)+"0f", p.Till)
	assert.Equal(t, []extract.BurnRecord{{
		Dest:    alice,
		Value:   big.NewInt(1000),
		TxID:    common.BigToHash(big.NewInt(0xbeef)),
		EthRoot: usdt,
	}}, p.Burns)
}

func TestLock_TruncatedProposal(t *testing.T) {
	key := common.BigToHash(big.NewInt(7))

	conn := jsonrpctest.NewClient(t)
	expectCall(t, conn, lockAddress, concat(selectorProposal[:], key.Bytes()), concat(abiWord(1), abiWord(2), abiWord(96), abiWord(1))).Once()

	_, err := NewLock(NewClient(conn), lockAddress).Proposal(t.Context(), key)
	assert.ErrorContains(t, err, "transfer 0")
}

func TestLock_Storage(t *testing.T) {
	word := func(hex string) json.RawMessage {
		return json.RawMessage(`"0x` + strings.Repeat("0", 64-len(hex)) + hex + `"`)
	}

	expect := func(conn *jsonrpctest.Client, slot uint64, hex string) {
		conn.On("Fetch", mock.Anything, "eth_getStorageAt", lockAddress, storageword.Index(slot), "latest").Return(word(hex), nil).Once()
	}

	conn := jsonrpctest.NewClient(t)
	expect(conn, storageword.SlotCounters, "300000000000000000000000000000005")
	expect(conn, storageword.SlotTotalSupply, "64")
	expect(conn, storageword.SlotCollectedCommissions, "0a")
	expect(conn, storageword.SlotLastProcessedBlock, "abcdef")

	lock := NewLock(NewClient(conn), lockAddress)

	send, receive, err := lock.Counters(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(5), send.Int64())
	assert.Equal(t, int64(3), receive.Int64())

	supply, err := lock.TotalSupply(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(100), supply.Int64())

	commissions, err := lock.CollectedCommissions(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(10), commissions.Int64())

	last, err := lock.LastProcessedBlock(t.Context())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0", 58)+"abcdef", last)
}
