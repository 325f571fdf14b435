package config

import (
	"strings"
	"testing"
	"time"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var receiver = "0:" + strings.Repeat("6a", 32)

func setRequired(t *testing.T) {
	t.Setenv("BRIDGE_ETH_RPC_URL", "https://eth.example.org")
	t.Setenv("BRIDGE_ETH_LOCK_ADDRESS", "0x8a0e4b4a9d7d5c6f2b1e3a4c5d6e7f8091a2b3c4")
	t.Setenv("BRIDGE_GOSH_SIDECAR_URL", "http://localhost:8600")
	t.Setenv("BRIDGE_GOSH_RECEIVER_ADDRESS", receiver)
	t.Setenv("BRIDGE_GOSH_RECEIVER_ABI", "abi/receiver.abi.json")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "deposit", cfg.Eth.DepositFunction)
		assert.Equal(t, uint64(1000), cfg.Eth.MaxBlocksPerRequest)
		assert.Zero(t, cfg.Eth.MaxProposalSpan)
		assert.Equal(t, uint64(20), cfg.Eth.MaxBlocksPerProposal)
		assert.True(t, cfg.Eth.WaitReceipt)
		assert.Equal(t, "burnTokens", cfg.Gosh.BurnFunction)
		assert.Equal(t, time.Minute, cfg.Relay.Interval)
		assert.Equal(t, 10*time.Minute, cfg.Relay.ClaimTTL)
		assert.Equal(t, 8, cfg.Relay.Concurrency)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, "gosh-proposer", cfg.Telemetry.ServiceName)
		assert.False(t, cfg.DepositsEnabled())
		assert.False(t, cfg.CanSignEth())
		assert.False(t, cfg.CanVote())
	})

	t.Run("ethereum key alone allows withdrawal proposals", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BRIDGE_ETH_KEY_PATH", "/keys/eth.key")
		t.Setenv("BRIDGE_ETH_MAX_BLOCKS_PER_PROPOSAL", "5")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.CanSignEth())
		assert.False(t, cfg.CanVote())
		assert.Equal(t, uint64(5), cfg.Eth.MaxBlocksPerProposal)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BRIDGE_LOG_LEVEL", "debug")
		t.Setenv("BRIDGE_RELAY_INTERVAL", "30s")
		t.Setenv("BRIDGE_GOSH_CHECKER_ADDRESS", "0:"+strings.Repeat("c4", 32))
		t.Setenv("BRIDGE_GOSH_CHECKER_ABI", "abi/checker.abi.json")
		t.Setenv("BRIDGE_GOSH_PROPOSAL_ABI", "abi/proposal.abi.json")
		t.Setenv("BRIDGE_ETH_KEY_PATH", "/keys/eth.key")
		t.Setenv("BRIDGE_GOSH_KEYS_PATH", "/keys/gosh.keys.json")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 30*time.Second, cfg.Relay.Interval)
		assert.True(t, cfg.DepositsEnabled())
		assert.True(t, cfg.CanVote())
	})

	t.Run("missing required values", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BRIDGE_ETH_RPC_URL", "")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "ETH.RPC_URL")
	})

	t.Run("checker needs its abis", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BRIDGE_GOSH_CHECKER_ADDRESS", "0:"+strings.Repeat("c4", 32))

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.ErrorContains(t, err, "CHECKER_ABI")
	})

	t.Run("malformed duration", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BRIDGE_RELAY_CLAIM_TTL", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "read environment")
	})

	t.Run("invalid log level", func(t *testing.T) {
		setRequired(t)
		t.Setenv("BRIDGE_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.ErrorContains(t, err, "LOG_LEVEL")
	})
}
