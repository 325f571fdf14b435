// Package config loads the validator settings from the environment.
//
// Every variable carries the BRIDGE_ prefix, for example BRIDGE_ETH_RPC_URL
// or BRIDGE_GOSH_RECEIVER_ADDRESS.
package config

import (
	"fmt"
	"time"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/validator"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable.
const Prefix = "BRIDGE"

// Eth configures the Ethereum side.
type Eth struct {
	RPCURL      string `envconfig:"RPC_URL" validate:"required,url"`
	LockAddress string `envconfig:"LOCK_ADDRESS" validate:"required,eth_addr"`
	// KeyPath is the validator's ECDSA key, needed to vote and to propose
	// withdrawals.
	KeyPath string `envconfig:"KEY_PATH"`
	// EventsPath overrides the built-in event signature table.
	EventsPath          string `envconfig:"EVENTS_PATH"`
	DepositFunction     string `envconfig:"DEPOSIT_FUNCTION" default:"deposit" validate:"required"`
	CallDeposits        bool   `envconfig:"CALL_DEPOSITS"`
	MaxBlocksPerRequest uint64 `envconfig:"MAX_BLOCKS_PER_REQUEST" default:"1000" validate:"min=1"`
	MaxProposalSpan     uint64 `envconfig:"MAX_PROPOSAL_SPAN"`
	// MaxBlocksPerProposal caps the headers of one deposit proposal.
	MaxBlocksPerProposal uint64 `envconfig:"MAX_BLOCKS_PER_PROPOSAL" default:"20" validate:"min=1"`
	Retries              uint   `envconfig:"RETRIES" default:"3" validate:"min=1"`
	TokenCacheSize       int    `envconfig:"TOKEN_CACHE_SIZE" default:"256" validate:"min=1"`
	WaitReceipt          bool   `envconfig:"WAIT_RECEIPT" default:"true"`
}

// Gosh configures the GOSH side.
type Gosh struct {
	SidecarURL      string `envconfig:"SIDECAR_URL" validate:"required,url"`
	CheckerAddress  string `envconfig:"CHECKER_ADDRESS" validate:"omitempty,gosh_addr"`
	ReceiverAddress string `envconfig:"RECEIVER_ADDRESS" validate:"required,gosh_addr"`
	CheckerABI      string `envconfig:"CHECKER_ABI" validate:"required_with=CheckerAddress"`
	ProposalABI     string `envconfig:"PROPOSAL_ABI" validate:"required_with=CheckerAddress"`
	ReceiverABI     string `envconfig:"RECEIVER_ABI" validate:"required"`
	// KeysPath is the validator's GOSH key pair, needed only to vote.
	KeysPath     string `envconfig:"KEYS_PATH"`
	BurnFunction string `envconfig:"BURN_FUNCTION" default:"burnTokens" validate:"required"`
	Retries      uint   `envconfig:"RETRIES" default:"3" validate:"min=1"`
}

// Relay configures the validator loop.
type Relay struct {
	Interval    time.Duration `envconfig:"INTERVAL" default:"1m" validate:"min=1s"`
	ClaimTTL    time.Duration `envconfig:"CLAIM_TTL" default:"10m" validate:"min=1s"`
	Concurrency int           `envconfig:"CONCURRENCY" default:"8" validate:"min=1"`
}

// Redis configures the claim store.
type Redis struct {
	Addr      string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username  string `envconfig:"USERNAME"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB" validate:"min=0"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"bridge"`
}

// Telemetry configures OTLP export.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"gosh-proposer" validate:"required"`
}

// Config is the complete validator configuration.
type Config struct {
	LogLevel  string    `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Eth       Eth       `envconfig:"ETH"`
	Gosh      Gosh      `envconfig:"GOSH"`
	Relay     Relay     `envconfig:"RELAY"`
	Redis     Redis     `envconfig:"REDIS"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DepositsEnabled reports whether a checker contract is configured.
func (c Config) DepositsEnabled() bool {
	return c.Gosh.CheckerAddress != ""
}

// CanSignEth reports whether an Ethereum key is configured, which is
// enough to open withdrawal proposals.
func (c Config) CanSignEth() bool {
	return c.Eth.KeyPath != ""
}

// CanVote reports whether both validator keys are configured.
func (c Config) CanVote() bool {
	return c.Eth.KeyPath != "" && c.Gosh.KeysPath != ""
}
