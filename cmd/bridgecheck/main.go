// Command bridgecheck verifies, votes on and opens ETH-GOSH bridge
// proposals.
//
// It is configured through BRIDGE_* environment variables; see package
// config for the full list.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/bridgestat"
	"github.com/gosh-sh/gosh-proposer/internal/config"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/handlers/cli"
	"github.com/gosh-sh/gosh-proposer/internal/infra/ethereum"
	"github.com/gosh-sh/gosh-proposer/internal/infra/gosh"
	"github.com/gosh-sh/gosh-proposer/internal/infra/storage/redis"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/resilience/retry"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/telemetry"
	transporthttp "github.com/gosh-sh/gosh-proposer/internal/pkg/transport/http"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc"
	"github.com/gosh-sh/gosh-proposer/internal/proposer"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/gosh-sh/gosh-proposer/internal/relay"
	"github.com/gosh-sh/gosh-proposer/internal/votegate"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	deps, closeDeps, err := wire(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDeps()

	return cli.Run(ctx, deps)
}

// nodeRetry retries transport failures. Errors returned by the provider
// itself are final.
func nodeRetry(attempts uint) retry.Retry {
	return retry.New(
		retry.WithAttempts(attempts),
		retry.WithRetryIf(func(err error) bool {
			return !errors.Is(err, jsonrpc.ErrProviderReturnedError)
		}),
	)
}

func wire(ctx context.Context, cfg config.Config) (cli.Dependencies, func(), error) {
	lockAddress := common.HexToAddress(cfg.Eth.LockAddress)

	table, err := loadTable(cfg.Eth.EventsPath)
	if err != nil {
		return cli.Dependencies{}, nil, err
	}

	ethConn := jsonrpc.NewClient(cfg.Eth.RPCURL, jsonrpc.WithHTTPClient(transporthttp.NewClient(transporthttp.WithName("ethereum"))))
	ethClient := ethereum.NewClient(ethConn, ethereum.WithRetry(ethereum.NewRetry(cfg.Eth.Retries)))

	resolver, err := ethereum.NewTokenResolver(ethClient, cfg.Eth.TokenCacheSize)
	if err != nil {
		return cli.Dependencies{}, nil, fmt.Errorf("token cache: %w", err)
	}
	lock := ethereum.NewLock(ethClient, lockAddress)

	goshConn := jsonrpc.NewClient(cfg.Gosh.SidecarURL, jsonrpc.WithHTTPClient(transporthttp.NewClient(transporthttp.WithName("gosh"))))
	goshClient := gosh.NewClient(goshConn, gosh.WithRetry(nodeRetry(cfg.Gosh.Retries)))

	receiverABI, err := gosh.LoadABI(cfg.Gosh.ReceiverABI)
	if err != nil {
		return cli.Dependencies{}, nil, err
	}

	engine := reconcile.New(reconcile.Dependencies{
		Source:   ethClient,
		Target:   goshClient,
		Decoder:  gosh.NewDecoder(goshClient, receiverABI),
		Resolver: resolver,
		Table:    table,
	},
		reconcile.WithLockAddress(lockAddress),
		reconcile.WithReceiver(cfg.Gosh.ReceiverAddress),
		reconcile.WithBurnFunction(cfg.Gosh.BurnFunction),
		reconcile.WithDepositFunction(cfg.Eth.DepositFunction),
		reconcile.WithConcurrency(cfg.Relay.Concurrency),
		reconcile.WithMaxBlocksPerRequest(cfg.Eth.MaxBlocksPerRequest),
		reconcile.WithMaxProposalSpan(cfg.Eth.MaxProposalSpan),
	)

	relayDeps := relay.Dependencies{
		Engine:      engine,
		Withdrawals: lock,
	}

	var checker *gosh.Checker
	if cfg.DepositsEnabled() {
		checkerABI, err := gosh.LoadABI(cfg.Gosh.CheckerABI)
		if err != nil {
			return cli.Dependencies{}, nil, err
		}
		proposalABI, err := gosh.LoadABI(cfg.Gosh.ProposalABI)
		if err != nil {
			return cli.Dependencies{}, nil, err
		}

		checker = gosh.NewChecker(goshClient, cfg.Gosh.CheckerAddress, checkerABI, proposalABI)
		relayDeps.Deposits = checker
	}

	relayOpts := []relay.Option{
		relay.WithInterval(cfg.Relay.Interval),
		relay.WithClaimTTL(cfg.Relay.ClaimTTL),
		relay.WithCallDeposits(cfg.Eth.CallDeposits),
	}

	proposerDeps := proposer.Dependencies{
		Headers:  ethClient,
		Deposits: engine,
		Lock:     lock,
		Gosh:     goshClient,
		Burns:    engine,
	}
	if checker != nil {
		proposerDeps.Checker = checker
	}

	deps := cli.Dependencies{
		Checker: relay.New(relayDeps, relayOpts...),
		Headers: ethClient,
		Status:  bridgestat.New(lock, ethClient, goshClient, engine),
	}
	proposerOpts := []proposer.Option{proposer.WithMaxBlocks(cfg.Eth.MaxBlocksPerProposal)}

	closeDeps := func() {}
	if !cfg.CanSignEth() {
		logger.Info(ctx, "ethereum key not configured, voting and withdrawal proposals disabled")
		deps.Proposer = proposer.New(proposerDeps, proposerOpts...)
		return deps, closeDeps, nil
	}

	ethKey, err := ethereum.LoadKey(cfg.Eth.KeyPath)
	if err != nil {
		return cli.Dependencies{}, nil, err
	}

	var voterOpts []ethereum.VoterOption
	if cfg.Eth.WaitReceipt {
		voterOpts = append(voterOpts, ethereum.WithReceiptWait(0))
	}
	voter := ethereum.NewVoter(ethClient, lockAddress, ethKey, voterOpts...)

	proposerDeps.Withdrawals = voter
	deps.Proposer = proposer.New(proposerDeps, proposerOpts...)

	if !cfg.CanVote() {
		logger.Info(ctx, "gosh keys not configured, voting disabled")
		return deps, closeDeps, nil
	}

	claims, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, redis.WithKeyPrefix(cfg.Redis.KeyPrefix))
	if err != nil {
		return cli.Dependencies{}, nil, fmt.Errorf("claim store: %w", err)
	}
	closeDeps = func() { _ = claims.Close() }

	relayDeps.Claims = claims
	relayDeps.WithdrawalVoter = voter
	relayDeps.Gate = votegate.New(ethClient, lockAddress)
	relayDeps.Validator = voter.Address()

	if checker != nil {
		keys, err := gosh.LoadKeys(cfg.Gosh.KeysPath)
		if err != nil {
			closeDeps()
			return cli.Dependencies{}, nil, err
		}
		relayDeps.DepositVoter = gosh.NewValidator(checker, keys)
	}

	deps.Relay = relay.New(relayDeps, relayOpts...)

	logger.Info(ctx, "voting enabled", "validator", voter.Address().Hex())

	return deps, closeDeps, nil
}

func loadTable(path string) (eventlog.Table, error) {
	if path == "" {
		return eventlog.DefaultTable()
	}

	return eventlog.LoadTableFile(path)
}
