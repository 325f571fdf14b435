// Package relay runs the validator loop: it lists the open bridge proposals
// in both directions, verifies each one against the source chain and votes
// for those that hold.
package relay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/gosh-sh/gosh-proposer/internal/votegate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/gosh-sh/gosh-proposer/internal/relay"

// Defaults applied by New when the matching option is not given.
const (
	// DefaultInterval is the pause between two cycles of the loop.
	DefaultInterval = time.Minute
	// DefaultClaimTTL is how long a claim on a proposal survives without a vote.
	DefaultClaimTTL = 10 * time.Minute
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the validator loop.
type Service interface {
	// Start runs a cycle immediately and then every interval in the
	// background until Close is called or ctx is cancelled. A cycle that
	// fails is logged and the loop carries on with the next tick.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once
	// without a Close in between.
	Start(ctx context.Context) error

	// Close stops the loop and waits for the running cycle to return. It is
	// safe to call Close on a service that was never started, and to call it
	// more than once.
	Close()

	// RunCycle verifies and votes on the open proposals of every configured
	// direction once. Each proposal is claimed before it is verified, and a
	// vote is only sent for an accepted verdict.
	//
	// Outcomes of both directions are returned even when one of them fails.
	// The returned error joins the per-direction failures; rejected
	// proposals are outcomes, not errors.
	RunCycle(ctx context.Context) ([]Outcome, error)

	// CheckDeposits verifies the open deposit proposals without claiming or
	// voting. Dependencies.Deposits must be set. The first fatal error
	// aborts the pass and is returned with the outcomes gathered so far.
	CheckDeposits(ctx context.Context) ([]Outcome, error)

	// CheckWithdrawals verifies the open withdrawal proposals without
	// claiming or voting. Dependencies.Withdrawals must be set. The first
	// fatal error aborts the pass and is returned with the outcomes gathered
	// so far.
	CheckWithdrawals(ctx context.Context) ([]Outcome, error)
}

// Dependencies are the collaborators of the loop. A direction whose source
// is nil is not processed.
type Dependencies struct {
	// Engine verifies a proposal against its source chain. Required.
	Engine reconcile.Engine
	// Claims prevents two workers from voting on the same proposal. Required
	// for RunCycle, unused by the check-only operations.
	Claims ClaimStore

	// Deposits lists the open deposit proposals on the GOSH checker.
	Deposits DepositSource
	// DepositVoter approves an accepted deposit proposal on GOSH.
	DepositVoter DepositVoter

	// Withdrawals lists the open withdrawal proposals on the Ethereum lock.
	Withdrawals WithdrawalSource
	// WithdrawalVoter approves an accepted withdrawal proposal on Ethereum.
	WithdrawalVoter WithdrawalVoter
	// Gate reports whether Validator already voted for a withdrawal
	// proposal. Required when withdrawals are voted on; it is consulted
	// before the claim store.
	Gate votegate.Gate
	// Validator is the Ethereum address whose votes Gate looks up.
	Validator common.Address
}

type config struct {
	interval     time.Duration // pause between cycles
	claimTTL     time.Duration // lifetime of an unconfirmed claim
	callDeposits bool          // verify deposits from direct lock calls
}

// Option configures the service.
type Option func(*config)

// WithInterval sets the pause between cycles. Non-positive values are ignored.
//
// Default: 1 minute.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithClaimTTL sets how long a claim stays valid when no vote follows.
// Non-positive values are ignored.
//
// Default: 10 minutes.
func WithClaimTTL(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.claimTTL = d
		}
	}
}

// WithCallDeposits verifies deposits from direct lock calls instead of
// Deposited events. The transactions each proposal names are then fetched
// and decoded one by one.
//
// Default: false.
func WithCallDeposits(enabled bool) Option {
	return func(c *config) {
		c.callDeposits = enabled
	}
}

type closeFunc func()

type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool       // whether the loop is running
	closeFunc closeFunc  // stops the loop and waits for it, nil when idle

	deps     Dependencies
	cfg      config
	verdicts metric.Int64Counter // nil when the meter could not create it
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New creates the validator loop. The loop does not run until Start is
// called. A verdict counter is registered on the global meter provider;
// failing to create it is logged and verdicts are then not counted.
func New(deps Dependencies, opts ...Option) *service {
	cfg := config{
		interval: DefaultInterval,
		claimTTL: DefaultClaimTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	verdicts, err := otel.Meter(meterName).Int64Counter(
		"bridge.proposals.verdicts",
		metric.WithDescription("Proposals reconciled, by direction and outcome."),
	)
	if err != nil {
		logger.Warn(context.Background(), "verdict counter unavailable", "error", err)
	}

	return &service{
		deps:     deps,
		cfg:      cfg,
		verdicts: verdicts,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.loop(ctx)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

func (s *service) loop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunCycle(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "cycle aborted", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *service) RunCycle(ctx context.Context) ([]Outcome, error) {
	var (
		outcomes []Outcome
		errs     []error
	)

	if s.deps.Deposits != nil {
		out, err := s.processDeposits(ctx, true)
		outcomes = append(outcomes, out...)
		errs = append(errs, err)
	}

	if s.deps.Withdrawals != nil {
		out, err := s.processWithdrawals(ctx, true)
		outcomes = append(outcomes, out...)
		errs = append(errs, err)
	}

	return outcomes, errors.Join(errs...)
}

func (s *service) CheckDeposits(ctx context.Context) ([]Outcome, error) {
	return s.processDeposits(ctx, false)
}

func (s *service) CheckWithdrawals(ctx context.Context) ([]Outcome, error) {
	return s.processWithdrawals(ctx, false)
}

// claim reserves proposal for this worker. It returns a skip reason when
// the proposal must be left alone.
func (s *service) claim(ctx context.Context, direction Direction, proposal string) (string, error) {
	err := s.deps.Claims.ClaimProposal(ctx, direction, proposal, s.cfg.claimTTL)
	switch {
	case err == nil:
		return "", nil
	case errors.Is(err, ErrAlreadyVoted):
		return SkipAlreadyVoted, nil
	case errors.Is(err, ErrClaimHeld):
		return SkipClaimHeld, nil
	default:
		return "", err
	}
}

func (s *service) record(ctx context.Context, direction Direction, v reconcile.Verdict, err error) {
	if s.verdicts == nil {
		return
	}

	outcome := "accepted"
	switch {
	case err != nil:
		outcome = "fatal"
	case !v.Accepted:
		outcome = string(v.Reason)
	}

	s.verdicts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("direction", string(direction)),
		attribute.String("reason", outcome),
	))
}
