package relay

import (
	"context"
	"fmt"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

// processDeposits reconciles every open deposit proposal. With vote set,
// proposals are claimed first and accepted ones are voted for. The first
// fatal error aborts the pass.
func (s *service) processDeposits(ctx context.Context, vote bool) ([]Outcome, error) {
	ctx = logger.Derive(ctx, "direction", Deposit)

	proposals, err := s.deps.Deposits.DepositProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deposit proposals: %w", err)
	}

	logger.Info(ctx, "deposit proposals listed", "count", len(proposals))

	outcomes := make([]Outcome, 0, len(proposals))
	for _, p := range proposals {
		outcome, err := s.processDeposit(logger.Derive(ctx, "proposal", p.Key), p, vote)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (s *service) processDeposit(ctx context.Context, p reconcile.DepositProposal, vote bool) (Outcome, error) {
	outcome := Outcome{Direction: Deposit, Proposal: p.Key}

	if vote {
		skip, err := s.claim(ctx, Deposit, p.Key)
		if err != nil {
			return outcome, fmt.Errorf("claim deposit proposal %s: %w", p.Key, err)
		}
		if skip != "" {
			logger.Debug(ctx, "deposit proposal skipped", "reason", skip)
			outcome.Skipped = skip
			return outcome, nil
		}
	}

	check := s.deps.Engine.CheckDeposit
	if s.cfg.callDeposits {
		check = s.deps.Engine.CheckCallDeposit
	}

	v, err := check(ctx, p)
	s.record(ctx, Deposit, v, err)
	if err != nil {
		logger.Error(ctx, "deposit reconciliation failed", "from", p.From.Hex(), "till", p.Till.Hex(), "error", err)
		return outcome, fmt.Errorf("deposit proposal %s: %w", p.Key, err)
	}

	outcome.Verdict = v
	if !v.Accepted {
		logger.Warn(ctx, "deposit proposal rejected", "reason", v.Reason, "stage", v.Stage, "detail", v.Detail)
		return outcome, nil
	}

	logger.Info(ctx, "deposit proposal accepted", "transfers", len(p.Transfers))
	if !vote {
		return outcome, nil
	}

	if err := s.deps.DepositVoter.VoteForDeposit(ctx, p.Key); err != nil {
		return outcome, fmt.Errorf("vote for deposit proposal %s: %w", p.Key, err)
	}

	if err := s.deps.Claims.MarkProposalVoted(ctx, Deposit, p.Key); err != nil {
		return outcome, fmt.Errorf("mark deposit proposal %s: %w", p.Key, err)
	}

	outcome.Voted = true
	return outcome, nil
}
