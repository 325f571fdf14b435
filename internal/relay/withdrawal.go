package relay

import (
	"context"
	"fmt"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

// processWithdrawals mirrors processDeposits for ELock withdrawal
// proposals. When voting, proposals the validator already voted on are
// skipped before anything else.
func (s *service) processWithdrawals(ctx context.Context, vote bool) ([]Outcome, error) {
	ctx = logger.Derive(ctx, "direction", Withdrawal)

	proposals, err := s.deps.Withdrawals.WithdrawalProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list withdrawal proposals: %w", err)
	}

	logger.Info(ctx, "withdrawal proposals listed", "count", len(proposals))

	outcomes := make([]Outcome, 0, len(proposals))
	for _, p := range proposals {
		outcome, err := s.processWithdrawal(logger.Derive(ctx, "proposal", p.Key.Hex()), p, vote)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (s *service) processWithdrawal(ctx context.Context, p reconcile.WithdrawalProposal, vote bool) (Outcome, error) {
	key := p.Key.Hex()
	outcome := Outcome{Direction: Withdrawal, Proposal: key}

	if vote {
		voted, err := s.deps.Gate.HasVoted(ctx, p.Key, s.deps.Validator)
		if err != nil {
			return outcome, fmt.Errorf("vote gate for withdrawal proposal %s: %w", key, err)
		}
		if voted {
			logger.Debug(ctx, "withdrawal proposal skipped", "reason", SkipAlreadyVoted)
			outcome.Skipped = SkipAlreadyVoted
			return outcome, nil
		}

		skip, err := s.claim(ctx, Withdrawal, key)
		if err != nil {
			return outcome, fmt.Errorf("claim withdrawal proposal %s: %w", key, err)
		}
		if skip != "" {
			logger.Debug(ctx, "withdrawal proposal skipped", "reason", skip)
			outcome.Skipped = skip
			return outcome, nil
		}
	}

	v, err := s.deps.Engine.CheckWithdrawal(ctx, p)
	s.record(ctx, Withdrawal, v, err)
	if err != nil {
		logger.Error(ctx, "withdrawal reconciliation failed", "from", p.From, "till", p.Till, "error", err)
		return outcome, fmt.Errorf("withdrawal proposal %s: %w", key, err)
	}

	outcome.Verdict = v
	if !v.Accepted {
		logger.Warn(ctx, "withdrawal proposal rejected", "reason", v.Reason, "stage", v.Stage, "detail", v.Detail)
		return outcome, nil
	}

	logger.Info(ctx, "withdrawal proposal accepted", "burns", len(p.Burns))
	if !vote {
		return outcome, nil
	}

	tx, err := s.deps.WithdrawalVoter.VoteForWithdrawal(ctx, p.Key)
	if err != nil {
		return outcome, fmt.Errorf("vote for withdrawal proposal %s: %w", key, err)
	}

	if err := s.deps.Claims.MarkProposalVoted(ctx, Withdrawal, key); err != nil {
		return outcome, fmt.Errorf("mark withdrawal proposal %s: %w", key, err)
	}

	outcome.Voted = true
	outcome.VoteTx = tx.Hex()
	return outcome, nil
}
