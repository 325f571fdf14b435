package relay

import (
	"fmt"

	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

// Direction is a bridge flow.
type Direction string

const (
	// Deposit is the Ethereum to GOSH flow.
	Deposit Direction = "deposit"
	// Withdrawal is the GOSH to Ethereum flow.
	Withdrawal Direction = "withdrawal"
)

// Skip reasons for proposals that were not reconciled.
const (
	SkipAlreadyVoted = "already voted"
	SkipClaimHeld    = "claimed by another worker"
)

// Outcome is what happened to one proposal during a cycle.
type Outcome struct {
	Direction Direction
	Proposal  string
	Verdict   reconcile.Verdict
	// Skipped is set when the proposal was not reconciled.
	Skipped string
	Voted   bool
	// VoteTx is the Ethereum vote transaction of an accepted withdrawal.
	VoteTx string
}

func (o Outcome) String() string {
	switch {
	case o.Skipped != "":
		return fmt.Sprintf("%s %s: skipped (%s)", o.Direction, o.Proposal, o.Skipped)
	case o.Voted:
		return fmt.Sprintf("%s %s: %s, voted", o.Direction, o.Proposal, o.Verdict)
	default:
		return fmt.Sprintf("%s %s: %s", o.Direction, o.Proposal, o.Verdict)
	}
}
