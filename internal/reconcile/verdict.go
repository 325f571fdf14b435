package reconcile

import "fmt"

// State is a step of a reconciliation.
type State string

const (
	StateStart                State = "Start"
	StateHeadersVerified      State = "HeadersVerified"
	StateCounterDeltaComputed State = "CounterDeltaComputed"
	StateFactsReDerived       State = "FactsReDerived"
	StateVerdict              State = "Verdict"
)

// Reason explains a rejection.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnresolvedBlock Reason = "UnresolvedBlock"
	ReasonInvalidRange    Reason = "InvalidRange"
	ReasonCountMismatch   Reason = "CountMismatch"
	ReasonFactMismatch    Reason = "FactMismatch"
	ReasonMalformedRecord Reason = "MalformedRecord"
)

// Verdict is the outcome of a reconciliation that ran to completion. Stage
// is the last state reached before the verdict was emitted.
type Verdict struct {
	Accepted bool
	Reason   Reason
	Stage    State
	Detail   string
}

func (v Verdict) String() string {
	if v.Accepted {
		return "accepted"
	}

	return fmt.Sprintf("rejected: %s at %s: %s", v.Reason, v.Stage, v.Detail)
}

func accept() Verdict {
	return Verdict{Accepted: true, Stage: StateFactsReDerived}
}

func reject(reason Reason, stage State, format string, args ...any) Verdict {
	return Verdict{
		Reason: reason,
		Stage:  stage,
		Detail: fmt.Sprintf(format, args...),
	}
}
