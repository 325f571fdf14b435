package gosh

import "context"

// Validator votes on deposit proposals with a fixed key pair.
type Validator struct {
	checker *Checker
	keys    Keys
}

// NewValidator binds keys to checker.
func NewValidator(checker *Checker, keys Keys) *Validator {
	return &Validator{checker: checker, keys: keys}
}

// VoteForDeposit approves the proposal at address proposal.
func (v *Validator) VoteForDeposit(ctx context.Context, proposal string) error {
	return v.checker.VoteForDeposit(ctx, proposal, v.keys)
}
