package cli

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/proposer"

	"github.com/urfave/cli/v3"
)

type transferView struct {
	Pubkey  common.Hash    `json:"pubkey"`
	Value   string         `json:"value"`
	Hash    common.Hash    `json:"hash"`
	Symbol  string         `json:"symbol"`
	EthRoot common.Address `json:"eth_root"`
}

type depositProposalView struct {
	Submitted bool           `json:"submitted"`
	From      common.Hash    `json:"from"`
	FromBlock uint64         `json:"from_block"`
	Till      *common.Hash   `json:"till,omitempty"`
	TillBlock uint64         `json:"till_block,omitempty"`
	Blocks    int            `json:"blocks"`
	Transfers []transferView `json:"transfers"`
}

type withdrawalProposalView struct {
	Submitted bool         `json:"submitted"`
	From      string       `json:"from"`
	Till      string       `json:"till"`
	Burns     []burnView   `json:"burns"`
	Tx        *common.Hash `json:"tx,omitempty"`
}

func newDepositProposalView(r proposer.DepositResult) depositProposalView {
	v := depositProposalView{
		Submitted: r.Submitted,
		From:      r.From,
		FromBlock: r.FromBlock,
		TillBlock: r.TillBlock,
		Blocks:    r.Blocks,
		Transfers: make([]transferView, 0, len(r.Transfers)),
	}
	if r.Submitted {
		v.Till = &r.Till
	}

	for _, t := range r.Transfers {
		v.Transfers = append(v.Transfers, transferView{
			Pubkey:  t.Pubkey,
			Value:   decimal(t.Value),
			Hash:    t.Hash,
			Symbol:  t.Root.Symbol,
			EthRoot: t.Root.EthRoot,
		})
	}

	return v
}

func newWithdrawalProposalView(r proposer.WithdrawalResult) withdrawalProposalView {
	v := withdrawalProposalView{
		Submitted: r.Submitted,
		From:      r.From,
		Till:      r.Till,
		Burns:     burnViews(r.Burns),
	}
	if r.Submitted {
		v.Tx = &r.Tx
	}

	return v
}

// proposeCommand opens one proposal and prints what was sent.
//
//	bridgecheck propose deposits
//	bridgecheck propose withdrawals
func proposeCommand(svc proposer.Service) *cli.Command {
	return &cli.Command{
		Name:        "propose",
		Description: "Opens a proposal for the activity not yet bridged in one direction.",
		Usage:       "Sends at most one proposal and exits.",
		Commands: []*cli.Command{
			{
				Name:  "deposits",
				Usage: "Sends the Ethereum headers after the checker's last block to GOSH.",
				Action: func(ctx context.Context, c *cli.Command) error {
					if svc == nil {
						return ErrProposingDisabled
					}

					r, err := svc.ProposeDeposits(ctx)
					if err != nil {
						return err
					}
					return writeJSON(c.Root().Writer, newDepositProposalView(r))
				},
			},
			{
				Name:  "withdrawals",
				Usage: "Sends the burns received since the last processed GOSH block to ELock.",
				Action: func(ctx context.Context, c *cli.Command) error {
					if svc == nil {
						return ErrProposingDisabled
					}

					r, err := svc.ProposeWithdrawal(ctx)
					if err != nil {
						return err
					}
					return writeJSON(c.Root().Writer, newWithdrawalProposalView(r))
				},
			},
		},
	}
}
