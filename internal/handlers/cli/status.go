package cli

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/bridgestat"
	"github.com/gosh-sh/gosh-proposer/internal/extract"

	"github.com/urfave/cli/v3"
)

type burnView struct {
	Dest    common.Address `json:"dest"`
	Value   string         `json:"value"`
	TxID    common.Hash    `json:"tx_id"`
	EthRoot common.Address `json:"eth_root"`
}

type statusView struct {
	DepositCounter       string            `json:"deposit_counter"`
	WithdrawalCounter    string            `json:"withdrawal_counter"`
	TotalSupply          string            `json:"total_supply"`
	CollectedCommissions string            `json:"collected_commissions"`
	LastProcessedBlock   string            `json:"last_processed_block"`
	EthBlock             uint64            `json:"eth_block"`
	GoshSeqNo            uint64            `json:"gosh_seq_no"`
	GoshBlock            string            `json:"gosh_block"`
	QueuedBurns          int               `json:"queued_burns"`
	QueuedValue          map[string]string `json:"queued_value"`
}

func burnViews(burns []extract.BurnRecord) []burnView {
	views := make([]burnView, 0, len(burns))
	for _, b := range burns {
		views = append(views, burnView{Dest: b.Dest, Value: decimal(b.Value), TxID: b.TxID, EthRoot: b.EthRoot})
	}
	return views
}

func newStatusView(s bridgestat.Snapshot) statusView {
	queued := make(map[string]string, len(s.QueuedValue))
	for root, v := range s.QueuedValue {
		queued[root.Hex()] = decimal(v)
	}

	return statusView{
		DepositCounter:       decimal(s.DepositCounter),
		WithdrawalCounter:    decimal(s.WithdrawalCounter),
		TotalSupply:          decimal(s.TotalSupply),
		CollectedCommissions: decimal(s.CollectedCommissions),
		LastProcessedBlock:   s.LastProcessedBlock,
		EthBlock:             s.EthBlock,
		GoshSeqNo:            s.GoshBlock.SeqNo,
		GoshBlock:            s.GoshBlock.ID,
		QueuedBurns:          len(s.QueuedBurns),
		QueuedValue:          queued,
	}
}

// statusCommand prints a bridge snapshot.
//
//	bridgecheck status
func statusCommand(src StatusSource) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Prints the ELock counters and balances, both chain heads and the queued burn totals.",
		Usage:       "Read-only bridge snapshot.",
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := src.Take(ctx)
			if err != nil {
				return err
			}
			return writeJSON(c.Root().Writer, newStatusView(s))
		},
	}
}

// burnsCommand lists the burns not yet covered by a withdrawal.
//
//	bridgecheck burns
func burnsCommand(src StatusSource) *cli.Command {
	return &cli.Command{
		Name:        "burns",
		Description: "Lists the burns received on GOSH since the last processed withdrawal block.",
		Usage:       "Read-only list of queued burns.",
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := src.Take(ctx)
			if err != nil {
				return err
			}
			return writeJSON(c.Root().Writer, burnViews(s.QueuedBurns))
		},
	}
}
