package gosh

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

const masterchainID = -1

const seqNoQuery = `query($block_id: String!){
  blockchain {
    block(hash: $block_id) {
      seq_no workchain_id
    }
  }
}`

const latestMasterBlockQuery = `query {
  blockchain {
    blocks(allow_latest_inconsistent_data: true, last: 1, workchain: -1) {
      edges { node { seq_no id } }
    }
  }
}`

// MasterSeqNo returns the sequence number of the masterchain block blockID.
// Unknown blocks and blocks of other workchains yield
// reconcile.ErrBlockNotFound.
func (c *client) MasterSeqNo(ctx context.Context, blockID string) (uint64, error) {
	var data struct {
		Blockchain struct {
			Block *struct {
				SeqNo       uint64 `json:"seq_no"`
				WorkchainID int    `json:"workchain_id"`
			} `json:"block"`
		} `json:"blockchain"`
	}

	if err := c.query(ctx, &data, seqNoQuery, map[string]any{"block_id": blockID}); err != nil {
		return 0, fmt.Errorf("seq no of %s: %w", blockID, err)
	}

	block := data.Blockchain.Block
	if block == nil {
		return 0, fmt.Errorf("%w: %s", reconcile.ErrBlockNotFound, blockID)
	}

	if block.WorkchainID != masterchainID {
		return 0, fmt.Errorf("%w: %s is in workchain %d", reconcile.ErrBlockNotFound, blockID, block.WorkchainID)
	}

	return block.SeqNo, nil
}

// LatestMasterBlock returns the newest masterchain block.
func (c *client) LatestMasterBlock(ctx context.Context) (reconcile.MasterBlock, error) {
	var data struct {
		Blockchain struct {
			Blocks struct {
				Edges []struct {
					Node struct {
						SeqNo uint64 `json:"seq_no"`
						ID    string `json:"id"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"blocks"`
		} `json:"blockchain"`
	}

	if err := c.query(ctx, &data, latestMasterBlockQuery, nil); err != nil {
		return reconcile.MasterBlock{}, fmt.Errorf("latest master block: %w", err)
	}

	edges := data.Blockchain.Blocks.Edges
	if len(edges) == 0 {
		return reconcile.MasterBlock{}, fmt.Errorf("%w: no master block", reconcile.ErrBlockNotFound)
	}

	return reconcile.MasterBlock{
		SeqNo: edges[0].Node.SeqNo,
		ID:    strings.TrimPrefix(edges[0].Node.ID, "block/"),
	}, nil
}
