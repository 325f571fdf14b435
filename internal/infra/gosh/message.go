package gosh

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

// msgTypeInternal is the msg_type of internal messages.
const msgTypeInternal = 0

const transactionsQuery = `query($addr: String!, $start: Int, $end: Int, $after: String){
  blockchain {
    account(address: $addr) {
      transactions(
        allow_latest_inconsistent_data: true,
        after: $after,
        master_seq_no_range: { start: $start, end: $end }
      ) {
        edges {
          node {
            in_message { id body msg_type }
            aborted
            lt(format: DEC)
            block_id
            id
          }
        }
        pageInfo { hasNextPage endCursor }
      }
    }
  }
}`

type transactionNode struct {
	InMessage *struct {
		ID      string  `json:"id"`
		Body    *string `json:"body"`
		MsgType int     `json:"msg_type"`
	} `json:"in_message"`
	Aborted bool   `json:"aborted"`
	Lt      string `json:"lt"`
	BlockID string `json:"block_id"`
	ID      string `json:"id"`
}

type transactionsPage struct {
	Blockchain struct {
		Account *struct {
			Transactions struct {
				Edges []struct {
					Node transactionNode `json:"node"`
				} `json:"edges"`
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
			} `json:"transactions"`
		} `json:"account"`
	} `json:"blockchain"`
}

// InboundMessages returns the internal messages that delivered a body to
// address in transactions of master blocks [startSeqNo, endSeqNo), in chain
// order. Aborted transactions are excluded.
func (c *client) InboundMessages(ctx context.Context, address string, startSeqNo, endSeqNo uint64) ([]reconcile.Message, error) {
	var (
		messages []reconcile.Message
		after    string
	)

	for page := 0; ; page++ {
		var data transactionsPage

		err := c.query(ctx, &data, transactionsQuery, map[string]any{
			"addr":  address,
			"start": startSeqNo,
			"end":   endSeqNo,
			"after": after,
		})
		if err != nil {
			return nil, fmt.Errorf("transactions of %s page %d: %w", address, page, err)
		}

		account := data.Blockchain.Account
		if account == nil {
			return nil, fmt.Errorf("%w: account %s not found", reconcile.ErrTransport, address)
		}

		for _, edge := range account.Transactions.Edges {
			msg, ok, err := toMessage(edge.Node)
			if err != nil {
				return nil, err
			}
			if ok {
				messages = append(messages, msg)
			}
		}

		info := account.Transactions.PageInfo
		if !info.HasNextPage {
			break
		}
		if info.EndCursor == "" || info.EndCursor == after {
			return nil, fmt.Errorf("%w: transactions of %s: cursor did not advance", reconcile.ErrTransport, address)
		}
		after = info.EndCursor
	}

	logger.Debug(ctx, "inbound messages queried", "address", address, "start", startSeqNo, "end", endSeqNo, "messages", len(messages))

	return messages, nil
}

func toMessage(node transactionNode) (reconcile.Message, bool, error) {
	in := node.InMessage
	if node.Aborted || in == nil || in.Body == nil || in.MsgType != msgTypeInternal {
		return reconcile.Message{}, false, nil
	}

	lt, err := strconv.ParseUint(node.Lt, 10, 64)
	if err != nil {
		return reconcile.Message{}, false, fmt.Errorf("transaction %s: lt %q: %w", node.ID, node.Lt, err)
	}

	return reconcile.Message{
		ID:      strings.TrimPrefix(in.ID, "message/"),
		Body:    *in.Body,
		TxID:    common.HexToHash(strings.TrimPrefix(node.ID, "transaction/")),
		BlockID: node.BlockID,
		Lt:      lt,
	}, true, nil
}
