package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// DepositEvent is the name of the ELock deposit event.
const DepositEvent = "Deposited"

// defaultResolveLimit bounds concurrent token lookups per extraction.
const defaultResolveLimit = 4

type depositConfig struct {
	resolveLimit int
}

// DepositOption customizes ExtractDeposits.
type DepositOption func(*depositConfig)

// WithResolveLimit sets how many distinct tokens are resolved concurrently.
func WithResolveLimit(n int) DepositOption {
	return func(c *depositConfig) {
		if n > 0 {
			c.resolveLimit = n
		}
	}
}

// pendingDeposit is a decoded deposit whose token is not yet resolved.
type pendingDeposit struct {
	token  common.Address
	record TransferRecord
}

// ExtractDeposits decodes logs with table and returns one TransferRecord per
// deposit event, in input order. Logs that are unrecognized or fail to decode
// are skipped. A deposit event missing token, value or pubkey fails the whole
// extraction with ErrMissingField.
//
// Each distinct token is resolved at most once per call.
func ExtractDeposits(ctx context.Context, logs []eventlog.RawLog, table eventlog.Table, resolver TokenResolver, opts ...DepositOption) ([]TransferRecord, error) {
	cfg := depositConfig{resolveLimit: defaultResolveLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	pending := make([]pendingDeposit, 0, len(logs))
	tokens := make(map[common.Address]struct{})

	for _, raw := range logs {
		if raw.Removed {
			continue
		}

		event, err := eventlog.Decode(raw, table)
		if err != nil {
			if !errors.Is(err, eventlog.ErrUnrecognized) {
				logger.Warn(ctx, "skipping undecodable log", "tx", raw.TxHash.Hex(), "logIndex", uint(raw.LogIndex), "error", err)
			}
			continue
		}

		if event.Name != DepositEvent {
			continue
		}

		p, err := parseDeposit(event)
		if err != nil {
			return nil, err
		}

		pending = append(pending, p)
		tokens[p.token] = struct{}{}
	}

	roots, err := resolveTokens(ctx, tokens, newMemo(resolver), cfg.resolveLimit)
	if err != nil {
		return nil, err
	}

	records := make([]TransferRecord, len(pending))
	for i, p := range pending {
		p.record.Root = roots[p.token]
		records[i] = p.record
	}

	return records, nil
}

func parseDeposit(event eventlog.DecodedEvent) (pendingDeposit, error) {
	fields := make(map[string]string, 3)
	for _, name := range []string{"token", "value", "pubkey"} {
		v, ok := event.Params[name]
		if !ok {
			return pendingDeposit{}, fmt.Errorf("%w: %s in tx %s has no %q", ErrMissingField, event.Name, event.TxHash.Hex(), name)
		}
		fields[name] = v
	}

	if !common.IsHexAddress(fields["token"]) {
		return pendingDeposit{}, fmt.Errorf("%w: token %q in tx %s", ErrMalformedRecord, fields["token"], event.TxHash.Hex())
	}

	value, err := ParseUint(fields["value"])
	if err != nil {
		return pendingDeposit{}, fmt.Errorf("value in tx %s: %w", event.TxHash.Hex(), err)
	}

	pubkey, err := ParseUint(fields["pubkey"])
	if err != nil {
		return pendingDeposit{}, fmt.Errorf("pubkey in tx %s: %w", event.TxHash.Hex(), err)
	}

	return pendingDeposit{
		token: common.HexToAddress(fields["token"]),
		record: TransferRecord{
			Pubkey: common.BigToHash(pubkey),
			Value:  value,
			Hash:   event.TxHash,
		},
	}, nil
}

// resolveTokens resolves every token concurrently through the memo.
func resolveTokens(ctx context.Context, tokens map[common.Address]struct{}, resolver *memo, limit int) (map[common.Address]TokenRoot, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for token := range tokens {
		g.Go(func() error {
			if _, err := resolver.Resolve(gctx, token); err != nil {
				return fmt.Errorf("resolve token %s: %w", token.Hex(), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	roots := make(map[common.Address]TokenRoot, len(tokens))
	for token := range tokens {
		root, err := resolver.Resolve(ctx, token)
		if err != nil {
			return nil, err
		}
		roots[token] = root
	}

	return roots, nil
}
