// Package ethereum reads the Ethereum chain and the ELock contract over a
// JSON-RPC connection.
package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/resilience/retry"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
	"github.com/gosh-sh/gosh-proposer/internal/votegate"
)

// errNullResult is returned by call when the node answers with a JSON null.
var errNullResult = errors.New("null result")

// client implements the chain reads needed by the reconciliation engine and
// the vote gate.
type client struct {
	conn  jsonrpc.Client
	retry retry.Retry
}

var (
	_ reconcile.SourceChain  = (*client)(nil)
	_ votegate.StorageReader = (*client)(nil)
)

// Option configures a client.
type Option func(*client)

// WithRetry sets the retry policy applied to every node call. Provider
// (JSON-RPC level) errors are never retried.
func WithRetry(r retry.Retry) Option {
	return func(c *client) {
		c.retry = r
	}
}

// NewClient creates an Ethereum client over conn. Without WithRetry every
// call is attempted once.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:  conn,
		retry: retry.New(retry.WithAttempts(1)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewRetry returns the default retry policy for node calls.
func NewRetry(attempts uint) retry.Retry {
	return retry.New(
		retry.WithAttempts(attempts),
		retry.WithRetryIf(func(err error) bool {
			return !errors.Is(err, jsonrpc.ErrProviderReturnedError)
		}),
	)
}

// call fetches method and decodes the result into out. Failures to reach the
// node are wrapped with reconcile.ErrTransport; a null result is reported as
// errNullResult.
func (c *client) call(ctx context.Context, out any, method string, params ...any) error {
	var data json.RawMessage

	err := c.retry.Execute(ctx, func() error {
		var err error
		data, err = c.conn.Fetch(ctx, method, params...)
		return err
	})
	if err != nil {
		logger.Debug(ctx, "node call failed", "method", method, "error", err)
		return fmt.Errorf("%w: %s: %w", reconcile.ErrTransport, method, err)
	}

	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNullResult
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}

	return nil
}
