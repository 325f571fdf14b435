// Package gosh talks to the GOSH network through an ever-sdk JSON-RPC
// sidecar: GraphQL queries, message body decoding and contract calls.
package gosh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/resilience/retry"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

// Sidecar methods.
const (
	methodQuery           = "net.query"
	methodQueryCollection = "net.query_collection"
	methodDecodeBody      = "abi.decode_message_body"
	methodEncodeMessage   = "abi.encode_message"
	methodRunTVM          = "tvm.run_tvm"
	methodProcessMessage  = "processing.process_message"
)

var errNullResult = errors.New("null result")

// ABI is a contract ABI in the sidecar's tagged form.
type ABI struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// LoadABI reads a JSON ABI file.
func LoadABI(path string) (ABI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ABI{}, fmt.Errorf("read abi %s: %w", path, err)
	}

	if !json.Valid(raw) {
		return ABI{}, fmt.Errorf("abi %s is not valid JSON", path)
	}

	return ABI{Type: "Json", Value: string(raw)}, nil
}

// client is a sidecar client.
type client struct {
	conn  jsonrpc.Client
	retry retry.Retry
}

var _ reconcile.TargetChain = (*client)(nil)

// Option configures a client.
type Option func(*client)

// WithRetry sets the retry policy applied to sidecar calls.
func WithRetry(r retry.Retry) Option {
	return func(c *client) {
		c.retry = r
	}
}

// NewClient creates a GOSH client over conn.
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

// call invokes method with a single parameter object. Sidecar-level errors
// keep jsonrpc.ErrProviderReturnedError in their chain; every failure is
// wrapped with reconcile.ErrTransport except for decoding errors.
func (c *client) call(ctx context.Context, out any, method string, params any) error {
	var data json.RawMessage

	err := c.retry.Execute(ctx, func() error {
		var err error
		data, err = c.conn.Fetch(ctx, method, params)
		return err
	})
	if err != nil {
		logger.Debug(ctx, "sidecar call failed", "method", method, "error", err)
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

type queryParams struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// query runs a GraphQL query and decodes its data object into out.
func (c *client) query(ctx context.Context, out any, query string, variables map[string]any) error {
	var resp struct {
		Result struct {
			Data   json.RawMessage `json:"data"`
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"result"`
	}

	if err := c.call(ctx, &resp, methodQuery, queryParams{Query: query, Variables: variables}); err != nil {
		return err
	}

	if len(resp.Result.Errors) > 0 {
		return fmt.Errorf("%w: query: %s", reconcile.ErrTransport, resp.Result.Errors[0].Message)
	}

	if err := json.Unmarshal(resp.Result.Data, out); err != nil {
		return fmt.Errorf("decode query data: %w", err)
	}

	return nil
}
