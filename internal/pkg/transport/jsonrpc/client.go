// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP with retries. It
// is shared by the Ethereum node client and the GOSH SDK sidecar client.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	transporthttp "github.com/gosh-sh/gosh-proposer/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// ErrUnexpectedStatus is returned for non-2xx HTTP responses without a JSON-RPC body.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	// A null result is returned as-is; callers decide whether it means "not found".
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default Client implementation.
type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
	headers          http.Header
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

type config struct {
	httpClient   *retryablehttp.Client
	headers      http.Header
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// Option customizes the client.
type Option func(*config)

// NewClient creates a client for providerEndpoint. Unless WithHTTPClient is
// given, a retrying HTTP client is built from the timeout and retry options.
func NewClient(providerEndpoint string, opts ...Option) *client {
	cfg := config{
		headers:      make(http.Header),
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.timeout),
			transporthttp.WithRetryWaitMin(cfg.retryWaitMin),
			transporthttp.WithRetryWaitMax(cfg.retryWaitMax),
			transporthttp.WithRetryMax(cfg.retryMax),
		)
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
		headers:          cfg.headers,
	}
}

// WithHTTPClient uses c instead of building a new HTTP client.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithHeader adds a header to every request, e.g. an API key.
func WithHeader(key, value string) Option {
	return func(cfg *config) {
		cfg.headers.Add(key, value)
	}
}

// WithTimeout configures the maximum duration for a single HTTP request.
//
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin configures the minimum wait duration between retry attempts.
//
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax configures the maximum wait duration between retry attempts.
//
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax configures the maximum number of retry attempts for failed requests.
//
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
