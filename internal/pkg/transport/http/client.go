// Package http builds the retrying HTTP client shared by the Ethereum node
// and GOSH sidecar JSON-RPC connections.
package http

import (
	"net/http"
	"time"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// Defaults applied by NewClient when the matching option is not given.
const (
	// DefaultTimeout bounds a single request attempt, including reading the body.
	DefaultTimeout = 15 * time.Second
	// DefaultRetryWaitMin is the first backoff delay after a failed attempt.
	DefaultRetryWaitMin = 500 * time.Millisecond
	// DefaultRetryWaitMax caps the exponential backoff delay.
	DefaultRetryWaitMax = 5 * time.Second
	// DefaultRetryMax is the number of retries after the initial attempt.
	DefaultRetryMax = 3
)

type config struct {
	timeout      time.Duration // per-attempt deadline set on the underlying http.Client
	retryWaitMin time.Duration // lower bound of the backoff window
	retryWaitMax time.Duration // upper bound of the backoff window
	retryMax     int           // retries after the first attempt, 0 disables retrying
	name         string        // endpoint tag attached to retry logs
}

// Option configures the client returned by NewClient.
type Option func(*config)

// NewClient returns a retryablehttp.Client ready to back a JSON-RPC connection.
//
// Defaults:
//   - Timeout: 15 seconds per attempt
//   - RetryWaitMin: 500 milliseconds
//   - RetryWaitMax: 5 seconds
//   - RetryMax: 3 retries
//   - Name: empty
//
// The library's own logger is disabled. Retries are logged at warn level with
// the request context instead, tagged with the endpoint name when one is set.
// The first attempt of a request is never logged.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      DefaultTimeout,
		retryWaitMin: DefaultRetryWaitMin,
		retryWaitMax: DefaultRetryWaitMax,
		retryMax:     DefaultRetryMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax
	client.RequestLogHook = retryLogHook(cfg.name)
	return client
}

func retryLogHook(name string) retryablehttp.RequestLogHook {
	return func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt == 0 {
			return
		}

		logger.Warn(req.Context(), "retrying request", "endpoint", name, "host", req.URL.Host, "attempt", attempt)
	}
}

// WithName tags retry logs with an endpoint name such as "eth" or "gosh".
//
// Default: empty, logs carry only the request host.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithTimeout bounds a single attempt. The deadline applies to each retry
// separately, so a request may take up to (RetryMax+1) times this value plus
// the backoff delays.
//
// Default: 15 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum backoff between attempts.
//
// Default: 500 milliseconds.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum backoff between attempts. A Retry-After
// header from the server is honoured up to this bound.
//
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried. Connection
// errors and 5xx responses are retried, other 4xx responses are returned as is.
// Zero disables retrying.
//
// Default: 3.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
