package jsonrpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	transporthttp "github.com/gosh-sh/gosh-proposer/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{JsonRPC: "2.0"}
		assert.NoError(t, resp.Err())
	})

	t.Run("returns formatted error when Error field is present", func(t *testing.T) {
		var resp response
		require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","error":{"code":-32000,"message":"header not found"}}`), &resp))

		err := resp.Err()
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), "[-32000]")
		assert.Contains(t, err.Error(), "header not found")
	})
}

func newServer(t *testing.T, handler func(req map[string]any, r *http.Request) any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NoError(t, json.NewEncoder(w).Encode(handler(req, r)))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_Fetch(t *testing.T) {
	t.Run("successful response with result", func(t *testing.T) {
		srv := newServer(t, func(req map[string]any, _ *http.Request) any {
			assert.Equal(t, "2.0", req["jsonrpc"])
			assert.Equal(t, "eth_getStorageAt", req["method"])
			assert.Equal(t, []any{"0xabc", "0x1", "latest"}, req["params"])
			assert.NotEmpty(t, req["id"])

			return map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": "0x05"}
		})

		result, err := NewClient(srv.URL).Fetch(t.Context(), "eth_getStorageAt", "0xabc", "0x1", "latest")
		require.NoError(t, err)
		assert.JSONEq(t, `"0x05"`, string(result))
	})

	t.Run("params default to an empty array", func(t *testing.T) {
		srv := newServer(t, func(req map[string]any, _ *http.Request) any {
			assert.Equal(t, []any{}, req["params"])
			return map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": "0x10"}
		})

		_, err := NewClient(srv.URL).Fetch(t.Context(), "eth_blockNumber")
		require.NoError(t, err)
	})

	t.Run("null result is returned as is", func(t *testing.T) {
		srv := newServer(t, func(req map[string]any, _ *http.Request) any {
			return map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": nil}
		})

		result, err := NewClient(srv.URL).Fetch(t.Context(), "eth_getBlockByHash", "0x01", false)
		require.NoError(t, err)
		assert.Equal(t, "null", string(result))
	})

	t.Run("custom headers are sent", func(t *testing.T) {
		srv := newServer(t, func(req map[string]any, r *http.Request) any {
			assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
			return map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": true}
		})

		_, err := NewClient(srv.URL, WithHeader("X-Api-Key", "secret")).Fetch(t.Context(), "net.query")
		require.NoError(t, err)
	})

	t.Run("response with JSON-RPC error", func(t *testing.T) {
		srv := newServer(t, func(req map[string]any, _ *http.Request) any {
			return map[string]any{
				"jsonrpc": "2.0",
				"id":      req["id"],
				"error":   map[string]any{"code": -32601, "message": "method not found"},
			}
		})

		result, err := NewClient(srv.URL).Fetch(t.Context(), "nonexistent_method")
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("malformed JSON response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer srv.Close()

		result, err := NewClient(srv.URL).Fetch(t.Context(), "bad_json")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid character")
	})

	t.Run("non json error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("bad request"))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, WithRetryMax(0)).Fetch(t.Context(), "eth_getLogs")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("network error when server is down", func(t *testing.T) {
		srv := httptest.NewServer(nil)
		srv.Close()

		c := NewClient(srv.URL, WithTimeout(1*time.Second), WithRetryMax(0))

		result, err := c.Fetch(t.Context(), "network_failure")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("uses default configuration when no options are provided", func(t *testing.T) {
		c := NewClient("http://localhost:8545")

		assert.Equal(t, "http://localhost:8545", c.providerEndpoint)
		require.NotNil(t, c.httpClient)
		assert.Equal(t, 5*time.Second, c.httpClient.HTTPClient.Timeout)
		assert.Equal(t, 1*time.Second, c.httpClient.RetryWaitMin)
		assert.Equal(t, 5*time.Second, c.httpClient.RetryWaitMax)
		assert.Equal(t, 2, c.httpClient.RetryMax)
	})

	t.Run("applies all custom options correctly", func(t *testing.T) {
		c := NewClient(
			"http://localhost:8545",
			WithTimeout(9*time.Second),
			WithRetryWaitMin(111*time.Millisecond),
			WithRetryWaitMax(3*time.Second),
			WithRetryMax(7),
		)

		assert.Equal(t, 9*time.Second, c.httpClient.HTTPClient.Timeout)
		assert.Equal(t, 111*time.Millisecond, c.httpClient.RetryWaitMin)
		assert.Equal(t, 3*time.Second, c.httpClient.RetryWaitMax)
		assert.Equal(t, 7, c.httpClient.RetryMax)
	})

	t.Run("reuses a provided http client", func(t *testing.T) {
		shared := transporthttp.NewClient(transporthttp.WithRetryMax(9))
		c := NewClient("http://localhost:8545", WithHTTPClient(shared))

		assert.Same(t, shared, c.httpClient)
	})
}
