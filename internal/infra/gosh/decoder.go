package gosh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/transport/jsonrpc"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

type decodeBodyParams struct {
	ABI          ABI    `json:"abi"`
	Body         string `json:"body"`
	IsInternal   bool   `json:"is_internal"`
	AllowPartial bool   `json:"allow_partial"`
}

// Decoder decodes internal message bodies against one ABI.
type Decoder struct {
	client *client
	abi    ABI
}

var _ reconcile.MessageDecoder = (*Decoder)(nil)

// NewDecoder returns a Decoder for bodies of messages sent to a contract
// with the given ABI.
func NewDecoder(c *client, abi ABI) *Decoder {
	return &Decoder{client: c, abi: abi}
}

// DecodeBody returns the called function and its arguments. Bodies the
// sidecar rejects yield reconcile.ErrUndecodable.
func (d *Decoder) DecodeBody(ctx context.Context, body string) (string, json.RawMessage, error) {
	var out struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}

	err := d.client.call(ctx, &out, methodDecodeBody, decodeBodyParams{
		ABI:        d.abi,
		Body:       body,
		IsInternal: true,
	})
	if err != nil {
		if errors.Is(err, jsonrpc.ErrProviderReturnedError) || errors.Is(err, errNullResult) {
			return "", nil, fmt.Errorf("%w: %v", reconcile.ErrUndecodable, err)
		}
		return "", nil, err
	}

	return out.Name, out.Value, nil
}
