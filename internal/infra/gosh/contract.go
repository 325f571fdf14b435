package gosh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
)

// txStatusFinalized is the status of a committed transaction.
const txStatusFinalized = 3

var (
	// ErrAccountNotFound is returned when a getter targets an account that
	// is not deployed.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionFailed is returned when a sent message did not finalize.
	ErrTransactionFailed = errors.New("transaction not finalized")
)

// Keys is an ed25519 key pair in the sidecar format.
type Keys struct {
	Public string `json:"public"`
	Secret string `json:"secret"`
}

// LoadKeys reads a key pair file.
func LoadKeys(path string) (Keys, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Keys{}, fmt.Errorf("read keys %s: %w", path, err)
	}

	var keys Keys
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Keys{}, fmt.Errorf("decode keys %s: %w", path, err)
	}

	if keys.Public == "" || keys.Secret == "" {
		return Keys{}, fmt.Errorf("keys %s: public and secret are required", path)
	}

	return keys, nil
}

type signer struct {
	Type string `json:"type"`
	Keys *Keys  `json:"keys,omitempty"`
}

type callSet struct {
	FunctionName string `json:"function_name"`
	Input        any    `json:"input,omitempty"`
}

type encodeParams struct {
	ABI     ABI     `json:"abi"`
	Address string  `json:"address"`
	CallSet callSet `json:"call_set"`
	Signer  signer  `json:"signer"`
}

type collectionParams struct {
	Collection string         `json:"collection"`
	Filter     map[string]any `json:"filter"`
	Result     string         `json:"result"`
}

type runTVMParams struct {
	Message string `json:"message"`
	Account string `json:"account"`
	ABI     ABI    `json:"abi"`
}

type processParams struct {
	MessageEncodeParams encodeParams `json:"message_encode_params"`
	SendEvents          bool         `json:"send_events"`
}

// accountBoc returns the serialized state of a deployed account.
func (c *client) accountBoc(ctx context.Context, address string) (string, error) {
	var out struct {
		Result []struct {
			Boc string `json:"boc"`
		} `json:"result"`
	}

	err := c.call(ctx, &out, methodQueryCollection, collectionParams{
		Collection: "accounts",
		Filter:     map[string]any{"id": map[string]string{"eq": address}},
		Result:     "boc",
	})
	if err != nil && !errors.Is(err, errNullResult) {
		return "", err
	}

	if len(out.Result) == 0 || out.Result[0].Boc == "" {
		return "", fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}

	return out.Result[0].Boc, nil
}

// RunGetter runs function locally on the current state of address and
// decodes its output into out.
func (c *client) RunGetter(ctx context.Context, address string, abi ABI, function string, input, out any) error {
	boc, err := c.accountBoc(ctx, address)
	if err != nil {
		return fmt.Errorf("%s on %s: %w", function, address, err)
	}

	var encoded struct {
		Message string `json:"message"`
	}

	err = c.call(ctx, &encoded, methodEncodeMessage, encodeParams{
		ABI:     abi,
		Address: address,
		CallSet: callSet{FunctionName: function, Input: input},
		Signer:  signer{Type: "None"},
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", function, err)
	}

	var result struct {
		Decoded *struct {
			Output json.RawMessage `json:"output"`
		} `json:"decoded"`
	}

	err = c.call(ctx, &result, methodRunTVM, runTVMParams{
		Message: encoded.Message,
		Account: boc,
		ABI:     abi,
	})
	if err != nil {
		return fmt.Errorf("run %s on %s: %w", function, address, err)
	}

	if result.Decoded == nil || len(result.Decoded.Output) == 0 {
		return fmt.Errorf("run %s on %s: no decoded output", function, address)
	}

	if err := json.Unmarshal(result.Decoded.Output, out); err != nil {
		return fmt.Errorf("decode %s output: %w", function, err)
	}

	return nil
}

func signerFor(keys Keys) signer {
	if keys == (Keys{}) {
		return signer{Type: "None"}
	}
	return signer{Type: "Keys", Keys: &keys}
}

// CallFunction sends an external message calling function on address and
// waits for its transaction. The message is signed with keys unless keys is
// the zero value.
func (c *client) CallFunction(ctx context.Context, address string, abi ABI, function string, input any, keys Keys) error {
	var out struct {
		Transaction struct {
			ID     string `json:"id"`
			Status int    `json:"status"`
		} `json:"transaction"`
	}

	err := c.call(ctx, &out, methodProcessMessage, processParams{
		MessageEncodeParams: encodeParams{
			ABI:     abi,
			Address: address,
			CallSet: callSet{FunctionName: function, Input: input},
			Signer:  signerFor(keys),
		},
	})
	if err != nil {
		return fmt.Errorf("call %s on %s: %w", function, address, err)
	}

	if out.Transaction.Status != txStatusFinalized {
		return fmt.Errorf("%w: %s on %s: status %d", ErrTransactionFailed, function, address, out.Transaction.Status)
	}

	logger.Info(ctx, "message processed", "function", function, "address", address, "transaction", out.Transaction.ID)

	return nil
}
