package ethereum

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/hexbuf"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTokenCacheSize is the number of token descriptors kept in memory.
const DefaultTokenCacheSize = 256

var (
	selectorName     = eventlog.SelectorOf("name()")
	selectorSymbol   = eventlog.SelectorOf("symbol()")
	selectorDecimals = eventlog.SelectorOf("decimals()")
)

// Caller executes read-only contract calls.
type Caller interface {
	Call(ctx context.Context, contract common.Address, data []byte) (hexbuf.Buffer, error)
}

// tokenResolver reads ERC20 metadata. Token metadata never changes, so
// resolved descriptors are cached for the lifetime of the process.
type tokenResolver struct {
	caller Caller
	cache  *lru.Cache[common.Address, extract.TokenRoot]
}

var _ extract.TokenResolver = (*tokenResolver)(nil)

// NewTokenResolver returns a resolver caching up to size descriptors.
func NewTokenResolver(caller Caller, size int) (*tokenResolver, error) {
	if size <= 0 {
		size = DefaultTokenCacheSize
	}

	cache, err := lru.New[common.Address, extract.TokenRoot](size)
	if err != nil {
		return nil, err
	}

	return &tokenResolver{caller: caller, cache: cache}, nil
}

// Resolve returns the name, symbol and decimals of token. The zero address
// is the native asset.
func (r *tokenResolver) Resolve(ctx context.Context, token common.Address) (extract.TokenRoot, error) {
	if token == (common.Address{}) {
		return extract.NativeRoot(), nil
	}

	if root, ok := r.cache.Get(token); ok {
		return root, nil
	}

	name, err := r.callString(ctx, token, selectorName)
	if err != nil {
		return extract.TokenRoot{}, fmt.Errorf("token %s name: %w", token.Hex(), err)
	}

	symbol, err := r.callString(ctx, token, selectorSymbol)
	if err != nil {
		return extract.TokenRoot{}, fmt.Errorf("token %s symbol: %w", token.Hex(), err)
	}

	out, err := r.caller.Call(ctx, token, selectorDecimals[:])
	if err != nil {
		return extract.TokenRoot{}, fmt.Errorf("token %s decimals: %w", token.Hex(), err)
	}

	decimals, err := out.Uint(0)
	if err != nil {
		return extract.TokenRoot{}, fmt.Errorf("token %s decimals: %w", token.Hex(), err)
	}
	if !decimals.IsUint64() || decimals.Uint64() > 255 {
		return extract.TokenRoot{}, fmt.Errorf("token %s decimals %s out of range", token.Hex(), decimals)
	}

	root := extract.TokenRoot{
		Name:     name,
		Symbol:   symbol,
		Decimals: uint8(decimals.Uint64()),
		EthRoot:  token,
	}
	r.cache.Add(token, root)

	return root, nil
}

// callString calls a string getter. Some early tokens return bytes32 instead
// of string; those are accepted with trailing zeros removed.
func (r *tokenResolver) callString(ctx context.Context, token common.Address, sel eventlog.Selector) (string, error) {
	out, err := r.caller.Call(ctx, token, sel[:])
	if err != nil {
		return "", err
	}

	if out.Len() == hexbuf.WordSize {
		raw := bytes.TrimRight(out, "\x00")
		if utf8.Valid(raw) {
			return string(raw), nil
		}
	}

	return eventlog.DecodeString(out, 0, 0)
}
