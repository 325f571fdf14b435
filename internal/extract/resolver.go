package extract

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// TokenResolver returns the metadata of an Ethereum token contract.
type TokenResolver interface {
	Resolve(ctx context.Context, token common.Address) (TokenRoot, error)
}

// memo caches resolutions for the lifetime of a single extraction. Concurrent
// callers may resolve the same token twice; the last write wins and all
// writes carry the same value.
type memo struct {
	next TokenResolver

	mu    sync.RWMutex
	roots map[common.Address]TokenRoot
}

// Compile-time assertion that memo implements TokenResolver.
var _ TokenResolver = (*memo)(nil)

func newMemo(next TokenResolver) *memo {
	return &memo{
		next:  next,
		roots: make(map[common.Address]TokenRoot),
	}
}

// Resolve maps the zero address to the native asset without calling the
// underlying resolver.
func (m *memo) Resolve(ctx context.Context, token common.Address) (TokenRoot, error) {
	if token == (common.Address{}) {
		return NativeRoot(), nil
	}

	m.mu.RLock()
	root, ok := m.roots[token]
	m.mu.RUnlock()
	if ok {
		return root, nil
	}

	root, err := m.next.Resolve(ctx, token)
	if err != nil {
		return TokenRoot{}, err
	}
	root.EthRoot = token

	m.mu.Lock()
	m.roots[token] = root
	m.mu.Unlock()

	return root, nil
}
