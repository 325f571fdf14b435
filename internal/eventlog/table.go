package eventlog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/hexbuf"
)

//go:embed resources/events.json
var defaultTable []byte

// ErrInvalidTable is returned when a signature table document cannot be loaded.
var ErrInvalidTable = errors.New("invalid signature table")

// Selector is the 4-byte identifier of a contract function.
type Selector [4]byte

// Param describes one declared argument of an event or function.
type Param struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed"`
}

// Entry is a signature table record: the event or function name and its
// parameters in ABI order.
type Entry struct {
	Name   string  `json:"name"`
	Params []Param `json:"params"`
}

// function is the on-disk form of a function entry. The selector is derived
// from the canonical signature.
type function struct {
	Signature string  `json:"signature"`
	Name      string  `json:"name"`
	Params    []Param `json:"params"`
}

// document is the on-disk form of a signature table.
type document struct {
	Events    map[string]Entry `json:"events"`
	Functions []function       `json:"functions"`
}

// Table maps event topics and function selectors to their declarations.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	events map[common.Hash]Entry
	calls  map[Selector]Entry
	names  map[string]common.Hash
}

// Event returns the declaration registered for topic.
func (t Table) Event(topic common.Hash) (Entry, bool) {
	e, ok := t.events[topic]
	return e, ok
}

// Call returns the declaration registered for a function selector.
func (t Table) Call(sel Selector) (Entry, bool) {
	e, ok := t.calls[sel]
	return e, ok
}

// Topic returns the topic of the event named name.
func (t Table) Topic(name string) (common.Hash, bool) {
	h, ok := t.names[name]
	return h, ok
}

// SelectorOf returns the 4-byte selector of a canonical function signature
// such as "deposit(uint256)".
func SelectorOf(signature string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(signature))[:4])
	return s
}

// LoadTable reads a JSON signature table document from r.
func LoadTable(r io.Reader) (Table, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	t := Table{
		events: make(map[common.Hash]Entry, len(doc.Events)),
		calls:  make(map[Selector]Entry, len(doc.Functions)),
		names:  make(map[string]common.Hash, len(doc.Events)),
	}

	for key, entry := range doc.Events {
		raw, err := hexbuf.Decode(key)
		if err != nil || len(raw) != common.HashLength {
			return Table{}, fmt.Errorf("%w: event topic %q is not a 32-byte hex string", ErrInvalidTable, key)
		}
		if entry.Name == "" {
			return Table{}, fmt.Errorf("%w: event %s has no name", ErrInvalidTable, key)
		}

		topic := common.BytesToHash(raw)
		t.events[topic] = entry
		t.names[entry.Name] = topic
	}

	for _, fn := range doc.Functions {
		if fn.Signature == "" || fn.Name == "" {
			return Table{}, fmt.Errorf("%w: function entry requires a signature and a name", ErrInvalidTable)
		}

		for _, p := range fn.Params {
			if p.Indexed {
				return Table{}, fmt.Errorf("%w: function %s declares indexed parameter %s", ErrInvalidTable, fn.Name, p.Name)
			}
		}

		t.calls[SelectorOf(fn.Signature)] = Entry{Name: fn.Name, Params: fn.Params}
	}

	return t, nil
}

// LoadTableFile reads a signature table from path.
func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	return LoadTable(f)
}

// DefaultTable returns the signature table bundled with the binary.
func DefaultTable() (Table, error) {
	return LoadTable(bytes.NewReader(defaultTable))
}
