package extract

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultBurnFunction is the receiver function that burns wrapped tokens.
const DefaultBurnFunction = "burnTokens"

// DecodedMessage is an inbound GOSH message whose body has been decoded
// against the receiver ABI.
type DecodedMessage struct {
	ID      string
	TxID    common.Hash
	BlockID string
	Lt      uint64
	Name    string
	Args    json.RawMessage
}

// burnArgs are the arguments of a burn call. Only the fields needed for the
// record are kept.
type burnArgs struct {
	Root *struct {
		EthRoot string `json:"ethroot"`
	} `json:"root"`
	Tokens *string `json:"tokens"`
	To     *string `json:"to"`
}

// ExtractBurns returns one BurnRecord per message whose decoded call name is
// burnFunction, in input order. Other messages are skipped. A burn with
// missing or unparsable arguments fails with ErrMalformedRecord.
func ExtractBurns(messages []DecodedMessage, burnFunction string) ([]BurnRecord, error) {
	var records []BurnRecord

	for _, msg := range messages {
		if msg.Name != burnFunction {
			continue
		}

		record, err := parseBurn(msg)
		if err != nil {
			return nil, fmt.Errorf("message %s in tx %s: %w", msg.ID, msg.TxID.Hex(), err)
		}

		records = append(records, record)
	}

	return records, nil
}

func parseBurn(msg DecodedMessage) (BurnRecord, error) {
	var args burnArgs
	if err := json.Unmarshal(msg.Args, &args); err != nil {
		return BurnRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	if args.Root == nil || args.Tokens == nil || args.To == nil {
		return BurnRecord{}, fmt.Errorf("%w: burn requires root, tokens and to", ErrMalformedRecord)
	}

	value, err := ParseUint(*args.Tokens)
	if err != nil {
		return BurnRecord{}, err
	}

	dest, err := StripAddressPadding(*args.To)
	if err != nil {
		return BurnRecord{}, err
	}

	root, err := StripAddressPadding(args.Root.EthRoot)
	if err != nil {
		return BurnRecord{}, err
	}

	return BurnRecord{
		Dest:    dest,
		Value:   value,
		TxID:    msg.TxID,
		EthRoot: root,
	}, nil
}
