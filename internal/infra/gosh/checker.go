package gosh

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"github.com/gosh-sh/gosh-proposer/internal/pkg/logger"
	"github.com/gosh-sh/gosh-proposer/internal/proposer"
	"github.com/gosh-sh/gosh-proposer/internal/reconcile"
)

// ErrNoValidatorID is returned when a proposal does not list the validator.
var ErrNoValidatorID = errors.New("validator is not registered on the proposal")

type proposalList struct {
	Addresses []string `json:"value0"`
}

type rootData struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals string `json:"decimals"`
	EthRoot  string `json:"ethroot"`
}

type transferPatch struct {
	Root rootData `json:"root"`
	Data struct {
		Pubkey string `json:"pubkey"`
		Value  string `json:"value"`
		Hash   string `json:"hash"`
	} `json:"data"`
}

type checkerStatus struct {
	PrevHash string `json:"prevhash"`
	Index    string `json:"index"`
}

type blockData struct {
	Data string `json:"data"`
	Hash string `json:"hash"`
}

type checkDataInput struct {
	Data         []blockData     `json:"data"`
	Transactions []transferPatch `json:"transactions"`
}

type proposalDetails struct {
	Hash         string          `json:"hash"`
	NewHash      string          `json:"newhash"`
	Transactions []transferPatch `json:"transactions"`
	Index        string          `json:"index"`
	Need         string          `json:"need"`
}

// Checker reads and votes on deposit proposals held by the checker contract.
type Checker struct {
	client      *client
	address     string
	checkerABI  ABI
	proposalABI ABI
}

// NewChecker returns a Checker for the checker contract at address.
func NewChecker(c *client, address string, checkerABI, proposalABI ABI) *Checker {
	return &Checker{
		client:      c,
		address:     address,
		checkerABI:  checkerABI,
		proposalABI: proposalABI,
	}
}

// DepositProposals returns every open deposit proposal. Proposals whose
// details cannot be read are logged and left out.
func (c *Checker) DepositProposals(ctx context.Context) ([]reconcile.DepositProposal, error) {
	var list proposalList
	if err := c.client.RunGetter(ctx, c.address, c.checkerABI, "getAllProposalAddr", nil, &list); err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}

	proposals := make([]reconcile.DepositProposal, 0, len(list.Addresses))
	for _, address := range list.Addresses {
		var details proposalDetails
		if err := c.client.RunGetter(ctx, address, c.proposalABI, "getDetails", nil, &details); err != nil {
			logger.Warn(ctx, "proposal details unavailable", "proposal", address, "error", err)
			continue
		}

		proposal, err := toDepositProposal(address, details)
		if err != nil {
			return nil, fmt.Errorf("proposal %s: %w", address, err)
		}

		proposals = append(proposals, proposal)
	}

	return proposals, nil
}

// VoteForDeposit approves proposal on behalf of the validator owning keys.
func (c *Checker) VoteForDeposit(ctx context.Context, proposal string, keys Keys) error {
	var id struct {
		ID *string `json:"value0"`
	}

	err := c.client.RunGetter(ctx, proposal, c.proposalABI, "getValidatorId", map[string]string{"pubkey": "0x" + keys.Public}, &id)
	if err != nil {
		return fmt.Errorf("validator id: %w", err)
	}

	if id.ID == nil {
		return fmt.Errorf("%w: %s", ErrNoValidatorID, proposal)
	}

	return c.client.CallFunction(ctx, proposal, c.proposalABI, "setVote", map[string]string{"id": *id.ID}, keys)
}

// CheckerStatus returns the hash of the last Ethereum block the checker
// contract has accepted.
func (c *Checker) CheckerStatus(ctx context.Context) (common.Hash, error) {
	var status checkerStatus
	if err := c.client.RunGetter(ctx, c.address, c.checkerABI, "getStatus", nil, &status); err != nil {
		return common.Hash{}, fmt.Errorf("checker status: %w", err)
	}

	hash, err := parseHash(status.PrevHash)
	if err != nil {
		return common.Hash{}, fmt.Errorf("checker status prevhash: %w", err)
	}

	return hash, nil
}

// SubmitBlocks sends an unsigned checkData message carrying the encoded
// headers, oldest first, and the deposits they contain. The checker contract
// opens a deposit proposal from it.
func (c *Checker) SubmitBlocks(ctx context.Context, blocks []proposer.Block, transfers []extract.TransferRecord) error {
	input := checkDataInput{
		Data:         make([]blockData, len(blocks)),
		Transactions: make([]transferPatch, len(transfers)),
	}

	for i, b := range blocks {
		input.Data[i] = blockData{Data: hex.EncodeToString(b.Data), Hash: b.Hash.Hex()}
	}
	for i, t := range transfers {
		input.Transactions[i] = fromTransfer(t)
	}

	return c.client.CallFunction(ctx, c.address, c.checkerABI, "checkData", input, Keys{})
}

func fromTransfer(t extract.TransferRecord) transferPatch {
	var p transferPatch
	p.Root = rootData{
		Name:     t.Root.Name,
		Symbol:   t.Root.Symbol,
		Decimals: strconv.FormatUint(uint64(t.Root.Decimals), 10),
		EthRoot:  common.BytesToHash(t.Root.EthRoot.Bytes()).Hex(),
	}
	p.Data.Pubkey = t.Pubkey.Hex()
	p.Data.Value = t.Value.String()
	p.Data.Hash = t.Hash.Hex()

	return p
}

func toDepositProposal(address string, d proposalDetails) (reconcile.DepositProposal, error) {
	from, err := parseHash(d.Hash)
	if err != nil {
		return reconcile.DepositProposal{}, fmt.Errorf("hash: %w", err)
	}

	till, err := parseHash(d.NewHash)
	if err != nil {
		return reconcile.DepositProposal{}, fmt.Errorf("newhash: %w", err)
	}

	index, err := strconv.ParseUint(d.Index, 0, 64)
	if err != nil {
		return reconcile.DepositProposal{}, fmt.Errorf("%w: index %q", extract.ErrMalformedRecord, d.Index)
	}

	need, err := strconv.ParseUint(d.Need, 0, 64)
	if err != nil {
		return reconcile.DepositProposal{}, fmt.Errorf("%w: need %q", extract.ErrMalformedRecord, d.Need)
	}

	transfers := make([]extract.TransferRecord, 0, len(d.Transactions))
	for i, patch := range d.Transactions {
		record, err := toTransfer(patch)
		if err != nil {
			return reconcile.DepositProposal{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		transfers = append(transfers, record)
	}

	return reconcile.DepositProposal{
		Key:       address,
		From:      from,
		Till:      till,
		Transfers: transfers,
		Index:     index,
		Need:      need,
	}, nil
}

func toTransfer(p transferPatch) (extract.TransferRecord, error) {
	pubkey, err := parseHash(p.Data.Pubkey)
	if err != nil {
		return extract.TransferRecord{}, fmt.Errorf("pubkey: %w", err)
	}

	hash, err := parseHash(p.Data.Hash)
	if err != nil {
		return extract.TransferRecord{}, fmt.Errorf("hash: %w", err)
	}

	value, err := extract.ParseUint(p.Data.Value)
	if err != nil {
		return extract.TransferRecord{}, fmt.Errorf("value: %w", err)
	}

	decimals, err := strconv.ParseUint(p.Root.Decimals, 10, 8)
	if err != nil {
		return extract.TransferRecord{}, fmt.Errorf("%w: decimals %q", extract.ErrMalformedRecord, p.Root.Decimals)
	}

	ethRoot, err := extract.StripAddressPadding(p.Root.EthRoot)
	if err != nil {
		return extract.TransferRecord{}, fmt.Errorf("ethroot: %w", err)
	}

	return extract.TransferRecord{
		Pubkey: pubkey,
		Value:  value,
		Hash:   hash,
		Root: extract.TokenRoot{
			Name:     p.Root.Name,
			Symbol:   p.Root.Symbol,
			Decimals: uint8(decimals),
			EthRoot:  ethRoot,
		},
	}, nil
}

func parseHash(s string) (common.Hash, error) {
	v, err := extract.ParseUint(s)
	if err != nil {
		return common.Hash{}, err
	}

	return common.BigToHash(v), nil
}
