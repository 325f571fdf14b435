package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/header"

	"github.com/urfave/cli/v3"
)

type headerView struct {
	Number   string      `json:"number"`
	Hash     common.Hash `json:"hash"`
	Fields   int         `json:"fields"`
	Verified bool        `json:"verified"`
}

// verifyHeaderCommand fetches a header and checks that it hashes to its
// claimed hash.
//
//	bridgecheck verify-header --block latest
//	bridgecheck verify-header --block 19000000
//	bridgecheck verify-header --block 0x<hash>
func verifyHeaderCommand(src HeaderSource) *cli.Command {
	return &cli.Command{
		Name:        "verify-header",
		Description: "Re-encodes an Ethereum block header and compares its Keccak hash with the block hash.",
		Usage:       "Verifies one header. Fails when the recomputed hash differs.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "block",
				Usage: "Block hash, block number or \"latest\"",
				Value: "latest",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			h, err := fetchHeader(ctx, src, c.String("block"))
			if err != nil {
				return err
			}

			if err := header.Verify(h); err != nil {
				return fmt.Errorf("block %s: %w", h.Hash.Hex(), err)
			}

			return writeJSON(c.Root().Writer, headerView{
				Number:   decimal(h.Number),
				Hash:     h.Hash,
				Fields:   header.FieldCount(h),
				Verified: true,
			})
		},
	}
}

func fetchHeader(ctx context.Context, src HeaderSource, block string) (header.BlockHeader, error) {
	switch {
	case block == "" || block == "latest":
		return src.HeaderByNumber(ctx, nil)
	case strings.HasPrefix(block, "0x") && len(block) == 2+2*common.HashLength:
		return src.HeaderByHash(ctx, common.HexToHash(block))
	default:
		n, err := strconv.ParseUint(block, 0, 64)
		if err != nil {
			return header.BlockHeader{}, fmt.Errorf("invalid block %q: want a hash, a number or \"latest\"", block)
		}
		return src.HeaderByNumber(ctx, &n)
	}
}
