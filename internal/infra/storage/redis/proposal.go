package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosh-sh/gosh-proposer/internal/relay"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "bridge"

	// proposalVoted is the terminal value of a claim key.
	proposalVoted = "done"
)

// proposalKey builds the claim key of a proposal:
//
//	"<prefix>:claim:<direction>:<proposal>"
func (c *client) proposalKey(direction relay.Direction, proposal string) string {
	return fmt.Sprintf("%s:claim:%s:%s", c.prefix, direction, proposal)
}

// ClaimProposal reserves proposal for ttl.
//
// It returns relay.ErrAlreadyVoted when the proposal was marked voted and
// relay.ErrClaimHeld when another claim has not expired yet.
func (c *client) ClaimProposal(ctx context.Context, direction relay.Direction, proposal string, ttl time.Duration) error {
	key := c.proposalKey(direction, proposal)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == proposalVoted {
		return relay.ErrAlreadyVoted
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return relay.ErrClaimHeld
	}

	return nil
}

// MarkProposalVoted turns the claim into a permanent "done" marker.
func (c *client) MarkProposalVoted(ctx context.Context, direction relay.Direction, proposal string) error {
	return c.conn.Set(ctx, c.proposalKey(direction, proposal), proposalVoted, 0).Err()
}

var _ relay.ClaimStore = (*client)(nil)
