// Package redis keeps the validator's proposal claims in Redis so that
// several workers can share one validator identity.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn   *redis.Client
	prefix string
}

// Option configures a client.
type Option func(*client)

// WithKeyPrefix namespaces every key, for validators sharing one database.
func WithKeyPrefix(prefix string) Option {
	return func(c *client) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}

	return newClient(conn, opts...), nil
}

func newClient(conn *redis.Client, opts ...Option) *client {
	c := &client{
		conn:   conn,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
