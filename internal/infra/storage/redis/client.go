// Package redis implements fieldguard storage backends on top of Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// defaultReportTTL is how long reports are kept when no TTL is configured.
const defaultReportTTL = 7 * 24 * time.Hour

type client struct {
	conn      redis.UniversalClient
	reportTTL time.Duration
}

// Option configures the Redis client.
type Option func(*client)

// WithReportTTL sets how long reports are kept. Zero keeps them forever.
func WithReportTTL(ttl time.Duration) Option {
	return func(c *client) {
		c.reportTTL = ttl
	}
}

func newClient(conn redis.UniversalClient, opts ...Option) *client {
	c := &client{
		conn:      conn,
		reportTTL: defaultReportTTL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return newClient(conn, opts...), nil
}
