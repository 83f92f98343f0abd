package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/chainsafe/card-bridge/pkg/config"
)

// ValkeyCounter keeps counters in valkey.
type ValkeyCounter struct {
	client valkey.Client
}

// NewValkeyCounter wraps an existing client
func NewValkeyCounter(client valkey.Client) *ValkeyCounter {
	return &ValkeyCounter{client: client}
}

// NewValkeyClient connects to the configured valkey address
func NewValkeyClient(cfg config.RateLimitConfig) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.ValkeyAddr},
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to valkey at %s: %w", cfg.ValkeyAddr, err)
	}
	return client, nil
}

// Incr runs INCR and EXPIRE in one round trip.
func (c *ValkeyCounter) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	results := c.client.DoMulti(ctx,
		c.client.B().Incr().Key(key).Build(),
		c.client.B().Expire().Key(key).Seconds(int64(ttl.Seconds())).Build(),
	)
	count, err := results[0].AsInt64()
	if err != nil {
		return 0, fmt.Errorf("incrementing %s: %w", key, err)
	}
	if err := results[1].Error(); err != nil {
		return 0, fmt.Errorf("setting expiry of %s: %w", key, err)
	}
	return count, nil
}
