package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	apperrors "github.com/essenza-parfums/web/internal/errors"
	"github.com/essenza-parfums/web/internal/retry"
)

// NewClient creates a go-redis client from a URL (e.g. "redis://localhost:6379"),
// installs the circuit breaker hook, and verifies the connection with a few
// ping attempts.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := goredis.NewClient(opts)
	rdb.AddHook(NewCircuitBreakerHook())

	policy := retry.Policy{
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
	}
	if err := retry.DoVoid(ctx, policy, func() error { return rdb.Ping(ctx).Err() }); err != nil {
		_ = rdb.Close()
		return nil, apperrors.ExternalError("failed to ping redis", err).
			WithContext("dependency", "redis")
	}

	return rdb, nil
}
