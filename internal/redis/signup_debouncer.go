package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const debounceWindow = 1 * time.Minute

// SignupDebouncer suppresses repeat newsletter signups for the same address
// inside a short window, using SETNX with a TTL.
type SignupDebouncer struct {
	rdb *goredis.Client
}

func NewSignupDebouncer(rdb *goredis.Client) *SignupDebouncer {
	return &SignupDebouncer{rdb: rdb}
}

// Allow reports whether a signup for the address may proceed. The first call
// inside a window claims the key; later calls are debounced.
func (d *SignupDebouncer) Allow(ctx context.Context, email string) (bool, error) {
	set, err := d.rdb.SetNX(ctx, debounceKey(email), "1", debounceWindow).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check signup debounce: %w", err)
	}
	return set, nil
}

func debounceKey(email string) string {
	return "newsletter:debounce:" + strings.ToLower(email)
}
