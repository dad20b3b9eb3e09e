package cache

import (
	"context"
	"time"

	"jobboard/internal/config"
)

type windowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Decision is the outcome of one counted hit.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// RateLimiter is a fixed-window counter shared by every instance that talks
// to the same Redis.
type RateLimiter struct {
	counter windowCounter
	max     int
	window  time.Duration
}

func NewRateLimiter(counter windowCounter, max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = config.DefaultRateLimitMax
	}
	if window <= 0 {
		window = config.DefaultRateLimitWin
	}
	return &RateLimiter{counter: counter, max: max, window: window}
}

func (l *RateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	n, ttl, err := l.counter.IncrWindow(ctx, key, l.window)
	if err != nil {
		return Decision{}, err
	}

	remaining := l.max - int(n)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   n <= int64(l.max),
		Limit:     l.max,
		Remaining: remaining,
		ResetIn:   ttl,
	}, nil
}
