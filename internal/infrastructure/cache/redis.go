package cache

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"jobboard/internal/config"

	"github.com/redis/go-redis/v9"
)

var ErrUnavailable = errors.New("redis unavailable")

type Redis struct {
	client *redis.Client
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

// NewRedis connects and pings once. When the ping fails the returned value
// is still usable: every call reports ErrUnavailable.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Printf("[Redis] unavailable at %s, rate limiting disabled: %v", cfg.Addr(), err)
		_ = client.Close()
		return &Redis{logger: logger}
	}

	logger.Printf("[Redis] connected addr=%s", cfg.Addr())
	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Redis] command failed: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

// IncrWindow bumps the counter at key and starts its expiry on the first
// hit of a window. It returns the new count and the time left in the window.
func (r *Redis) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if r.isUnavailable() {
		return 0, 0, ErrUnavailable
	}

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		pttl = p.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		r.warnUnavailableOnce(err)
		return 0, 0, err
	}
	r.warnedUnavailable.Store(false)

	ttl := pttl.Val()
	if ttl < 0 {
		// Fresh key, or one that lost its expiry.
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			r.warnUnavailableOnce(err)
			return 0, 0, err
		}
		ttl = window
	}
	return incr.Val(), ttl, nil
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
