package middleware

import (
	"context"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Limiter counts a hit for key and reports whether it is within budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (LimitResult, error)
}

// LimiterFunc adapts a plain function to Limiter.
type LimiterFunc func(ctx context.Context, key string) (LimitResult, error)

func (f LimiterFunc) Allow(ctx context.Context, key string) (LimitResult, error) {
	return f(ctx, key)
}

type LimitResult struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

type RateLimitMiddleware struct {
	limiter Limiter
	logger  *log.Logger

	warned atomic.Bool
}

func NewRateLimitMiddleware(limiter Limiter, logger *log.Logger) *RateLimitMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Middleware limits requests per client IP. A limiter that errors lets the
// request through.
func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m.limiter == nil {
			return c.Next()
		}

		res, err := m.limiter.Allow(c.Context(), "ratelimit:"+c.IP())
		if err != nil {
			if m.warned.CompareAndSwap(false, true) {
				m.logger.Printf("[RateLimit] limiter unavailable, bypassing: %v", err)
			}
			return c.Next()
		}
		m.warned.Store(false)

		c.Set("RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Set("RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Set("RateLimit-Reset", strconv.Itoa(int(res.ResetIn.Round(time.Second)/time.Second)))

		if !res.Allowed {
			c.Set("Retry-After", strconv.Itoa(int(res.ResetIn.Round(time.Second)/time.Second)))
			return NewAppError(fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil, nil)
		}
		return c.Next()
	}
}
