package middleware

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
)

type countingLimiter struct {
	max  int
	hits int
	err  error
}

func (l *countingLimiter) Allow(context.Context, string) (LimitResult, error) {
	if l.err != nil {
		return LimitResult{}, l.err
	}
	l.hits++
	remaining := l.max - l.hits
	if remaining < 0 {
		remaining = 0
	}
	return LimitResult{Allowed: l.hits <= l.max, Limit: l.max, Remaining: remaining, ResetIn: time.Minute}, nil
}

func newLimitedApp(l Limiter) *fiber.App {
	logger := log.New(io.Discard, "", 0)
	errMw := NewErrorMiddleware(logger)
	app := fiber.New(fiber.Config{ErrorHandler: errMw.Handle})
	app.Use(errMw.Middleware())
	app.Use(NewRateLimitMiddleware(l, logger).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestRateLimit_BlocksOverBudget(t *testing.T) {
	app := newLimitedApp(&countingLimiter{max: 2})

	for i, want := range []int{200, 200, 429} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		if err != nil {
			t.Fatalf("request error: %v", err)
		}
		if resp.StatusCode != want {
			t.Fatalf("hit %d: expected %d, got %d", i+1, want, resp.StatusCode)
		}
		if want == 429 && resp.Header.Get("Retry-After") != "60" {
			t.Fatalf("expected Retry-After 60, got %q", resp.Header.Get("Retry-After"))
		}
	}
}

func TestRateLimit_BypassesWhenLimiterFails(t *testing.T) {
	app := newLimitedApp(&countingLimiter{err: errors.New("redis down")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected bypass, got %d", resp.StatusCode)
	}
}
