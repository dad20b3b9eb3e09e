package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// Readiness is satisfied by *database.Health.
type Readiness interface {
	Ready(ctx context.Context) bool
}

type StoreReadyMiddleware struct {
	health Readiness
}

func NewStoreReadyMiddleware(health Readiness) *StoreReadyMiddleware {
	return &StoreReadyMiddleware{health: health}
}

// Middleware short-circuits with 503 while the store cannot be reached.
func (m *StoreReadyMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m.health == nil || !m.health.Ready(c.Context()) {
			return NewAppError(fiber.StatusServiceUnavailable, "Database unavailable", nil, nil)
		}
		return c.Next()
	}
}
