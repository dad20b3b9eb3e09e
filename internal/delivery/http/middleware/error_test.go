package middleware

import (
	"errors"
	"testing"

	"jobboard/internal/pkg/response"
	"jobboard/internal/pkg/validation"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", validation.NewError("title", "is required"), fiber.StatusBadRequest, "Validation failed"},
		{"app error", NewAppError(fiber.StatusNotFound, "Job not found", nil, nil), fiber.StatusNotFound, "Job not found"},
		{"app 500 hides detail", NewAppError(fiber.StatusInternalServerError, "pq: boom", nil, errors.New("boom")), fiber.StatusInternalServerError, response.MessageInternalServerError},
		{"store down", NewAppError(fiber.StatusServiceUnavailable, "Database unavailable", nil, nil), fiber.StatusServiceUnavailable, "Database unavailable"},
		{"body too large", fiber.ErrRequestEntityTooLarge, fiber.StatusRequestEntityTooLarge, response.MessageTooLarge},
		{"plain error", errors.New("dial tcp: refused"), fiber.StatusInternalServerError, response.MessageInternalServerError},
	}

	for _, tc := range cases {
		status, msg, _ := normalizeError(tc.err)
		if status != tc.status || msg != tc.message {
			t.Fatalf("%s: expected %d %q, got %d %q", tc.name, tc.status, tc.message, status, msg)
		}
	}
}
