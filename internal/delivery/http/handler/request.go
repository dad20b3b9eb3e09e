package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/pkg/validation"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// decodeJSONStrict decodes the request body into out, rejecting unknown
// fields, mistyped values and trailing data.
func decodeJSONStrict(c fiber.Ctx, out any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Request body is required", nil, nil)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return badJSON(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Request body must be a single JSON object", nil, err)
	}
	return nil
}

func badJSON(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.NewError(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type.String()))
	}

	msg := err.Error()
	if strings.HasPrefix(msg, "json: unknown field ") {
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return validation.NewError(field, "is not allowed")
	}

	return middleware.NewAppError(fiber.StatusBadRequest, "Malformed JSON body", nil, err)
}

func isMultipart(c fiber.Ctx) bool {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

func mapUsecaseError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, notFoundMsg, nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Slug already exists", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
