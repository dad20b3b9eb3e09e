package handler

import (
	"errors"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/mockdata"
	"jobboard/internal/pkg/response"
	"jobboard/internal/pkg/validation"

	"github.com/gofiber/fiber/v3"
)

// MockHandler serves the demo dataset. None of its routes touch the store.
type MockHandler struct {
	catalog *mockdata.Catalog
}

func NewMockHandler(catalog *mockdata.Catalog) *MockHandler {
	return &MockHandler{catalog: catalog}
}

func (h *MockHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.HandleListJobs)
	r.Get("/jobs/:id", h.HandleGetJob)
	r.Post("/applications", h.HandleSubmitApplication)
}

func (h *MockHandler) HandleListJobs(c fiber.Ctx) error {
	jobs := h.catalog.List(mockdata.Filter{
		Search:     c.Query("search"),
		Type:       c.Query("type"),
		Location:   c.Query("location"),
		Department: c.Query("department"),
		Experience: c.Query("experience"),
	})
	return response.SuccessWithMeta(c, fiber.StatusOK, jobs, fiber.Map{"count": len(jobs)})
}

func (h *MockHandler) HandleGetJob(c fiber.Ctx) error {
	j, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, jobNotFound, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "", j)
}

func (h *MockHandler) HandleSubmitApplication(c fiber.Ctx) error {
	var in mockdata.ApplicationInput
	if err := decodeJSONStrict(c, &in); err != nil {
		return err
	}

	app, err := h.catalog.Submit(in)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			return verr
		case errors.Is(err, mockdata.ErrJobNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, jobNotFound, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", app)
}
