package handler

import (
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/pkg/response"
	"jobboard/internal/search"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const jobNotFound = "Job not found"

type JobsHandler struct {
	list   usecase.JobListUsecase
	mutate usecase.JobMutationUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, mutate usecase.JobMutationUsecase) *JobsHandler {
	return &JobsHandler{list: list, mutate: mutate}
}

// RegisterPublicRoutes mounts the read-only listing under r.
func (h *JobsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.HandleListJobs)
	r.Get("/:slug", h.HandleGetJob)
}

// RegisterAdminRoutes mounts create, update and delete under r, each
// behind gate.
func (h *JobsHandler) RegisterAdminRoutes(r fiber.Router, gate fiber.Handler) {
	if r == nil || gate == nil {
		return
	}
	r.Post("/", gate, h.HandleCreateJob)
	r.Put("/:slug", gate, h.HandleUpdateJob)
	r.Delete("/:slug", gate, h.HandleDeleteJob)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	res, err := h.list.ListJobs(c.Context(), search.JobQueryParams{
		Q:               c.Query("q"),
		Type:            c.Query("type"),
		Location:        c.Query("location"),
		Department:      c.Query("department"),
		ExperienceLevel: c.Query("experienceLevel"),
		Page:            c.Query("page"),
		Limit:           c.Query("limit"),
	})
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}

	return response.SuccessWithMeta(c, fiber.StatusOK, dto.NewJobListResponse(res.Items), response.PageMeta{
		Total: res.Total,
		Page:  res.Page,
		Limit: res.Limit,
	})
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	j, err := h.list.GetJobBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusOK, "", dto.NewJobResponse(j))
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	var in usecase.JobInput
	if err := decodeJSONStrict(c, &in); err != nil {
		return err
	}

	j, err := h.mutate.CreateJob(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", dto.NewJobResponse(j))
}

func (h *JobsHandler) HandleUpdateJob(c fiber.Ctx) error {
	var in usecase.JobInput
	if err := decodeJSONStrict(c, &in); err != nil {
		return err
	}

	j, err := h.mutate.UpdateJob(c.Context(), c.Params("slug"), in)
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", dto.NewJobResponse(j))
}

func (h *JobsHandler) HandleDeleteJob(c fiber.Ctx) error {
	if err := h.mutate.DeleteJob(c.Context(), c.Params("slug")); err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}
