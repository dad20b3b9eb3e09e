package routes

import (
	"jobboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobsHandler *handler.JobsHandler, auth fiber.Handler) {
	if r == nil || jobsHandler == nil {
		return
	}

	jobsHandler.RegisterPublicRoutes(r)
	jobsHandler.RegisterAdminRoutes(r, auth)
}
