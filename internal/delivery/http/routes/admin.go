package routes

import (
	"jobboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterAdmin mounts login and the /admin/jobs aliases of the job
// mutation routes.
func RegisterAdmin(r fiber.Router, authHandler *handler.AuthHandler, jobsHandler *handler.JobsHandler, auth fiber.Handler) {
	if r == nil {
		return
	}

	if authHandler != nil {
		authHandler.RegisterRoutes(r)
	}
	if jobsHandler != nil {
		jobsHandler.RegisterAdminRoutes(r.Group("/jobs"), auth)
	}
}
