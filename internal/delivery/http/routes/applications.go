package routes

import (
	"jobboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterApplications(r fiber.Router, appHandler *handler.ApplicationHandler, auth fiber.Handler, listRequiresAuth bool) {
	if r == nil || appHandler == nil {
		return
	}

	appHandler.RegisterPublicRoutes(r)
	appHandler.RegisterAdminRoutes(r, auth, listRequiresAuth)
}
