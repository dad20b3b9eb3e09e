package routes

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health       *handler.HealthHandler
	Jobs         *handler.JobsHandler
	Auth         *handler.AuthHandler
	Applications *handler.ApplicationHandler
	Mock         *handler.MockHandler
}

type Middlewares struct {
	Auth       *middleware.AuthMiddleware
	StoreReady *middleware.StoreReadyMiddleware
	RateLimit  *middleware.RateLimitMiddleware
}

type Options struct {
	// ApplicationsListRequiresAuth gates GET /api/applications.
	ApplicationsListRequiresAuth bool
}

type Registry struct {
	h    Handlers
	mw   Middlewares
	opts Options
}

func NewRegistry(h Handlers, mw Middlewares, opts Options) *Registry {
	if h.Health == nil {
		h.Health = handler.NewHealthHandler()
	}
	return &Registry{h: h, mw: mw, opts: opts}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.h.Health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	var mws []any
	if r.mw.RateLimit != nil {
		mws = append(mws, r.mw.RateLimit.Middleware())
	}
	api := app.Group("/api", mws...)

	if r.h.Mock != nil {
		r.h.Mock.RegisterRoutes(api.Group("/mock"))
	}

	storeReady := r.storeGate()
	auth := r.authGate()

	RegisterJobs(api.Group("/jobs", storeReady), r.h.Jobs, auth)
	RegisterApplications(api.Group("/applications", storeReady), r.h.Applications, auth, r.opts.ApplicationsListRequiresAuth)
	RegisterAdmin(api.Group("/admin", storeReady), r.h.Auth, r.h.Jobs, auth)
}

func (r *Registry) storeGate() fiber.Handler {
	if r.mw.StoreReady == nil {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	return r.mw.StoreReady.Middleware()
}

// authGate fails closed when no auth middleware was wired.
func (r *Registry) authGate() fiber.Handler {
	if r.mw.Auth == nil {
		return func(c fiber.Ctx) error {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Missing token", nil, nil)
		}
	}
	return r.mw.Auth.Middleware()
}
