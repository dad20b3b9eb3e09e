package app

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	"jobboard/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the Fiber app around an already wired container.
func New(c *Container) *App {
	cfg := c.Config
	errMw := middleware.NewErrorMiddleware(c.Logger)

	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		BodyLimit:    cfg.Upload.BodyLimit,
		ErrorHandler: errMw.Handle,
		ProxyHeader:  fiber.HeaderXForwardedFor,
		TrustProxy:   true,
		TrustProxyConfig: fiber.TrustProxyConfig{
			Loopback: true,
			Private:  true,
		},
	})

	registerGlobalMiddleware(f, cfg, c.Logger, errMw)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *log.Logger, errMw *middleware.ErrorMiddleware) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger, "/health").Middleware())
	app.Use(errMw.Middleware())
	app.Use(helmet.New())
	app.Use(cors.New(corsConfig(cfg.App.CORSOrigins)))
	app.Use(compress.New())
}

func corsConfig(origins []string) cors.Config {
	if slices.Contains(origins, "*") {
		return cors.Config{AllowOrigins: []string{"*"}}
	}
	return cors.Config{AllowOrigins: origins, AllowCredentials: true}
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	cfg := c.Config
	limiter := rateLimiter(cache.NewRateLimiter(c.Redis, cfg.RateLimit.Max, cfg.RateLimit.Window))

	routes.NewRegistry(
		routes.Handlers{
			Health:       handler.NewHealthHandler(),
			Jobs:         handler.NewJobsHandler(c.JobList, c.JobMutation),
			Auth:         handler.NewAuthHandler(c.Auth),
			Applications: handler.NewApplicationHandler(c.ApplicationUC, cfg.Upload.MaxResumeBytes),
			Mock:         handler.NewMockHandler(c.Mock),
		},
		routes.Middlewares{
			Auth:       middleware.NewAuthMiddleware(c.JWT),
			StoreReady: middleware.NewStoreReadyMiddleware(c.Health),
			RateLimit:  middleware.NewRateLimitMiddleware(limiter, c.Logger),
		},
		routes.Options{ApplicationsListRequiresAuth: cfg.Applications.ListRequiresAuth},
	).Register(app)
}

func rateLimiter(l *cache.RateLimiter) middleware.Limiter {
	return middleware.LimiterFunc(func(ctx context.Context, key string) (middleware.LimitResult, error) {
		d, err := l.Allow(ctx, key)
		if err != nil {
			return middleware.LimitResult{}, err
		}
		return middleware.LimitResult{
			Allowed:   d.Allowed,
			Limit:     d.Limit,
			Remaining: d.Remaining,
			ResetIn:   d.ResetIn,
		}, nil
	})
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
