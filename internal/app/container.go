package app

import (
	"context"
	"errors"
	"log"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/infrastructure/persistence/postgres"
	"jobboard/internal/mockdata"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
)

// Container owns every long-lived dependency of the API process.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB     database.DB
	Health *database.Health
	Redis  *cache.Redis

	JWT jwt.Service

	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Resumes      repository.ResumeRepository

	JobList       *usecase.JobList
	JobMutation   *usecase.JobMutation
	ApplicationUC *usecase.Applications
	Auth          *usecase.Auth

	Mock *mockdata.Catalog
}

// NewContainer connects to Postgres and Redis. An unreachable database is
// not fatal: the API starts, store-backed routes answer 503 until the pool
// can reach the server again and, with MigrateOnStart, migrations have run.
func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := dbpostgres.Connect(connectCtx, cfg.Database)
	health := database.NewHealth(pool, cfg.Database.HealthTTL, logger)
	migrator := migration.Runner{Logger: logger}
	switch {
	case err == nil:
		logger.Printf("[Store] connected host=%s db=%s", cfg.Database.DBHost, cfg.Database.DBName)
		if cfg.App.MigrateOnStart {
			if err := migrator.Run(connectCtx, pool.SQLDB()); err != nil {
				_ = pool.Close()
				return nil, err
			}
		}
	case errors.Is(err, dbpostgres.ErrUnreachable):
		logger.Printf("[Store] %v; starting without database, store routes will answer 503", err)
		if cfg.App.MigrateOnStart {
			health.OnFirstReady(func(ctx context.Context) error {
				// Detached so a client hanging up does not abort a migration.
				mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Minute)
				defer cancel()
				return migrator.Run(mctx, pool.SQLDB())
			})
		}
	default:
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     pool,
		Health: health,
		Redis:  cache.NewRedis(ctx, cfg.Redis, logger),
		JWT:    jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn),
		Mock:   mockdata.NewCatalog(),
	}

	c.Jobs = repository.NewPostgresJobRepository(pool)
	c.Applications = repository.NewPostgresApplicationRepository(pool)
	c.Resumes = repository.NewPostgresResumeRepository(pool)
	admins := postgres.NewAdminRepository(pool)

	c.JobList = usecase.NewJobListUsecase(c.Jobs, logger)
	c.JobMutation = usecase.NewJobMutationUsecase(c.Jobs, logger)
	c.ApplicationUC = usecase.NewApplicationUsecase(c.Applications, c.Jobs, c.Resumes, cfg.Upload.MaxResumeBytes, logger)
	c.Auth = usecase.NewAuthUsecase(admins, c.JWT, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
